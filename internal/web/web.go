// Package web はアプリケーションが配信するHTMLテンプレートを保持します。
package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates は埋め込まれた全ページを解析して返します。テンプレートはファイル名（"index.html"）で参照します。
func Templates() *template.Template {
	return template.Must(template.New("").ParseFS(files, "templates/*.html"))
}
