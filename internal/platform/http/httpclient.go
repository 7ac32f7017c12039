// Package http は外部API呼び出しに使うHTTPクライアントを提供します。
package http

import (
	"net"
	"net/http"
	"time"
)

// DefaultTimeout はタイムアウト未設定時に使うリクエスト全体の上限です。
const DefaultTimeout = 10 * time.Second

// NewHTTPClient は株価プロバイダ呼び出し用のHTTPクライアントを作成します。
//
// 設定:
//   - Proxy: HTTP_PROXY / HTTPS_PROXY を使用
//   - Dialer.Timeout / TLSHandshakeTimeout: 到達できないプロバイダで早めに失敗させる
//   - ResponseHeaderTimeout: 全体タイムアウト内に応答ヘッダーが届くこと
//   - Client.Timeout: 本文を含むリクエスト全体（0以下ならDefaultTimeout）
//
// 注意:
//   - http.DefaultClientにはタイムアウトがないため使用しない
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
