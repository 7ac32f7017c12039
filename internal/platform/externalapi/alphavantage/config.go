// Package alphavantage はAlpha Vantage株価APIのクライアントを提供します。
package alphavantage

import "time"

// DefaultBaseURL はAlpha Vantageのクエリエンドポイントです。
const DefaultBaseURL = "https://www.alphavantage.co/query"

// Config はAlpha Vantage APIクライアントの設定を保持します。
type Config struct {
	APIKey  string        // 認証用APIキー
	BaseURL string        // クエリエンドポイント（例: "https://www.alphavantage.co/query"）
	Timeout time.Duration // NewClientにHTTPクライアントを渡さない場合のリクエストタイムアウト
}
