// Package dto はAlpha Vantage APIレスポンス用のデータ転送オブジェクトを定義します。
package dto

import "encoding/json"

// データの代わりにHTTP 200で返される通知フィールド
const (
	NoteField        = "Note"
	InformationField = "Information"
	ErrorField       = "Error Message"
)

// OverviewResponse はOVERVIEW関数のJSONレスポンスを表します。
// 未知の銘柄では空のオブジェクトが返るため、Nameの有無だけが確実な判定材料です。
type OverviewResponse struct {
	Symbol       string `json:"Symbol"`
	Name         string `json:"Name"`
	Note         string `json:"Note,omitempty"`
	Information  string `json:"Information,omitempty"`
	ErrorMessage string `json:"Error Message,omitempty"`
}

// Notice はレスポンスに含まれる通知を返します。なければ空文字です。
func (r OverviewResponse) Notice() string {
	switch {
	case r.ErrorMessage != "":
		return r.ErrorMessage
	case r.Note != "":
		return r.Note
	default:
		return r.Information
	}
}

// TimeSeriesResponse はセクション名（"Meta Data"、"Time Series (Daily)" など）を
// キーとするTIME_SERIES_*のレスポンス本文です。各セクションは必要な時にデコードします。
type TimeSeriesResponse map[string]json.RawMessage

// SeriesRecord は時系列セクション内の日付ごとのレコードです。
type SeriesRecord struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}
