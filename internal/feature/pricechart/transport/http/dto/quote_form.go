// Package dto はpricechart機能のHTTPトランスポート層で使用するデータ転送オブジェクトを定義します。
package dto

// QuoteForm はPOST /infoのフォーム本文を表します。
// 銘柄の未入力や対応外の時間間隔はGinのバインディングタグで弾かれます。
type QuoteForm struct {
	Symbol   string `form:"symbol" binding:"required"`
	Interval string `form:"interval" binding:"required,oneof=TIME_SERIES_DAILY TIME_SERIES_WEEKLY TIME_SERIES_MONTHLY"`
}
