// Package domain はpricechart機能のドメインエラーを定義します。
package domain

import "errors"

// 株価チャート生成のドメインエラー。
// アダプタは文脈を付けてラップし、上位層はerrors.Isで判定します。
var (
	// ErrInvalidSymbol はプロバイダが銘柄を認識しないことを示します。
	// ハンドラがメッセージ付きリダイレクトで回復する唯一のエラーです。
	ErrInvalidSymbol = errors.New("invalid ticker symbol")

	// ErrUnsupportedInterval は日足・週足・月足以外の時間間隔を示します。
	ErrUnsupportedInterval = errors.New("unsupported interval")

	// ErrRemoteUnavailable は通信失敗、2xx以外の応答、デコードできない本文、
	// およびプロバイダのレート制限通知を表します。
	ErrRemoteUnavailable = errors.New("price provider unavailable")

	// ErrMalformedDate は時系列のキーがYYYY-MM-DD形式の日付でないことを示します。
	ErrMalformedDate = errors.New("malformed date in price series")

	// ErrMalformedPrice は高値が有限の10進数として解釈できないことを示します。
	ErrMalformedPrice = errors.New("malformed price in price series")

	// ErrEmptySeries は描画できるデータ点がないことを示します。
	ErrEmptySeries = errors.New("empty price series")
)
