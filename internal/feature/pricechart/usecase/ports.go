// Package usecase は株価チャート生成（取得・正規化・描画）のビジネスロジックを実装します。
package usecase

//go:generate go run go.uber.org/mock/mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

import (
	"context"

	"stockchart/internal/feature/pricechart/domain/entity"
)

// QuoteProvider は外部の金融データAPIを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteProvider interface {
	// Overview は銘柄に対応する企業情報を返します。未知の銘柄ではdomain.ErrInvalidSymbolを返します。
	Overview(ctx context.Context, symbol string) (entity.CompanyOverview, error)
	// TimeSeries は日付をキーとした銘柄の時系列レコードを返します。
	TimeSeries(ctx context.Context, symbol string, iv entity.Interval) (entity.RawSeries, error)
}

// ChartRenderer は正規化済みの時系列をベクター画像に変換します。
type ChartRenderer interface {
	Render(series entity.Series, label string) (entity.RenderedChart, error)
}
