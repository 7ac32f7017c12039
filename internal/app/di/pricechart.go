// Package di はアプリケーションコンポーネントを生成する依存性注入ファクトリを提供します。
package di

import (
	"stockchart/internal/feature/pricechart/adapters/svgchart"
	"stockchart/internal/feature/pricechart/transport/handler"
	"stockchart/internal/feature/pricechart/usecase"
	"stockchart/internal/platform/config"
	"stockchart/internal/platform/externalapi/alphavantage"
	infrahttp "stockchart/internal/platform/http"
)

// NewQuoteProvider はタイムアウト付きHTTPクライアントを持つAlpha Vantageクライアントを生成します。
func NewQuoteProvider(cfg *config.Config) *alphavantage.Client {
	avCfg := alphavantage.Config{
		APIKey:  cfg.AlphaVantage.APIKey,
		BaseURL: cfg.AlphaVantage.BaseURL,
		Timeout: cfg.ProviderTimeout(),
	}
	return alphavantage.NewClient(avCfg, infrahttp.NewHTTPClient(avCfg.Timeout))
}

// NewChartHandler はプロバイダ、レンダラー、ユースケースを組み立ててチャート用ハンドラを生成します。
func NewChartHandler(cfg *config.Config) *handler.ChartHandler {
	uc := usecase.NewChartUsecase(NewQuoteProvider(cfg), svgchart.NewRenderer())
	return handler.NewChartHandler(uc)
}
