package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"stockchart/internal/feature/pricechart/domain"
	"stockchart/internal/feature/pricechart/domain/entity"
)

// ChartUsecase は1件のQuoteRequestから結果ページの内容を組み立てるユースケースです。
type ChartUsecase struct {
	quotes   QuoteProvider
	renderer ChartRenderer
}

// NewChartUsecase はChartUsecaseの新しいインスタンスを生成します。
func NewChartUsecase(quotes QuoteProvider, renderer ChartRenderer) *ChartUsecase {
	return &ChartUsecase{quotes: quotes, renderer: renderer}
}

// BuildReport は企業概要の取得、時系列の取得、正規化、描画を順に実行します。
// 企業概要で銘柄が無効と判定された場合、時系列は取得しません。
func (u *ChartUsecase) BuildReport(ctx context.Context, req entity.QuoteRequest) (*entity.Report, error) {
	// 前後の空白のみ除去し、それ以外はそのままプロバイダへ渡す
	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		return nil, fmt.Errorf("%w: empty symbol", domain.ErrInvalidSymbol)
	}
	// 外部APIを呼ぶ前に時間間隔を検証
	if _, err := entity.ParseInterval(string(req.Interval)); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnsupportedInterval, err)
	}

	overview, err := u.quotes.Overview(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("company overview %s: %w", symbol, err)
	}

	raw, err := u.quotes.TimeSeries(ctx, symbol, req.Interval)
	if err != nil {
		return nil, fmt.Errorf("time series %s: %w", symbol, err)
	}

	series, err := NormalizeSeries(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", symbol, err)
	}
	if series.Len() == 0 {
		return nil, fmt.Errorf("%w: %s %s", domain.ErrEmptySeries, symbol, req.Interval)
	}

	chart, err := u.renderer.Render(series, overview.Name)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", symbol, err)
	}

	slog.Info("price chart built", "symbol", symbol, "interval", req.Interval, "points", series.Len())
	return &entity.Report{
		CompanyName: overview.Name,
		Symbol:      symbol,
		Chart:       chart,
	}, nil
}
