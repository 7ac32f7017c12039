// Package handler はpricechart機能のHTTPハンドラを提供します。
package handler

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"stockchart/internal/feature/pricechart/domain"
	"stockchart/internal/feature/pricechart/domain/entity"
	"stockchart/internal/feature/pricechart/transport/http/dto"
)

// ユーザー向けメッセージ
const (
	MsgInvalidSymbol   = "Invalid ticker symbol"
	MsgInvalidForm     = "Please enter a ticker symbol and choose an interval"
	MsgUnavailable     = "The price provider is currently unavailable. Please try again later."
	MsgMalformed       = "The price provider returned data we could not read."
	MsgNoData          = "No price data is available for this symbol and interval."
	MsgInternalFailure = "Something went wrong while building the chart."
)

// ChartUsecase はチャート要求から表示用レポートを組み立てます。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ChartUsecase interface {
	BuildReport(ctx context.Context, req entity.QuoteRequest) (*entity.Report, error)
}

type intervalOption struct {
	Value string
	Label string
}

var intervalOptions = []intervalOption{
	{Value: string(entity.Daily), Label: "Daily"},
	{Value: string(entity.Weekly), Label: "Weekly"},
	{Value: string(entity.Monthly), Label: "Monthly"},
}

// ChartHandler は入力フォームとチャート結果ページを提供します。
type ChartHandler struct {
	uc ChartUsecase
}

// NewChartHandler はChartHandlerの新しいインスタンスを生成します。
func NewChartHandler(uc ChartUsecase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// Index は入力フォームを表示します。?error= があればメッセージとして表示します。
//
// エンドポイント: GET /
func (h *ChartHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Error":     c.Query("error"),
		"Intervals": intervalOptions,
	})
}

// RedirectToIndex は結果ページURLへの直接アクセスをフォームへ戻します。
//
// エンドポイント: GET /info
func (h *ChartHandler) RedirectToIndex(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// Info は送信されたフォームからチャートを生成して表示します。
//   - フォーム不正・未知の銘柄: ?error= 付きで / へ303リダイレクト
//   - プロバイダ障害・不正なデータ: 502のエラーページ
//   - それ以外: 500のエラーページ
//
// エンドポイント: POST /info
func (h *ChartHandler) Info(c *gin.Context) {
	var form dto.QuoteForm
	if err := c.ShouldBindWith(&form, binding.Form); err != nil {
		slog.Warn("quote form validation failed", "error", err, "remote_addr", c.ClientIP())
		redirectWithError(c, MsgInvalidForm)
		return
	}

	req := entity.QuoteRequest{Symbol: form.Symbol, Interval: entity.Interval(form.Interval)}
	report, err := h.uc.BuildReport(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSymbol):
			slog.Info("invalid ticker symbol", "symbol", form.Symbol, "remote_addr", c.ClientIP())
			redirectWithError(c, MsgInvalidSymbol)
		case errors.Is(err, domain.ErrUnsupportedInterval):
			redirectWithError(c, MsgInvalidForm)
		default:
			status, msg := classify(err)
			slog.Error("failed to build price chart", "error", err, "symbol", form.Symbol, "interval", form.Interval)
			c.HTML(status, "error.html", gin.H{"Status": status, "Message": msg})
		}
		return
	}

	c.HTML(http.StatusOK, "info.html", gin.H{
		"CompanyName": report.CompanyName,
		"Symbol":      report.Symbol,
		// プロバイダ由来の文字列は描画時にサニタイズ済み
		"Chart": template.HTML(report.Chart),
	})
}

// classify は回復不能なエラーをステータスコードとメッセージに対応付けます。
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrRemoteUnavailable):
		return http.StatusBadGateway, MsgUnavailable
	case errors.Is(err, domain.ErrMalformedDate), errors.Is(err, domain.ErrMalformedPrice):
		return http.StatusBadGateway, MsgMalformed
	case errors.Is(err, domain.ErrEmptySeries):
		return http.StatusBadGateway, MsgNoData
	default:
		return http.StatusInternalServerError, MsgInternalFailure
	}
}

func redirectWithError(c *gin.Context, msg string) {
	c.Redirect(http.StatusSeeOther, "/?"+url.Values{"error": {msg}}.Encode())
}
