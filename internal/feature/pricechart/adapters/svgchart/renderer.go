// Package svgchart は正規化済みの株価時系列をSVG折れ線グラフとして描画します。
package svgchart

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"

	"stockchart/internal/feature/pricechart/domain"
	"stockchart/internal/feature/pricechart/domain/entity"
	"stockchart/internal/feature/pricechart/usecase"
)

const (
	// Width とHeight は4:3の固定キャンバスサイズです。
	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch

	// MaxLabelLength はタイトルに使う企業名の最大文字数（rune数）です。
	MaxLabelLength = 100

	titleFormat = "Stock Price of %s"
	xLabel      = "Year"
	yLabel      = "Price (USD)"
	tickFormat  = "2006-01-02"
)

// Renderer は呼び出しごとに静的なチャートを1枚描画します。状態は持ちません。
type Renderer struct{}

// RendererがChartRendererを実装していることをコンパイル時に検証します。
var _ usecase.ChartRenderer = (*Renderer)(nil)

// NewRenderer はRendererの新しいインスタンスを生成します。
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render は時系列を1本の折れ線として描画し、labelを含むタイトルを付けたSVGを返します。
// 1点のみの場合はマーカーで描画し、空の場合はdomain.ErrEmptySeriesを返します。
func (r *Renderer) Render(series entity.Series, label string) (entity.RenderedChart, error) {
	if len(series.Dates) != len(series.Prices) {
		return "", fmt.Errorf("svgchart: %d dates for %d prices", len(series.Dates), len(series.Prices))
	}
	if series.Len() == 0 {
		return "", domain.ErrEmptySeries
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf(titleFormat, SanitizeLabel(label))
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	// 日付目盛りは45度回転して重なりを防ぐ
	p.X.Tick.Marker = plot.TimeTicks{Format: tickFormat}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	xys := make(plotter.XYs, series.Len())
	for i, d := range series.Dates {
		xys[i].X = float64(d.Unix())
		xys[i].Y = series.Prices[i]
	}

	if series.Len() == 1 {
		s, err := plotter.NewScatter(xys)
		if err != nil {
			return "", fmt.Errorf("svgchart: scatter: %w", err)
		}
		p.Add(s)
	} else {
		l, err := plotter.NewLine(xys)
		if err != nil {
			return "", fmt.Errorf("svgchart: line: %w", err)
		}
		p.Add(l)
	}

	c := vgsvg.NewWith(vgsvg.UseWH(Width, Height), vgsvg.EmbedFonts(false))
	p.Draw(draw.New(c))

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return "", fmt.Errorf("svgchart: write svg: %w", err)
	}
	return entity.RenderedChart(buf.String()), nil
}

// SanitizeLabel はプロバイダから受け取った名前をSVGテキストとして安全に埋め込める形に整えます。
// マークアップ上意味を持つ文字は削除し、制御文字は空白に置き換え、
// 連続する空白をまとめた上でMaxLabelLength文字に切り詰めます。
func SanitizeLabel(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case strings.ContainsRune(`<>&"'`, r):
			return -1
		case unicode.IsControl(r), r == utf8.RuneError:
			return ' '
		}
		return r
	}, s)
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) > MaxLabelLength {
		s = string([]rune(s)[:MaxLabelLength])
	}
	return s
}
