package usecase

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"stockchart/internal/feature/pricechart/domain"
	"stockchart/internal/feature/pricechart/domain/entity"
)

// NormalizeSeries はプロバイダの生の時系列を、古い順に対応付けた日付列と価格列に変換します。
// 並び順はmapの走査順ではなく日付で決まります。
func NormalizeSeries(raw entity.RawSeries) (entity.Series, error) {
	points := make([]entity.TimeSeriesPoint, 0, len(raw))
	for k, v := range raw {
		d, err := time.Parse(time.DateOnly, k)
		if err != nil {
			return entity.Series{}, fmt.Errorf("%w: %q", domain.ErrMalformedDate, k)
		}
		// decimalはNaNとInfを受け付けない（strconv.ParseFloatは受け付ける）
		h, err := decimal.NewFromString(strings.TrimSpace(v.High))
		if err != nil {
			return entity.Series{}, fmt.Errorf("%w: %q on %s", domain.ErrMalformedPrice, v.High, k)
		}
		// float64に収まらない値（1e400など）は+Infになるため弾く
		f, _ := h.Float64()
		if math.IsInf(f, 0) {
			return entity.Series{}, fmt.Errorf("%w: %q on %s overflows float64", domain.ErrMalformedPrice, v.High, k)
		}
		points = append(points, entity.TimeSeriesPoint{Date: d, High: f})
	}

	slices.SortFunc(points, func(a, b entity.TimeSeriesPoint) int {
		return a.Date.Compare(b.Date)
	})

	out := entity.Series{
		Dates:  make([]time.Time, len(points)),
		Prices: make([]float64, len(points)),
	}
	for i, p := range points {
		out.Dates[i] = p.Date
		out.Prices[i] = p.High
	}
	return out, nil
}
