// Package entity はpricechart機能のドメインモデルを定義します。
package entity

import (
	"fmt"
	"time"
)

// Interval は株価時系列の集計単位です。
// 値は入力フォームから送信されるものと同一です。
type Interval string

const (
	Daily   Interval = "TIME_SERIES_DAILY"
	Weekly  Interval = "TIME_SERIES_WEEKLY"
	Monthly Interval = "TIME_SERIES_MONTHLY"
)

// Intervals は対応するすべての時間間隔を表示順に並べたものです。
var Intervals = []Interval{Daily, Weekly, Monthly}

// ParseInterval はフォームの値をIntervalに変換します。
func ParseInterval(s string) (Interval, error) {
	for _, iv := range Intervals {
		if string(iv) == s {
			return iv, nil
		}
	}
	return "", fmt.Errorf("unsupported interval %q", s)
}

// QuoteRequest は入力フォームから受け取った1件のチャート要求です。
type QuoteRequest struct {
	Symbol   string   // 入力されたティッカーシンボル（例: "IBM"）
	Interval Interval // 要求された集計単位
}

// CompanyOverview はページ表示に必要な企業概要の項目です。
type CompanyOverview struct {
	Name   string
	Symbol string
}

// RawRecord は文字列のままの時系列レコード1件です。
type RawRecord struct {
	High string
}

// RawSeries はYYYY-MM-DD形式の日付文字列からレコードへのマップです。
type RawSeries map[string]RawRecord

// TimeSeriesPoint は正規化済みのデータ点1件です。
type TimeSeriesPoint struct {
	Date time.Time
	High float64
}

// Series は位置で対応付けられた2つの列を古い順に保持します。
// Dates[i]はPrices[i]の観測日です。
type Series struct {
	Dates  []time.Time
	Prices []float64
}

// Len はデータ点の件数を返します。
func (s Series) Len() int { return len(s.Dates) }

// RenderedChart は単体で完結したSVGドキュメントです。
type RenderedChart string

// Report は結果ページに表示する内容です。
type Report struct {
	CompanyName string
	Symbol      string
	Chart       RenderedChart
}
