package alphavantage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stockchart/internal/feature/pricechart/domain"
	"stockchart/internal/feature/pricechart/domain/entity"
	"stockchart/internal/feature/pricechart/usecase"
	"stockchart/internal/platform/externalapi/alphavantage/dto"
	infrahttp "stockchart/internal/platform/http"
)

const overviewFunction = "OVERVIEW"

// 時間間隔ごとの対応表（初期化後は変更しない）
var (
	functions = map[entity.Interval]string{
		entity.Daily:   "TIME_SERIES_DAILY",
		entity.Weekly:  "TIME_SERIES_WEEKLY",
		entity.Monthly: "TIME_SERIES_MONTHLY",
	}
	seriesKeys = map[entity.Interval]string{
		entity.Daily:   "Time Series (Daily)",
		entity.Weekly:  "Weekly Time Series",
		entity.Monthly: "Monthly Time Series",
	}
)

// SeriesKey はivの時系列を保持するJSONセクション名を返します。
func SeriesKey(iv entity.Interval) (string, bool) {
	k, ok := seriesKeys[iv]
	return k, ok
}

// Client はAlpha VantageのクエリAPIから株価データを取得するQuoteProvider実装です。
type Client struct {
	cfg    Config
	client *http.Client
}

// ClientがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*Client)(nil)

// NewClient は指定された設定とHTTPクライアントでClientの新しいインスタンスを生成します。
// clientがnilの場合はcfg.Timeoutを使ってクライアントを作成します。
func NewClient(cfg Config, client *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if client == nil {
		client = infrahttp.NewHTTPClient(cfg.Timeout)
	}
	return &Client{cfg: cfg, client: client}
}

// Overview は銘柄に対応する企業概要を取得します。
// Nameのないレスポンスは未知の銘柄とみなします。
// ただしレート制限などの通知を含む場合は銘柄の判定ができないため、ErrRemoteUnavailableとします。
func (c *Client) Overview(ctx context.Context, symbol string) (entity.CompanyOverview, error) {
	var body dto.OverviewResponse
	if err := c.query(ctx, overviewFunction, symbol, &body); err != nil {
		return entity.CompanyOverview{}, err
	}
	if n := body.Notice(); n != "" {
		return entity.CompanyOverview{}, fmt.Errorf("%w: %s", domain.ErrRemoteUnavailable, n)
	}
	if body.Name == "" {
		return entity.CompanyOverview{}, fmt.Errorf("%w: %q", domain.ErrInvalidSymbol, symbol)
	}

	out := entity.CompanyOverview{Name: body.Name, Symbol: body.Symbol}
	if out.Symbol == "" {
		out.Symbol = symbol
	}
	return out, nil
}

// TimeSeries は指定した時間間隔の生の時系列データを取得します。
// 該当セクションのないレスポンスは空のRawSeriesとして返します。
func (c *Client) TimeSeries(ctx context.Context, symbol string, iv entity.Interval) (entity.RawSeries, error) {
	fn, ok := functions[iv]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedInterval, iv)
	}
	key := seriesKeys[iv]

	var body dto.TimeSeriesResponse
	if err := c.query(ctx, fn, symbol, &body); err != nil {
		return nil, err
	}
	for _, f := range []string{dto.ErrorField, dto.NoteField, dto.InformationField} {
		if raw, ok := body[f]; ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrRemoteUnavailable, noticeText(raw))
		}
	}

	section, ok := body[key]
	if !ok {
		slog.Warn("alphavantage response has no series section", "symbol", symbol, "section", key)
		return entity.RawSeries{}, nil
	}
	var records map[string]dto.SeriesRecord
	if err := json.Unmarshal(section, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %q: %v", domain.ErrRemoteUnavailable, key, err)
	}

	out := make(entity.RawSeries, len(records))
	for date, r := range records {
		out[date] = entity.RawRecord{High: r.High}
	}
	return out, nil
}

// query はクエリエンドポイントへGETを1回送り、JSON本文をoutにデコードします。
func (c *Client) query(ctx context.Context, function, symbol string, out any) error {
	q := url.Values{}
	// クエリパラメータを追加
	q.Set("function", function)
	q.Set("symbol", symbol)
	q.Set("apikey", c.cfg.APIKey)
	u := fmt.Sprintf("%s?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrRemoteUnavailable, redact(err))
	}

	slog.Debug("querying alphavantage", "function", function, "symbol", symbol)
	res, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteUnavailable, function, redact(err))
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w: alphavantage http %d", domain.ErrRemoteUnavailable, res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", domain.ErrRemoteUnavailable, function, err)
	}
	return nil
}

// noticeText は通知フィールドの値を文字列で返します。文字列でない場合はJSONのまま返します。
func noticeText(raw json.RawMessage) string {
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		return string(raw)
	}
	return msg
}

// redact は通信エラーからAPIキーを含むリクエストURLを取り除きます。
func redact(err error) error {
	var uerr *url.Error
	if errors.As(err, &uerr) {
		return uerr.Err
	}
	return err
}
