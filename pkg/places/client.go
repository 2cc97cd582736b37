package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/metrics"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var (
	ErrUpstreamStatus    = errors.New("places api returned non-success http status")
	ErrMalformedResponse = errors.New("places api returned malformed json")
	ErrAPIStatus         = errors.New("places api returned error status")
)

const (
	DEFAULT_BASE_URL = "https://maps.googleapis.com"
	DEFAULT_TIMEOUT  = 10 * time.Second

	geocodePath    = "/maps/api/geocode/json"
	textSearchPath = "/maps/api/place/textsearch/json"
	detailsPath    = "/maps/api/place/details/json"
	detailFields   = "formatted_phone_number,opening_hours"
)

type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration // upper bound for every outbound call
}

// Client talks to the google maps geocoding, places text search and place details apis.
type Client struct {
	cfg     Config
	http    *fasthttp.Client
	log     *zap.Logger
	metrics *metrics.Metrics
}

func NewClient(cfg Config, log *zap.Logger, m *metrics.Metrics) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DEFAULT_BASE_URL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = DEFAULT_TIMEOUT
	}
	return &Client{
		cfg: cfg,
		http: &fasthttp.Client{
			Name:                "foodmap-search",
			ReadTimeout:         cfg.Timeout,
			WriteTimeout:        cfg.Timeout,
			MaxIdleConnDuration: time.Minute,
		},
		log:     log,
		metrics: m,
	}
}

// Geocode returns the first match for address, or nil when there is none.
func (c *Client) Geocode(ctx context.Context, address, region string) (*datastructure.Coordinate, error) {
	params := url.Values{}
	params.Set("address", address)
	if region != "" {
		params.Set("region", region)
	}

	var resp geocodeResponse
	if err := c.getJSON(ctx, "geocode", geocodePath, params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}
	for _, r := range resp.Results {
		if r.Geometry.Location != nil {
			coord := datastructure.NewCoordinate(r.Geometry.Location.Lat, r.Geometry.Location.Lng)
			return &coord, nil
		}
	}
	return nil, nil
}

// TextSearch returns the first result page in upstream order.
func (c *Client) TextSearch(ctx context.Context, query, language, region string) ([]datastructure.RawResult, error) {
	params := url.Values{}
	params.Set("query", query)
	if language != "" {
		params.Set("language", language)
	}
	if region != "" {
		params.Set("region", region)
	}

	var resp textSearchResponse
	if err := c.getJSON(ctx, "textsearch", textSearchPath, params, &resp); err != nil {
		return nil, err
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return nil, err
	}

	results := make([]datastructure.RawResult, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, r.toRawResult())
	}
	return results, nil
}

// Details fetches phone and weekly hours of one place. an unknown place id yields an
// empty record.
func (c *Client) Details(ctx context.Context, placeID, language string) (datastructure.DetailRecord, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	if language != "" {
		params.Set("language", language)
	}

	var resp detailsResponse
	if err := c.getJSON(ctx, "details", detailsPath, params, &resp); err != nil {
		return datastructure.DetailRecord{}, err
	}
	if resp.Status == statusNotFound {
		return datastructure.DetailRecord{WeeklyHours: []string{}}, nil
	}
	if err := checkStatus(resp.Status, resp.ErrorMessage); err != nil {
		return datastructure.DetailRecord{}, err
	}

	record := datastructure.DetailRecord{
		Phone:       resp.Result.FormattedPhoneNumber,
		WeeklyHours: []string{},
	}
	if resp.Result.OpeningHours != nil && resp.Result.OpeningHours.WeekdayText != nil {
		record.WeeklyHours = resp.Result.OpeningHours.WeekdayText
	}
	return record, nil
}

func checkStatus(status apiStatus, message string) error {
	switch status {
	case statusOK, statusZeroResults:
		return nil
	}
	if message != "" {
		return fmt.Errorf("%w: %s: %s", ErrAPIStatus, status, message)
	}
	return fmt.Errorf("%w: %s", ErrAPIStatus, status)
}

func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	start := time.Now()
	err := c.doGetJSON(ctx, path, params, out)
	c.metrics.ObserveUpstream(endpoint, start, err)
	if err != nil {
		c.log.Debug("places api call failed", zap.String("endpoint", endpoint),
			zap.Duration("took", time.Since(start)), zap.Error(err))
	}
	return err
}

func (c *Client) doGetJSON(ctx context.Context, path string, params url.Values, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	params.Set("key", c.cfg.APIKey)

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.cfg.BaseURL + path + "?" + params.Encode())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	// fasthttp has no context support, the context deadline caps the configured timeout
	deadline := time.Now().Add(c.cfg.Timeout)
	if dl, ok := ctx.Deadline(); ok && dl.Before(deadline) {
		deadline = dl
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return fmt.Errorf("%w: GET %s: %d", ErrUpstreamStatus, path, code)
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return nil
}
