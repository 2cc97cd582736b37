package searcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/geo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSearchFailed       = errors.New("search failed")
	ErrDetailsUnavailable = errors.New("place details are not configured")
)

type Config struct {
	Language      string                   // default places language, e.g. zh-TW
	Region        string                   // region hint for geocoding and text search
	Fallback      datastructure.Coordinate // search center when nothing better is known
	DetailWorkers int
}

// Outcome is everything one search produced. Results is never nil.
type Outcome struct {
	Status   Status
	Message  string
	Query    string
	Center   datastructure.SearchCenter
	Results  []datastructure.ScoredResult
	Warnings []string
}

type Searcher struct {
	log      *zap.Logger
	geocoder Geocoder
	places   PlaceSearcher
	details  DetailFetcher
	cfg      Config
	tracer   trace.Tracer
	progress ProgressFunc
}

func NewSearcher(log *zap.Logger, geocoder Geocoder, places PlaceSearcher, details DetailFetcher,
	cfg Config) *Searcher {
	if cfg.DetailWorkers <= 0 {
		cfg.DetailWorkers = DEFAULT_DETAIL_WORKERS
	}
	return &Searcher{
		log:      log,
		geocoder: geocoder,
		places:   places,
		details:  details,
		cfg:      cfg,
		tracer:   otel.Tracer("github.com/lintang-b-s/foodmap-search/pkg/searcher"),
	}
}

// WithProgress returns a copy of the searcher reporting detail lookup progress to fn.
func (se *Searcher) WithProgress(fn ProgressFunc) *Searcher {
	c := *se
	c.progress = fn
	return &c
}

// ComposeQuery joins the non-blank criteria fields with a single space.
func ComposeQuery(criteria datastructure.SearchCriteria) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{criteria.LocationText, criteria.Category, criteria.Keyword} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// Search runs one search: center -> text search -> distance -> score -> filter -> rank -> details.
// every step waits for the previous one. a failed text search returns ErrSearchFailed.
func (se *Searcher) Search(ctx context.Context, criteria datastructure.SearchCriteria,
	userLocation *datastructure.Coordinate) (Outcome, error) {
	ctx, span := se.tracer.Start(ctx, "searcher.Search")
	defer span.End()

	query := ComposeQuery(criteria)
	if query == "" {
		return Outcome{
			Status:  StatusInvalidQuery,
			Message: msgEmptyQuery,
			Results: []datastructure.ScoredResult{},
		}, nil
	}
	span.SetAttributes(attribute.String("query", query), attribute.String("sort_by", criteria.SortKey.String()))

	language := criteria.Language
	if language == "" {
		language = se.cfg.Language
	}

	outcome := Outcome{
		Status:  StatusOK,
		Query:   query,
		Results: []datastructure.ScoredResult{},
	}
	outcome.Center, outcome.Warnings = se.resolveCenter(ctx, criteria.LocationText, userLocation)

	raw, err := se.textSearch(ctx, query, language)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "text search failed")
		se.log.Error("places text search failed", zap.String("query", query), zap.Error(err))
		return outcome, fmt.Errorf("%w: %w", ErrSearchFailed, err)
	}

	scored := ScoreBatch(raw, outcome.Center.Coordinate, criteria)
	scored = Filter(scored, criteria.HideClosed)
	scored = Rank(scored, criteria.SortKey)

	se.enrich(ctx, scored, criteria.EnrichTop, language)

	outcome.Results = scored
	if len(scored) == 0 {
		outcome.Status = StatusNoResults
		outcome.Message = msgNoResults
	}

	se.log.Debug("search finished", zap.String("query", query),
		zap.Int("upstream_results", len(raw)), zap.Int("results", len(scored)),
		zap.String("center_source", string(outcome.Center.Source)))
	return outcome, nil
}

// ScoreBatch measures every venue against center, then scores them with the batch maximum.
func ScoreBatch(raw []datastructure.RawResult, center datastructure.Coordinate,
	criteria datastructure.SearchCriteria) []datastructure.ScoredResult {
	distances := make([]*float64, len(raw))
	for i, r := range raw {
		if r.Coordinate == nil {
			continue
		}
		d := geo.Distance(center, *r.Coordinate)
		distances[i] = &d
	}
	maxDistance := MaxDistance(distances)

	scored := make([]datastructure.ScoredResult, len(raw))
	for i, r := range raw {
		scored[i] = datastructure.ScoredResult{
			RawResult:      r,
			DistanceKm:     distances[i],
			RecommendScore: Score(r, distances[i], maxDistance, criteria),
		}
	}
	return scored
}

func (se *Searcher) resolveCenter(ctx context.Context, locationText string,
	userLocation *datastructure.Coordinate) (datastructure.SearchCenter, []string) {
	if userLocation != nil {
		return datastructure.SearchCenter{
			Coordinate: *userLocation,
			Source:     datastructure.CenterUserLocation,
			Label:      labelUserLoc,
		}, nil
	}

	locationText = strings.TrimSpace(locationText)
	fallback := datastructure.SearchCenter{
		Coordinate: se.cfg.Fallback,
		Source:     datastructure.CenterFallback,
		Label:      labelFallback,
	}
	if locationText == "" {
		return fallback, nil
	}
	// the label keeps naming what the user asked for even when the coordinate is the default one
	fallback.Label = locationText

	ctx, span := se.tracer.Start(ctx, "searcher.geocode")
	defer span.End()

	coord, err := se.geocoder.Geocode(ctx, locationText, se.cfg.Region)
	if err != nil {
		span.RecordError(err)
		se.log.Warn("geocoding failed, using fallback center",
			zap.String("location", locationText), zap.Error(err))
		return fallback, []string{warnGeocodeError}
	}
	if coord == nil {
		se.log.Warn("geocoding returned no results, using fallback center",
			zap.String("location", locationText))
		return fallback, []string{warnGeocodeEmpty}
	}

	return datastructure.SearchCenter{
		Coordinate: *coord,
		Source:     datastructure.CenterGeocoded,
		Label:      locationText,
	}, nil
}

func (se *Searcher) textSearch(ctx context.Context, query, language string) ([]datastructure.RawResult, error) {
	ctx, span := se.tracer.Start(ctx, "searcher.textSearch")
	defer span.End()
	return se.places.TextSearch(ctx, query, language, se.cfg.Region)
}

// enrich fills Details of the first top results in place. a failed lookup leaves Details nil.
func (se *Searcher) enrich(ctx context.Context, results []datastructure.ScoredResult, top int, language string) {
	if se.details == nil || top == 0 || len(results) == 0 {
		return
	}
	n := len(results)
	if top > 0 && top < n {
		n = top
	}

	targets := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if results[i].ID != "" {
			targets = append(targets, i)
		}
	}

	ctx, span := se.tracer.Start(ctx, "searcher.enrich")
	defer span.End()
	span.SetAttributes(attribute.Int("lookups", len(targets)))

	var done atomic.Int64
	var g errgroup.Group
	g.SetLimit(se.cfg.DetailWorkers)
	for _, idx := range targets {
		idx := idx
		g.Go(func() error {
			detail, err := se.details.Details(ctx, results[idx].ID, language)
			if err != nil {
				se.log.Warn("failed to fetch place details",
					zap.String("place_id", results[idx].ID), zap.Error(err))
			} else {
				results[idx].Details = &detail
			}
			if se.progress != nil {
				se.progress(int(done.Add(1)), len(targets))
			}
			return nil
		})
	}
	// lookups never fail the group, a failed one only leaves Details nil
	_ = g.Wait()
}

// Details looks up one place outside of a search, e.g. when a client opens a marker.
func (se *Searcher) Details(ctx context.Context, placeID, language string) (datastructure.DetailRecord, error) {
	if se.details == nil {
		return datastructure.DetailRecord{}, ErrDetailsUnavailable
	}
	if language == "" {
		language = se.cfg.Language
	}
	ctx, span := se.tracer.Start(ctx, "searcher.Details")
	defer span.End()

	detail, err := se.details.Details(ctx, placeID, language)
	if err != nil {
		span.RecordError(err)
		return datastructure.DetailRecord{}, fmt.Errorf("details of %s: %w", placeID, err)
	}
	return detail, nil
}
