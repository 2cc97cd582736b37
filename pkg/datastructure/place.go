package datastructure

import (
	"fmt"
	"strings"
)

// Coordinate model info
// @Description a latitude/longitude pair in degrees (WGS-84).
type Coordinate struct {
	Lat float64 `json:"lat" msgpack:"lat"` // latitude in degrees
	Lng float64 `json:"lng" msgpack:"lng"` // longitude in degrees
}

func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Lat: lat, Lng: lng}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

type CenterSource string

const (
	CenterUserLocation CenterSource = "user_location"
	CenterGeocoded     CenterSource = "geocoded"
	CenterFallback     CenterSource = "fallback"
)

// SearchCenter model info
// @Description reference point every distance of one search is measured from.
type SearchCenter struct {
	Coordinate
	Source CenterSource `json:"source"` // user_location, geocoded or fallback
	Label  string       `json:"label"`  // human readable name of the reference point
}

type SortKey int

const (
	SortRecommendation SortKey = iota
	SortDistance
	SortRating
)

var sortKeyNames = map[SortKey]string{
	SortRecommendation: "recommendation",
	SortDistance:       "distance",
	SortRating:         "rating",
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseSortKey. empty string means recommendation.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "recommendation":
		return SortRecommendation, nil
	case "distance":
		return SortDistance, nil
	case "rating":
		return SortRating, nil
	}
	return SortRecommendation, fmt.Errorf("unknown sort key %q", s)
}

// SearchCriteria is supplied by the caller and never mutated during a search.
type SearchCriteria struct {
	LocationText string
	Category     string
	Keyword      string
	HideClosed   bool
	SortKey      SortKey
	Language     string // response language for the places api, empty means the configured default
	EnrichTop    int    // number of top results to enrich with details. negative means all of them
}

// RawResult model info
// @Description venue as returned by the places text search. coordinate, rating and open_now are optional.
type RawResult struct {
	ID         string      `json:"id"`         // upstream place id
	Name       string      `json:"name"`       // venue name
	Address    string      `json:"address"`    // formatted address
	Coordinate *Coordinate `json:"coordinate"` // venue location, null when upstream omits it
	Rating     *float64    `json:"rating"`     // 0..5, null when the venue has no rating
	Types      []string    `json:"types"`      // upstream type tags
	OpenNow    *bool       `json:"open_now"`   // null when opening hours are unknown
}

// DetailRecord model info
// @Description place details fetched lazily per result id. missing fields mean "not available".
type DetailRecord struct {
	Phone       *string  `json:"phone" msgpack:"phone"`
	WeeklyHours []string `json:"weekly_hours" msgpack:"weekly_hours"`
}

// ScoredResult model info
// @Description venue plus the values computed for one search. recomputed on every search.
type ScoredResult struct {
	RawResult
	DistanceKm     *float64      `json:"distance_km"`     // distance from the search center, null iff coordinate is null
	RecommendScore float64       `json:"recommend_score"` // 0..100
	Details        *DetailRecord `json:"details,omitempty"`
}

// RatingOrZero. missing ratings count as zero for scoring and sorting.
func (r RawResult) RatingOrZero() float64 {
	if r.Rating == nil {
		return 0
	}
	return *r.Rating
}

// IsOpen reports whether the venue is confirmed open right now.
func (r RawResult) IsOpen() bool {
	return r.OpenNow != nil && *r.OpenNow
}
