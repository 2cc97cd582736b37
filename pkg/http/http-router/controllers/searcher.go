package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
	"github.com/lintang-b-s/foodmap-search/pkg/geo"
	helper "github.com/lintang-b-s/foodmap-search/pkg/http/http-router/router-helper"
	"github.com/lintang-b-s/foodmap-search/pkg/searcher"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

type Options struct {
	DefaultEnrichTop int // details lookups per search when the request does not say
}

type searchAPI struct {
	searchService SearchService
	sessions      sessions.Store
	log           *zap.Logger
	validate      *validator.Validate
	trans         ut.Translator
	opts          Options
}

func New(searchService SearchService, store sessions.Store, log *zap.Logger, opts Options) *searchAPI {
	validate, trans := newValidator()
	return &searchAPI{
		searchService: searchService,
		sessions:      store,
		log:           log,
		validate:      validate,
		trans:         trans,
		opts:          opts,
	}
}

func (api *searchAPI) Routes(group *helper.RouteGroup) {
	group.POST("/search", api.search)
	group.GET("/places/:id/details", api.placeDetails)
	group.PUT("/session/location", api.setSessionLocation)
	group.DELETE("/session/location", api.clearSessionLocation)
}

// coordinateRequest model info
//
//	@Description	a latitude/longitude pair sent by the client.
type coordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`   // latitude in degrees
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"` // longitude in degrees
}

func (c *coordinateRequest) toCoordinate() *datastructure.Coordinate {
	if c == nil || c.Lat == nil || c.Lng == nil {
		return nil
	}
	coord := datastructure.NewCoordinate(*c.Lat, *c.Lng)
	return &coord
}

// searchRequest model info
//
//	@Description	request body for a restaurant search. at least one of location, category or keyword must be set.
type searchRequest struct {
	Location     string             `json:"location" validate:"max=200"`                                         // free text area, e.g. "Zhongshan, Taipei".
	Category     string             `json:"category" validate:"max=100"`                                         // restaurant type, e.g. "hotpot".
	Keyword      string             `json:"keyword" validate:"max=100"`                                          // extra keyword, e.g. "spicy".
	HideClosed   bool               `json:"hide_closed"`                                                         // only keep venues confirmed open now.
	SortBy       string             `json:"sort_by" validate:"omitempty,oneof=recommendation distance rating"`   // recommendation (default), distance or rating.
	Language     string             `json:"language" validate:"omitempty,oneof=zh-TW en"`                        // places api language, defaults to the server setting.
	EnrichTop    *int               `json:"enrich_top" validate:"omitempty,min=-1,max=20"`                       // how many top results get phone/hours. -1 means all.
	UserLocation *coordinateRequest `json:"user_location" validate:"omitempty"`                                  // live location of the user. overrides the session location.
}

// mapMarker model info
//
//	@Description	one venue pin on the map.
type mapMarker struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Coordinate     datastructure.Coordinate `json:"coordinate"`
	RecommendScore float64                  `json:"recommend_score"`
}

// mapView model info
//
//	@Description	what a map client needs to draw the results.
type mapView struct {
	Center  datastructure.Coordinate `json:"center"`           // mean of the marker coordinates, or the search center when there are none.
	Bounds  *geo.BoundingBox         `json:"bounds,omitempty"` // viewport containing every marker.
	Markers []mapMarker              `json:"markers"`
}

// searchResponse model info
//
//	@Description	response body for a restaurant search.
type searchResponse struct {
	Data     []datastructure.ScoredResult `json:"data"`               // ranked venues.
	Status   string                       `json:"status"`             // ok or no_results.
	Message  string                       `json:"message,omitempty"`  // user facing note, e.g. when nothing was found.
	Query    string                       `json:"query"`              // composed text query sent to the places api.
	Center   datastructure.SearchCenter   `json:"center"`             // reference point of every distance_km.
	Map      mapView                      `json:"map"`
	Warnings []string                     `json:"warnings,omitempty"` // non fatal problems, e.g. geocoding fell back to the default center.
}

// search godoc
// @Summary		search restaurants around a location and rank them by recommendation score, distance or rating.
// @Description	geocodes the location (or uses the user location), runs a places text search, scores every venue (distance 40%, rating 50%, type match 10%), optionally hides venues not confirmed open and enriches the top results with phone and opening hours.
// @Tags			search
// @ID search
// @Param			body	body	searchRequest	true	"search criteria"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/search [post]
// @Success		200	{object}	searchResponse
// @Failure		400	{object}	errorResponse
// @Failure		502	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request searchRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	sortKey, err := datastructure.ParseSortKey(request.SortBy)
	if err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	enrichTop := api.opts.DefaultEnrichTop
	if request.EnrichTop != nil {
		enrichTop = *request.EnrichTop
	}

	criteria := datastructure.SearchCriteria{
		LocationText: request.Location,
		Category:     request.Category,
		Keyword:      request.Keyword,
		HideClosed:   request.HideClosed,
		SortKey:      sortKey,
		Language:     request.Language,
		EnrichTop:    enrichTop,
	}

	userLocation := request.UserLocation.toCoordinate()
	if userLocation == nil {
		userLocation = api.sessionLocation(r)
	}

	outcome, err := api.searchService.Search(r.Context(), criteria, userLocation)
	switch {
	case errors.Is(err, searcher.ErrSearchFailed):
		api.UpstreamErrorResponse(w, r, err)
		return
	case err != nil:
		api.ServerErrorResponse(w, r, err)
		return
	}

	if outcome.Status == searcher.StatusInvalidQuery {
		api.errorResponse(w, r, http.StatusBadRequest, string(searcher.StatusInvalidQuery), outcome.Message)
		return
	}

	resp := searchResponse{
		Data:     outcome.Results,
		Status:   string(outcome.Status),
		Message:  outcome.Message,
		Query:    outcome.Query,
		Center:   outcome.Center,
		Map:      buildMapView(outcome),
		Warnings: outcome.Warnings,
	}
	if err := api.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

func buildMapView(outcome searcher.Outcome) mapView {
	markers := make([]mapMarker, 0, len(outcome.Results))
	points := make([]datastructure.Coordinate, 0, len(outcome.Results))
	for _, res := range outcome.Results {
		if res.Coordinate == nil {
			continue
		}
		markers = append(markers, mapMarker{
			ID:             res.ID,
			Name:           res.Name,
			Coordinate:     *res.Coordinate,
			RecommendScore: res.RecommendScore,
		})
		points = append(points, *res.Coordinate)
	}

	view := mapView{Center: outcome.Center.Coordinate, Markers: markers}
	if center, ok := geo.Centroid(points); ok {
		view.Center = center
	}
	if bb, ok := geo.NewBoundingBox(points); ok {
		view.Bounds = &bb
	}
	return view
}

type detailsRequest struct {
	PlaceID  string `validate:"required,max=512"`
	Language string `validate:"omitempty,oneof=zh-TW en"`
}

// placeDetails godoc
// @Summary		phone number and weekly opening hours of one place.
// @Description	phone number and weekly opening hours of one place. cached by place id and language.
// @Tags			places
// @ID place-details
// @Param			id			path	string	true	"place id"
// @Param			language	query	string	false	"zh-TW or en"
// @Produce		application/json
// @Router			/api/places/{id}/details [get]
// @Success		200	{object}	datastructure.DetailRecord
// @Failure		400	{object}	errorResponse
// @Failure		502	{object}	errorResponse
func (api *searchAPI) placeDetails(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	request := detailsRequest{
		PlaceID:  strings.TrimSpace(ps.ByName("id")),
		Language: r.URL.Query().Get("language"),
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	record, err := api.searchService.Details(r.Context(), request.PlaceID, request.Language)
	if err != nil {
		api.UpstreamErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": record}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
