package controllers

import (
	"net/http"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

const (
	sessionName   = "foodmap"
	sessionLatKey = "lat"
	sessionLngKey = "lng"
)

// sessionLocation returns the last location the client stored, or nil.
func (api *searchAPI) sessionLocation(r *http.Request) *datastructure.Coordinate {
	if api.sessions == nil {
		return nil
	}
	session, err := api.sessions.Get(r, sessionName)
	if err != nil {
		api.log.Debug("ignoring unreadable session", zap.Error(err))
		return nil
	}
	lat, okLat := session.Values[sessionLatKey].(float64)
	lng, okLng := session.Values[sessionLngKey].(float64)
	if !okLat || !okLng {
		return nil
	}
	coord := datastructure.NewCoordinate(lat, lng)
	return &coord
}

// setSessionLocation godoc
// @Summary		remember the user location for later searches.
// @Description	stores the coordinate in a signed cookie session. searches without user_location use it as the search center.
// @Tags			session
// @ID set-session-location
// @Param			body	body	coordinateRequest	true	"user location"
// @Accept			application/json
// @Produce		application/json
// @Router			/api/session/location [put]
// @Success		200	{object}	datastructure.Coordinate
// @Failure		400	{object}	errorResponse
// @Failure		500	{object}	errorResponse
func (api *searchAPI) setSessionLocation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var request coordinateRequest
	if err := api.readJSON(w, r, &request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if err := api.validateRequest(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}
	if api.sessions == nil {
		api.NotFoundResponse(w, r)
		return
	}

	// a tampered or stale cookie still yields a fresh session.
	session, _ := api.sessions.Get(r, sessionName)
	session.Values[sessionLatKey] = *request.Lat
	session.Values[sessionLngKey] = *request.Lng
	if err := session.Save(r, w); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": request.toCoordinate()}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// clearSessionLocation godoc
// @Summary		forget the stored user location.
// @Tags			session
// @ID clear-session-location
// @Produce		application/json
// @Router			/api/session/location [delete]
// @Success		200	{object}	envelope
// @Failure		500	{object}	errorResponse
func (api *searchAPI) clearSessionLocation(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if api.sessions == nil {
		api.NotFoundResponse(w, r)
		return
	}
	session, _ := api.sessions.Get(r, sessionName)
	delete(session.Values, sessionLatKey)
	delete(session.Values, sessionLngKey)
	if err := session.Save(r, w); err != nil {
		api.ServerErrorResponse(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"message": "location cleared"}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}
