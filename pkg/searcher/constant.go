package searcher

// recommendation score weights, 100 point scale
const (
	DISTANCE_WEIGHT = 40.0
	RATING_WEIGHT   = 50.0
	TYPE_WEIGHT     = 10.0

	// distance credit when the venue or the whole batch has no usable distance
	NEUTRAL_DISTANCE_SCORE = DISTANCE_WEIGHT / 2

	MAX_RATING = 5.0
)

const (
	DEFAULT_DETAIL_WORKERS = 4
)

type Status string

const (
	StatusOK           Status = "ok"
	StatusNoResults    Status = "no_results"
	StatusInvalidQuery Status = "invalid_query"
)

const (
	msgEmptyQuery    = "please enter at least a location, category or keyword"
	msgNoResults     = "no restaurants found"
	labelUserLoc     = "Your Location"
	labelFallback    = "Search Center"
	warnGeocodeEmpty = "unable to find coordinates for this location, using the default search center"
	warnGeocodeError = "geocoding failed, using the default search center"
)
