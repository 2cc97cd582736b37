package places

import "github.com/lintang-b-s/foodmap-search/pkg/datastructure"

// google maps web service json, only the fields we read.

type apiStatus string

const (
	statusOK          apiStatus = "OK"
	statusZeroResults apiStatus = "ZERO_RESULTS"
	statusNotFound    apiStatus = "NOT_FOUND"
)

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location *latLng `json:"location"`
}

type openingHours struct {
	OpenNow     *bool    `json:"open_now"`
	WeekdayText []string `json:"weekday_text"`
}

type geocodeResponse struct {
	Results []struct {
		Geometry geometry `json:"geometry"`
	} `json:"results"`
	Status       apiStatus `json:"status"`
	ErrorMessage string    `json:"error_message"`
}

type placeResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Vicinity         string        `json:"vicinity"`
	Geometry         *geometry     `json:"geometry"`
	Rating           *float64      `json:"rating"`
	Types            []string      `json:"types"`
	OpeningHours     *openingHours `json:"opening_hours"`
}

type textSearchResponse struct {
	Results      []placeResult `json:"results"`
	Status       apiStatus     `json:"status"`
	ErrorMessage string        `json:"error_message"`
}

type detailsResponse struct {
	Result struct {
		FormattedPhoneNumber *string       `json:"formatted_phone_number"`
		OpeningHours         *openingHours `json:"opening_hours"`
	} `json:"result"`
	Status       apiStatus `json:"status"`
	ErrorMessage string    `json:"error_message"`
}

func (p placeResult) toRawResult() datastructure.RawResult {
	address := p.FormattedAddress
	if address == "" {
		address = p.Vicinity
	}
	raw := datastructure.RawResult{
		ID:      p.PlaceID,
		Name:    p.Name,
		Address: address,
		Rating:  p.Rating,
		Types:   p.Types,
	}
	if raw.Types == nil {
		raw.Types = []string{}
	}
	if p.Geometry != nil && p.Geometry.Location != nil {
		c := datastructure.NewCoordinate(p.Geometry.Location.Lat, p.Geometry.Location.Lng)
		raw.Coordinate = &c
	}
	if p.OpeningHours != nil {
		raw.OpenNow = p.OpeningHours.OpenNow
	}
	return raw
}
