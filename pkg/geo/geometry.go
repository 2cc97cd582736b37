package geo

import "github.com/lintang-b-s/foodmap-search/pkg/datastructure"

// BoundingBox model info
// @Description smallest lat/lng box containing every marker.
type BoundingBox struct {
	Min datastructure.Coordinate `json:"min"` // south-west corner
	Max datastructure.Coordinate `json:"max"` // north-east corner
}

func NewBoundingBox(points []datastructure.Coordinate) (BoundingBox, bool) {
	if len(points) == 0 {
		return BoundingBox{}, false
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		if p.Lat < min.Lat {
			min.Lat = p.Lat
		}
		if p.Lat > max.Lat {
			max.Lat = p.Lat
		}
		if p.Lng < min.Lng {
			min.Lng = p.Lng
		}
		if p.Lng > max.Lng {
			max.Lng = p.Lng
		}
	}
	return BoundingBox{Min: min, Max: max}, true
}

func (bb BoundingBox) Contains(p datastructure.Coordinate) bool {
	if p.Lat < bb.Min.Lat || p.Lat > bb.Max.Lat {
		return false
	}
	if p.Lng < bb.Min.Lng || p.Lng > bb.Max.Lng {
		return false
	}
	return true
}

// Centroid is the arithmetic mean of the points. good enough for a map center at city scale.
func Centroid(points []datastructure.Coordinate) (datastructure.Coordinate, bool) {
	if len(points) == 0 {
		return datastructure.Coordinate{}, false
	}
	var latSum, lngSum float64
	for _, p := range points {
		latSum += p.Lat
		lngSum += p.Lng
	}
	n := float64(len(points))
	return datastructure.NewCoordinate(latSum/n, lngSum/n), true
}
