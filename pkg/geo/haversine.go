package geo

import (
	"math"

	"github.com/lintang-b-s/foodmap-search/pkg/datastructure"
)

const (
	earthRadiusKM = 6371.0
	kRad          = math.Pi / 180.0
)

// https://www.movable-type.co.uk/scripts/latlong.html
// sin^2(a/2)
func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

func degToRad(d float64) float64 {
	return d * kRad
}

// HaversineDistance. great-circle distance in km between two points given in degrees.
func HaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = degToRad(latOne)
	longOne = degToRad(longOne)
	latTwo = degToRad(latTwo)
	longTwo = degToRad(longTwo)

	sqrtHavAngle := math.Sqrt(havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo))
	// rounding can push the argument a hair above 1 for antipodal points
	centralAngleRad := 2.0 * math.Asin(math.Min(1, sqrtHavAngle))
	return earthRadiusKM * centralAngleRad
}

// Distance returns the haversine distance between a and b in kilometers.
func Distance(a, b datastructure.Coordinate) float64 {
	return HaversineDistance(a.Lat, a.Lng, b.Lat, b.Lng)
}
