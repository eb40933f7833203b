package travel

import (
	"math"

	"hoofline/models"
)

// HaversineEstimator derives a minimum travel buffer from great-circle
// distance at an assumed average road speed. It stands in for a routing
// provider; anything implementing scheduling.TravelEstimator can replace it.
type HaversineEstimator struct {
	AvgSpeedKmh  float64 // assumed door-to-door average, default 40
	MinBufferMin int     // floor applied to every located pair, default 10
}

// NewHaversineEstimator applies defaults for unset fields.
func NewHaversineEstimator(avgSpeedKmh float64, minBufferMin int) HaversineEstimator {
	if avgSpeedKmh <= 0 {
		avgSpeedKmh = 40
	}
	if minBufferMin <= 0 {
		minBufferMin = 10
	}
	return HaversineEstimator{AvgSpeedKmh: avgSpeedKmh, MinBufferMin: minBufferMin}
}

// EstimateTravelMinutes returns the required gap in whole minutes between
// appointments at the two locations, never less than the configured floor.
func (e HaversineEstimator) EstimateTravelMinutes(from, to models.Location) int {
	distanceKm := haversine(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	minutes := int(math.Ceil(distanceKm / e.AvgSpeedKmh * 60))
	if minutes < e.MinBufferMin {
		return e.MinBufferMin
	}
	return minutes
}

// haversine calculates the great-circle distance (in km) between two lat/lon points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0
	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
