// internal/geo/haversine.go
package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// DefaultRadiusKm applies when a nearby search does not name a radius.
const DefaultRadiusKm = 10.0

// Locatable is anything that may carry a coordinate pair.
// ok is false when either latitude or longitude is unknown.
type Locatable interface {
	Coordinates() (lat, lon float64, ok bool)
}

// DistanceKm returns the Haversine distance between two points given in degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)
	dPhi := phi2 - phi1
	dLambda := toRadians(lon2) - toRadians(lon1)

	a := math.Pow(math.Sin(dPhi/2), 2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin(dLambda/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// FindNearby keeps the items within radiusKm of the center, in input order.
// Items without coordinates are skipped. A negative radius matches nothing.
func FindNearby[T Locatable](items []T, centerLat, centerLon, radiusKm float64) []T {
	nearby := make([]T, 0)
	if radiusKm < 0 || math.IsNaN(radiusKm) {
		return nearby
	}

	for _, item := range items {
		lat, lon, ok := item.Coordinates()
		if !ok {
			continue
		}
		if DistanceKm(centerLat, centerLon, lat, lon) <= radiusKm {
			nearby = append(nearby, item)
		}
	}

	return nearby
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
