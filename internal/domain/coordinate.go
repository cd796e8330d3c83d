package domain

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the radius used for great-circle distances between stations.
const EarthRadiusKm = 6378.127

// Coordinate - a validated WGS84 point
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// NewCoordinate validates latitude in [-90,90] and longitude in [-180,180].
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("%w: latitude %v must be between -90 and 90", ErrInvalidArgument, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("%w: longitude %v must be between -180 and 180", ErrInvalidArgument, lon)
	}
	return Coordinate{Lat: lat, Lon: lon}, nil
}

// DistanceTo returns the haversine distance in kilometres.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	dLat := (other.Lat - c.Lat) * math.Pi / 180.0
	dLon := (other.Lon - c.Lon) * math.Pi / 180.0

	lat1Rad := c.Lat * math.Pi / 180.0
	lat2Rad := other.Lat * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c2 := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c2
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%v, %v", c.Lat, c.Lon)
}
