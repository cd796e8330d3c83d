package domain

// Point - a coordinate in API payloads
type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

// NetworkStats - size of the loaded network
type NetworkStats struct {
	Stations     int `json:"stations"`
	Lines        int `json:"lines"`
	BaseLines    int `json:"base_lines"`
	RailSegments int `json:"rail_segments"`
	WalkSegments int `json:"walk_segments"`
}
