package domain

// Coordinate is a point in degrees. Values are stored as reported; the
// ingest layers validate ranges before anything reaches the core.
type Coordinate struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}
