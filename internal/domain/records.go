package domain

// StationRecord is an ingested station with its coordinate.
type StationRecord struct {
	Name      string  `json:"name" db:"name" validate:"required"`
	Longitude float64 `json:"longitude" db:"longitude" validate:"min=-180,max=180"`
	Latitude  float64 `json:"latitude" db:"latitude" validate:"min=-90,max=90"`
}

// RailSegmentRecord is an ingested directed rail hop between two stations.
type RailSegmentRecord struct {
	StartName string  `json:"start_name" db:"start_name" validate:"required"`
	EndName   string  `json:"end_name" db:"end_name" validate:"required,nefield=StartName"`
	LineID    string  `json:"line_id" db:"line_id" validate:"required"`
	Duration  int     `json:"duration" db:"duration" validate:"min=0"`  // seconds
	Distance  float64 `json:"distance" db:"distance" validate:"min=0"` // km
}

// TimetableRow is one terminus departure of a line variant.
type TimetableRow struct {
	LineID       string `json:"line_id" db:"line_id" validate:"required"`
	TerminusName string `json:"terminus_name" db:"terminus_name" validate:"required"`
	Departure    int    `json:"departure" db:"departure" validate:"min=0"` // seconds since midnight
	Variant      string `json:"variant" db:"variant"`
}

// VariantLineID is the line id the row's departures are attached to.
func (r TimetableRow) VariantLineID() string {
	return VariantLineID(r.LineID, r.Variant)
}

// VariantLineID joins a line id and a variant tag the way rail segments name their line.
func VariantLineID(lineID, variant string) string {
	return lineID + " variant " + variant
}

// NetworkRecords is everything an ingestion source hands to the network builder.
// Segment order matters: the first segment seen for a line fixes its terminus.
type NetworkRecords struct {
	Stations   []StationRecord
	Segments   []RailSegmentRecord
	Timetables []TimetableRow
}
