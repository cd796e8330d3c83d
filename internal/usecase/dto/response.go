package dto

import "github.com/transit-planner/internal/domain"

// PathPoint - начало или конец участка маршрута
type PathPoint struct {
	Name string `json:"name"`
	domain.Point
}

// PathSegment - один участок маршрута
type PathSegment struct {
	Start     PathPoint `json:"start"`
	End       PathPoint `json:"end"`
	Mode      string    `json:"mode"` // METRO | FOOT
	Departure float64   `json:"departure"`
	Arrival   float64   `json:"arrival"`
	Distance  float64   `json:"distance"` // km
	Line      string    `json:"line,omitempty"`
	Terminus  string    `json:"terminus,omitempty"`
}

// BestPathResponse - ответ на поиск маршрута. Departure and Arrival are seconds since
// midnight for TIME and accumulated km for DISTANCE.
type BestPathResponse struct {
	RequestID      string        `json:"request_id"`
	Start          string        `json:"start"`
	End            string        `json:"end"`
	Method         string        `json:"method"`
	Transportation string        `json:"transportation"`
	Departure      float64       `json:"departure"`
	Arrival        float64       `json:"arrival"`
	Distance       float64       `json:"distance"`
	Found          bool          `json:"found"`
	Cached         bool          `json:"cached"`
	Segments       []PathSegment `json:"segments"`
}

// Station - станция сети
type Station struct {
	Name  string   `json:"name"`
	Lat   float64  `json:"lat"`
	Lon   float64  `json:"lon"`
	Lines []string `json:"lines,omitempty"`
}

// LineSchedule - расписание одного варианта линии
type LineSchedule struct {
	Line       string `json:"line"`
	Terminus   string `json:"terminus"`
	Direction  string `json:"direction"`
	Departures []int  `json:"departures"`
}

// LineResponse - линия со всеми вариантами
type LineResponse struct {
	Name      string         `json:"name"`
	Stations  []Station      `json:"stations"`
	Schedules []LineSchedule `json:"schedules"`
}

// StationCorrespondence - линии, обслуживающие станцию
type StationCorrespondence struct {
	Station string   `json:"station"`
	Lines   []string `json:"lines"`
}

// StationSchedulesResponse - проходы линии через станцию
type StationSchedulesResponse struct {
	Station    string `json:"station"`
	Line       string `json:"line"`
	Departures []int  `json:"departures"`
}
