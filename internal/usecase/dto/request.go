package dto

// BestPathRequest - запрос на поиск лучшего маршрута
type BestPathRequest struct {
	// Start and End are station names or free points written "(lat, lon)"
	Start string `query:"start" json:"start" validate:"required"`
	End   string `query:"end" json:"end" validate:"required"`
	// Time is the departure time in seconds since midnight
	Time int `query:"time" json:"time" validate:"min=0"`
	// Clock overrides Time when set, "hh:mm"
	Clock          string `query:"clock" json:"clock,omitempty" validate:"omitempty,clock"`
	Method         string `query:"method" json:"method"`
	Transportation string `query:"transportation" json:"transportation"`
}

// LineRequest - запрос информации о линии
type LineRequest struct {
	Name string `params:"name" validate:"required"`
}

// StationSchedulesRequest - запрос расписания линии на станции
type StationSchedulesRequest struct {
	Station string `query:"station" validate:"required"`
	Line    string `query:"line" validate:"required"`
}
