package usecase

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/network"
	"github.com/transit-planner/internal/pkg/errors"
	"github.com/transit-planner/internal/pkg/validator"
	"github.com/transit-planner/internal/usecase/dto"
)

const bestStationsLimit = 5

// MetroUseCase - запросы по линиям и станциям
type MetroUseCase struct {
	graph  *network.Graph
	logger *zap.Logger

	// station name -> sorted base line names
	stationLines map[string][]string
}

// NewMetroUseCase indexes which base lines serve each station.
func NewMetroUseCase(graph *network.Graph, logger *zap.Logger) *MetroUseCase {
	uc := &MetroUseCase{
		graph:        graph,
		logger:       logger,
		stationLines: make(map[string][]string),
	}
	if graph == nil {
		return uc
	}

	sets := make(map[string]map[string]struct{})
	for _, line := range graph.Lines() {
		for _, st := range line.Stations() {
			if sets[st.Name()] == nil {
				sets[st.Name()] = make(map[string]struct{})
			}
			sets[st.Name()][line.BaseName()] = struct{}{}
		}
	}
	for name, set := range sets {
		uc.stationLines[name] = sortedKeys(set)
	}
	return uc
}

// ListLines - список базовых линий
func (uc *MetroUseCase) ListLines(ctx context.Context) ([]string, error) {
	if uc.graph == nil {
		return nil, errors.ErrNetworkUnavailable
	}
	set := make(map[string]struct{})
	for _, line := range uc.graph.Lines() {
		set[line.BaseName()] = struct{}{}
	}
	return sortedKeys(set), nil
}

// GetLine - станции и расписания всех вариантов линии
func (uc *MetroUseCase) GetLine(ctx context.Context, req dto.LineRequest) (*dto.LineResponse, error) {
	if uc.graph == nil {
		return nil, errors.ErrNetworkUnavailable
	}
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"error": err.Error()})
	}

	variants := uc.variants(req.Name)
	if len(variants) == 0 {
		return nil, errors.ErrLineNotFound.WithDetails(map[string]interface{}{"line": req.Name})
	}

	resp := &dto.LineResponse{
		Name:      variants[0].BaseName(),
		Stations:  []dto.Station{},
		Schedules: make([]dto.LineSchedule, 0, len(variants)),
	}
	seen := make(map[string]struct{})
	for _, line := range variants {
		resp.Schedules = append(resp.Schedules, dto.ConvertLineSchedule(line))
		for _, st := range line.Stations() {
			if _, ok := seen[st.Name()]; ok {
				continue
			}
			seen[st.Name()] = struct{}{}
			resp.Stations = append(resp.Stations, dto.ConvertStation(st, uc.stationLines[st.Name()]))
		}
	}
	sort.Slice(resp.Stations, func(i, j int) bool {
		return resp.Stations[i].Name < resp.Stations[j].Name
	})
	return resp, nil
}

// GetStationsCorrespondence - линии каждой станции
func (uc *MetroUseCase) GetStationsCorrespondence(ctx context.Context) ([]dto.StationCorrespondence, error) {
	if uc.graph == nil {
		return nil, errors.ErrNetworkUnavailable
	}
	stations := uc.graph.Stations()
	result := make([]dto.StationCorrespondence, 0, len(stations))
	for _, st := range stations {
		lines := uc.stationLines[st.Name()]
		if lines == nil {
			lines = []string{}
		}
		result = append(result, dto.StationCorrespondence{Station: st.Name(), Lines: lines})
	}
	return result, nil
}

// GetBestStations - станции с наибольшим числом пересадок
func (uc *MetroUseCase) GetBestStations(ctx context.Context) ([]dto.Station, error) {
	if uc.graph == nil {
		return nil, errors.ErrNetworkUnavailable
	}
	stations := uc.graph.Stations()
	sort.SliceStable(stations, func(i, j int) bool {
		return len(uc.stationLines[stations[i].Name()]) > len(uc.stationLines[stations[j].Name()])
	})
	if len(stations) > bestStationsLimit {
		stations = stations[:bestStationsLimit]
	}
	return uc.convertStations(stations), nil
}

// GetAllStations - все станции по алфавиту
func (uc *MetroUseCase) GetAllStations(ctx context.Context) ([]dto.Station, error) {
	if uc.graph == nil {
		return nil, errors.ErrNetworkUnavailable
	}
	return uc.convertStations(uc.graph.Stations()), nil
}

// GetLineSchedulesForStation - времена прохода линии через станцию
func (uc *MetroUseCase) GetLineSchedulesForStation(ctx context.Context, req dto.StationSchedulesRequest) (*dto.StationSchedulesResponse, error) {
	if uc.graph == nil {
		return nil, errors.ErrNetworkUnavailable
	}
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"error": err.Error()})
	}

	station := uc.graph.StationByName(req.Station)
	if station == nil {
		station = uc.graph.StationByNameFold(req.Station)
	}
	if station == nil {
		return nil, errors.ErrStationNotFound.WithDetails(map[string]interface{}{"station": req.Station})
	}

	variants := uc.variants(req.Line)
	if len(variants) == 0 {
		return nil, errors.ErrLineNotFound.WithDetails(map[string]interface{}{"line": req.Line})
	}

	set := make(map[int]struct{})
	for _, line := range variants {
		offset, ok := station.ScheduleFor(line.ScheduleKey())
		if !ok {
			continue
		}
		for _, d := range line.Departures() {
			set[d+offset] = struct{}{}
		}
	}

	departures := make([]int, 0, len(set))
	for d := range set {
		departures = append(departures, d)
	}
	sort.Ints(departures)

	return &dto.StationSchedulesResponse{
		Station:    station.Name(),
		Line:       variants[0].BaseName(),
		Departures: departures,
	}, nil
}

// variants returns the lines whose base name or full name matches, case-insensitively.
func (uc *MetroUseCase) variants(name string) []*domain.Line {
	name = strings.TrimSpace(name)
	var out []*domain.Line
	for _, line := range uc.graph.Lines() {
		if strings.EqualFold(line.BaseName(), name) || strings.EqualFold(line.Name(), name) {
			out = append(out, line)
		}
	}
	return out
}

func (uc *MetroUseCase) convertStations(stations []*domain.Node) []dto.Station {
	result := make([]dto.Station, 0, len(stations))
	for _, st := range stations {
		result = append(result, dto.ConvertStation(st, uc.stationLines[st.Name()]))
	}
	return result
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
