package usecase

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/domain/repository"
	"github.com/transit-planner/internal/network"
	"github.com/transit-planner/internal/pkg/errors"
	"github.com/transit-planner/internal/pkg/utils"
	"github.com/transit-planner/internal/pkg/validator"
	"github.com/transit-planner/internal/usecase/dto"
)

const (
	MethodTime     = "TIME"
	MethodDistance = "DISTANCE"

	TransportMetro     = "METRO"
	TransportFoot      = "FOOT"
	TransportMetroFoot = "METRO_FOOT"
)

// PathUseCase - use case для поиска маршрутов
type PathUseCase struct {
	graph     *network.Graph
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewPathUseCase - создание нового PathUseCase. cacheRepo may be nil.
func NewPathUseCase(
	graph *network.Graph,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *PathUseCase {
	return &PathUseCase{
		graph:     graph,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetBestPath - поиск лучшего маршрута между двумя станциями или точками.
// An unreachable end is not an error: the response has Found=false and no segments.
func (uc *PathUseCase) GetBestPath(ctx context.Context, req dto.BestPathRequest) (*dto.BestPathResponse, error) {
	if uc.graph == nil {
		return nil, errors.ErrNetworkUnavailable
	}
	if err := validator.Validate(req); err != nil {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"error": err.Error()})
	}

	method, err := ParseMethod(req.Method)
	if err != nil {
		return nil, err
	}
	transportation := NormalizeTransportation(req.Transportation)
	if req.Clock != "" {
		req.Time, _ = validator.ParseClock(req.Clock)
	}

	requestID := uuid.NewString()
	key := routeKey(req, method, transportation)
	if cached := uc.cachedRoute(ctx, key); cached != nil {
		cached.RequestID = requestID
		cached.Cached = true
		return cached, nil
	}

	start, err := uc.resolveEndpoint(req.Start)
	if err != nil {
		return nil, err
	}
	end, err := uc.resolveEndpoint(req.End)
	if err != nil {
		return nil, err
	}

	startWeight := float64(req.Time)
	if method == MethodDistance {
		startWeight = 0
	}
	opts := SearchOptions(method, transportation)

	uc.logger.Debug("Searching best path",
		zap.String("request_id", requestID),
		zap.String("start", start.Name()),
		zap.String("end", end.Name()),
		zap.Float64("start_weight", startWeight),
		zap.String("method", method),
		zap.String("transportation", transportation),
	)

	hops, err := uc.graph.BestPath(start, end, startWeight, opts)
	if err != nil {
		uc.logger.Error("Best path search failed", zap.String("request_id", requestID), zap.Error(err))
		return nil, mapDomainError(err)
	}

	resp := &dto.BestPathResponse{
		RequestID:      requestID,
		Start:          start.Name(),
		End:            end.Name(),
		Method:         method,
		Transportation: transportation,
		Departure:      startWeight,
		Arrival:        startWeight,
		Found:          len(hops) > 0 || start.Is(end),
		Segments:       make([]dto.PathSegment, 0, len(hops)),
	}
	for _, h := range hops {
		resp.Segments = append(resp.Segments, dto.ConvertHop(h))
		resp.Distance += h.Distance
	}
	if len(hops) > 0 {
		resp.Arrival = hops[len(hops)-1].Arrival
	}

	uc.storeRoute(ctx, key, resp)
	return resp, nil
}

// ParseMethod accepts TIME or DISTANCE in any case; empty means TIME.
func ParseMethod(method string) (string, error) {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case "", MethodTime:
		return MethodTime, nil
	case MethodDistance:
		return MethodDistance, nil
	default:
		return "", errors.ErrInvalidMethod.WithDetails(map[string]interface{}{"method": method})
	}
}

// NormalizeTransportation maps unknown values to METRO_FOOT.
func NormalizeTransportation(t string) string {
	switch v := strings.ToUpper(strings.TrimSpace(t)); v {
	case TransportMetro, TransportFoot:
		return v
	default:
		return TransportMetroFoot
	}
}

// SearchOptions translates the request vocabulary into search options.
func SearchOptions(method, transportation string) network.SearchOptions {
	return network.SearchOptions{
		AllowRail:      transportation != TransportFoot,
		AllowWalk:      transportation != TransportMetro,
		OptimizeByTime: method == MethodTime,
	}
}

// resolveEndpoint: exact station name, then case-insensitive, then a "(lat, lon)" point.
func (uc *PathUseCase) resolveEndpoint(s string) (*domain.Node, error) {
	name := strings.TrimSpace(s)
	if st := uc.graph.StationByName(name); st != nil {
		return st, nil
	}
	if st := uc.graph.StationByNameFold(name); st != nil {
		return st, nil
	}

	lat, lon, ok := utils.ParseCoordinatePair(name)
	if !ok {
		return nil, errors.ErrStationNotFound.WithDetails(map[string]interface{}{"station": name})
	}
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"point": name})
	}
	node, err := domain.NewPersonalizedNode(fmt.Sprintf("(%v, %v)", lat, lon), lat, lon)
	if err != nil {
		return nil, errors.ErrInvalidCoordinates.WithDetails(map[string]interface{}{"point": name})
	}
	return node, nil
}

func (uc *PathUseCase) cachedRoute(ctx context.Context, key string) *dto.BestPathResponse {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.GetRoute(ctx, key)
	if err != nil {
		uc.logger.Warn("Failed to get route from cache", zap.String("key", key), zap.Error(err))
		return nil
	}
	if data == nil {
		return nil
	}

	var resp dto.BestPathResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Failed to unmarshal cached route", zap.String("key", key), zap.Error(err))
		return nil
	}
	return &resp
}

func (uc *PathUseCase) storeRoute(ctx context.Context, key string, resp *dto.BestPathResponse) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal route", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.SetRoute(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache route", zap.String("key", key), zap.Error(err))
	}
}

func routeKey(req dto.BestPathRequest, method, transportation string) string {
	return fmt.Sprintf("%s|%s|%d|%s|%s",
		strings.TrimSpace(req.Start), strings.TrimSpace(req.End), req.Time, method, transportation)
}

func mapDomainError(err error) error {
	switch {
	case stderrors.Is(err, domain.ErrUnknownNode):
		return errors.ErrStationNotFound.WithDetails(map[string]interface{}{"error": err.Error()})
	case stderrors.Is(err, domain.ErrInvalidArgument):
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"error": err.Error()})
	default:
		return errors.ErrInternalServer
	}
}
