package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/pkg/utils"
	"github.com/transit-planner/internal/usecase"
	"github.com/transit-planner/internal/usecase/dto"
)

// MetroHandler - обработчик запросов по линиям и станциям
type MetroHandler struct {
	metroUC *usecase.MetroUseCase
	logger  *zap.Logger
}

// NewMetroHandler - создание нового MetroHandler
func NewMetroHandler(metroUC *usecase.MetroUseCase, logger *zap.Logger) *MetroHandler {
	return &MetroHandler{
		metroUC: metroUC,
		logger:  logger,
	}
}

// ListLines godoc
// @Summary Список линий
// @Tags Metro
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /api/v1/metro/list [get]
func (h *MetroHandler) ListLines(c *fiber.Ctx) error {
	lines, err := h.metroUC.ListLines(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, lines, &utils.Meta{Total: len(lines)})
}

// GetLine godoc
// @Summary Линия со станциями и расписанием
// @Tags Metro
// @Produce json
// @Param name path string true "Базовое имя линии, например 7B"
// @Success 200 {object} utils.SuccessResponse{data=dto.LineResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/metro/{name} [get]
func (h *MetroHandler) GetLine(c *fiber.Ctx) error {
	req := dto.LineRequest{Name: c.Params("name")}

	line, err := h.metroUC.GetLine(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, line, nil)
}

// GetBestStations godoc
// @Summary Станции с наибольшим числом линий
// @Tags Metro
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.Station}
// @Router /api/v1/metro/best-stations [get]
func (h *MetroHandler) GetBestStations(c *fiber.Ctx) error {
	stations, err := h.metroUC.GetBestStations(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}

// GetStationsCorrespondence godoc
// @Summary Линии каждой станции
// @Tags Metro
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.StationCorrespondence}
// @Router /api/v1/metro/stations-correspondence [get]
func (h *MetroHandler) GetStationsCorrespondence(c *fiber.Ctx) error {
	corr, err := h.metroUC.GetStationsCorrespondence(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, corr, &utils.Meta{Total: len(corr)})
}

// GetAllStations godoc
// @Summary Все станции
// @Tags Metro
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.Station}
// @Router /api/v1/metro/stations [get]
func (h *MetroHandler) GetAllStations(c *fiber.Ctx) error {
	stations, err := h.metroUC.GetAllStations(c.UserContext())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stations, &utils.Meta{Total: len(stations)})
}

// GetStationSchedules godoc
// @Summary Проходы линии через станцию
// @Tags Metro
// @Produce json
// @Param station query string true "Станция"
// @Param line query string true "Базовое имя линии"
// @Success 200 {object} utils.SuccessResponse{data=dto.StationSchedulesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/metro/station-schedules [get]
func (h *MetroHandler) GetStationSchedules(c *fiber.Ctx) error {
	req := dto.StationSchedulesRequest{
		Station: c.Query("station"),
		Line:    c.Query("line"),
	}

	resp, err := h.metroUC.GetLineSchedulesForStation(c.UserContext(), req)
	if err != nil {
		h.logger.Debug("Station schedules lookup failed", zap.String("station", req.Station), zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, resp, &utils.Meta{Total: len(resp.Departures)})
}
