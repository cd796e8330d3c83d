package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/pkg/errors"
	"github.com/transit-planner/internal/pkg/utils"
	"github.com/transit-planner/internal/usecase"
	"github.com/transit-planner/internal/usecase/dto"
)

// PathHandler - обработчик поиска маршрутов
type PathHandler struct {
	pathUC *usecase.PathUseCase
	logger *zap.Logger
}

// NewPathHandler - создание нового PathHandler
func NewPathHandler(pathUC *usecase.PathUseCase, logger *zap.Logger) *PathHandler {
	return &PathHandler{
		pathUC: pathUC,
		logger: logger,
	}
}

// GetBestPath godoc
// @Summary Лучший маршрут
// @Description Ищет маршрут между двумя станциями или точками "(lat, lon)" с учетом расписания
// @Tags Path
// @Produce json
// @Param start query string true "Станция или точка (lat, lon)"
// @Param end query string true "Станция или точка (lat, lon)"
// @Param time query int false "Время отправления, секунды от полуночи" default(0)
// @Param clock query string false "Время отправления hh:mm, заменяет time"
// @Param method query string false "TIME или DISTANCE" default(TIME)
// @Param transportation query string false "METRO, FOOT или METRO_FOOT" default(METRO_FOOT)
// @Success 200 {object} utils.SuccessResponse{data=dto.BestPathResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/path/best-path [get]
func (h *PathHandler) GetBestPath(c *fiber.Ctx) error {
	var req dto.BestPathRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{"error": err.Error()}))
	}

	result, err := h.pathUC.GetBestPath(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:     len(result.Segments),
		RequestID: result.RequestID,
		Cached:    result.Cached,
	})
}
