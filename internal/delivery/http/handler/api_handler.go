package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-dashboard/internal/delivery/http/middleware"
	apperrors "github.com/trip-dashboard/internal/pkg/errors"
	"github.com/trip-dashboard/internal/pkg/utils"
	"github.com/trip-dashboard/internal/view"
)

// DashboardAPIHandler - JSON API поверх сессии дашборда
type DashboardAPIHandler struct {
	logger *zap.Logger
}

func NewDashboardAPIHandler(logger *zap.Logger) *DashboardAPIHandler {
	return &DashboardAPIHandler{logger: logger}
}

// GetDashboard godoc
// @Summary Get dashboard snapshot
// @Description Текущее состояние страницы дашборда без обновления
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=view.Snapshot}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardAPIHandler) GetDashboard(c *fiber.Ctx) error {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrSessionNotFound)
	}

	return utils.SendSuccess(c, sess.Page.Snapshot(), &utils.Meta{SessionID: sess.ID})
}

// RefreshDashboard godoc
// @Summary Refresh dashboard
// @Description Применяет фильтр, запрашивает метрики, тепловую карту и поездки и возвращает состояние страницы
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body view.FormValues true "Значения фильтра"
// @Success 200 {object} utils.SuccessResponse{data=view.Snapshot}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/dashboard/refresh [post]
func (h *DashboardAPIHandler) RefreshDashboard(c *fiber.Ctx) error {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrSessionNotFound)
	}

	var values view.FormValues
	if err := c.BodyParser(&values); err != nil {
		h.logger.Debug("Invalid refresh body", zap.Error(err))
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithMessage(err.Error()))
	}

	start := time.Now()
	sess.Page.Form.Set(values)
	if err := sess.Controller.Refresh(c.UserContext()); err != nil {
		h.logger.Warn("Dashboard refresh failed",
			zap.String("session_id", sess.ID),
			zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, sess.Page.Snapshot(), &utils.Meta{
		SessionID: sess.ID,
		TimeMSec:  float64(time.Since(start).Microseconds()) / 1000,
	})
}
