package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthResponse - ответ health check
type HealthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Sessions int       `json:"sessions"`
}

// SessionCounter - источник числа активных сессий
type SessionCounter interface {
	Count() int
}

type HealthHandler struct {
	sessions SessionCounter
}

func NewHealthHandler(sessions SessionCounter) *HealthHandler {
	return &HealthHandler{sessions: sessions}
}

// Health godoc
// @Summary Health check
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status:   "healthy",
		Time:     time.Now(),
		Sessions: h.sessions.Count(),
	})
}
