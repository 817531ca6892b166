package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	apperrors "github.com/trip-dashboard/internal/pkg/errors"
)

type SuccessResponse struct {
	Data interface{} `json:"data"`
	Meta *Meta       `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Error *apperrors.AppError `json:"error"`
}

type Meta struct {
	SessionID string  `json:"session_id,omitempty"`
	TimeMSec  float64 `json:"time_ms,omitempty"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, meta *Meta) error {
	return c.JSON(SuccessResponse{
		Data: data,
		Meta: meta,
	})
}

// SendError отдает AppError как есть, неуспешный ответ API поездок - как 502
// с телом ответа в сообщении, остальное - 500
func SendError(c *fiber.Ctx, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr,
		})
	}

	if rf, ok := apperrors.AsRequestFailed(err); ok {
		upstream := apperrors.ErrUpstreamRequestFailed.
			WithMessage(rf.Body).
			WithDetails(map[string]interface{}{"upstream_status": rf.StatusCode})
		return c.Status(upstream.StatusCode).JSON(ErrorResponse{
			Error: upstream,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: apperrors.ErrInternalServer,
	})
}
