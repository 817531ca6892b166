package handler

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/trip-dashboard/internal/delivery/http/middleware"
	apperrors "github.com/trip-dashboard/internal/pkg/errors"
	"github.com/trip-dashboard/internal/pkg/utils"
	"github.com/trip-dashboard/internal/usecase"
	"github.com/trip-dashboard/internal/view"
)

//go:embed templates/*.html
var templatesFS embed.FS

// DashboardPageData - данные для шаблона страницы
type DashboardPageData struct {
	Title    string
	Snapshot view.Snapshot
}

// DashboardHandler - HTML страница дашборда
type DashboardHandler struct {
	templates *template.Template
	logger    *zap.Logger
}

// NewDashboardHandler парсит встроенные шаблоны страницы
func NewDashboardHandler(logger *zap.Logger) (*DashboardHandler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &DashboardHandler{
		templates: tmpl,
		logger:    logger,
	}, nil
}

// Index - загрузка страницы: одно обновление с текущим фильтром сессии
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrSessionNotFound)
	}

	h.refresh(c, sess)
	return h.render(c, sess.Page.Snapshot())
}

// Refresh - нажатие кнопки обновления: значения формы сохраняются в сессии
func (h *DashboardHandler) Refresh(c *fiber.Ctx) error {
	sess, ok := middleware.SessionFromCtx(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrSessionNotFound)
	}

	var values view.FormValues
	if err := c.BodyParser(&values); err != nil {
		h.logger.Debug("Invalid refresh form", zap.Error(err))
	} else {
		sess.Page.Form.Set(values)
	}

	h.refresh(c, sess)
	return h.render(c, sess.Page.Snapshot())
}

// refresh логирует ошибку обновления, страница рисуется с текущим состоянием
func (h *DashboardHandler) refresh(c *fiber.Ctx, sess *usecase.DashboardSession) {
	if err := sess.Controller.Refresh(c.UserContext()); err != nil {
		h.logger.Warn("Dashboard refresh failed",
			zap.String("session_id", sess.ID),
			zap.Error(err))
	}
}

func (h *DashboardHandler) render(c *fiber.Ctx, snapshot view.Snapshot) error {
	var buf bytes.Buffer
	data := DashboardPageData{
		Title:    "Trip Dashboard",
		Snapshot: snapshot,
	}
	if err := h.templates.ExecuteTemplate(&buf, "dashboard.html", data); err != nil {
		h.logger.Error("Failed to render dashboard", zap.Error(err))
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}
