package http

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cvgen/internal/model"
	"cvgen/internal/usecase"
)

// Handler exposes the rendering pipeline over HTTP. Rendering is fast
// enough to answer synchronously, so there is no job queue.
type Handler struct {
	gen *usecase.Generator
	log *zap.Logger
}

func NewHandler(gen *usecase.Generator, log *zap.Logger) *Handler {
	return &Handler{gen: gen, log: log}
}

// Register mounts the routes on app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/health", h.health)
	app.Post("/render", h.render)
}

func (h *Handler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

type renderReq struct {
	Resume    json.RawMessage `json:"resume"`
	Lang      string          `json:"lang"`
	Anonymize bool            `json:"anonymize"`
	PDF       bool            `json:"pdf"`
}

// render validates the posted record and returns the finished document
// as text/html, or application/pdf when requested. Translation is not
// offered here: callers wanting English post an English record.
func (h *Handler) render(c *fiber.Ctx) error {
	reqID := uuid.New().String()
	log := h.log.With(zap.String("request_id", reqID))

	var req renderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if len(req.Resume) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing resume"})
	}

	rec, err := model.Parse(req.Resume)
	if err != nil {
		log.Warn("rejected resume", zap.Error(err))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	lang := req.Lang
	if lang == "" {
		lang = "fr"
	}

	html, err := h.gen.RenderHTML(rec, lang, req.Anonymize)
	if err != nil {
		log.Error("render failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "render failed"})
	}

	c.Set("X-Request-ID", reqID)
	if !req.PDF {
		c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
		return c.SendString(html)
	}

	pdf, err := h.gen.RenderPDF(c.UserContext(), html)
	if err != nil {
		log.Error("pdf failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "pdf rendering failed"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}
