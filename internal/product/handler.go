package product

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/productos", h.getProducts)
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		// query detail stays server-side; the client only sees a generic message
		h.logger.Error("error al obtener productos", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("Error al obtener productos")
	}
	return c.JSON(products)
}
