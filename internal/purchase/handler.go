package purchase

import (
	"strconv"

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
	app.Get("/compras/:usuarioID<[0-9]+>", h.getPurchases)
}

func (h *Handler) getPurchases(c *fiber.Ctx) error {
	userID, err := strconv.Atoi(c.Params("usuarioID"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "usuario no válido"})
	}

	purchases, err := h.service.ListByUser(userID)
	if err != nil {
		h.logger.Error("error al obtener compras", zap.Int("usuario_id", userID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Error al obtener las compras"})
	}
	return c.JSON(purchases)
}
