package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler exposes the checkout endpoint.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/finalizar-compra", h.finalizePurchase)
}

type checkoutRequest struct {
	Carrito   []CartItem `json:"carrito"`
	UsuarioID int        `json:"usuario_id"`
}

func (h *Handler) finalizePurchase(c *fiber.Ctx) error {
	payload := new(checkoutRequest)
	if err := c.BodyParser(payload); err != nil {
		// a body where carrito is not an array lands here
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": InvalidCartMessage})
	}

	result, err := h.service.Checkout(payload.Carrito, payload.UsuarioID)
	if err != nil {
		var stageErr *StageError
		if errors.As(err, &stageErr) {
			h.logger.Error("fallo en finalizar-compra",
				zap.String("etapa", string(stageErr.Stage)),
				zap.Int("usuario_id", payload.UsuarioID),
				zap.Error(stageErr.Err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": stageErr.Message()})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": InvalidCartMessage})
	}

	h.logger.Info("compra finalizada",
		zap.Int("usuario_id", payload.UsuarioID),
		zap.Int("compra_id", result.PurchaseID),
		zap.Int("pedido_id", result.OrderID))
	return c.JSON(fiber.Map{"mensaje": result.Mensaje})
}
