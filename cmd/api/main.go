package main

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/tienda-online/tienda-backend/internal/checkout"
	"github.com/tienda-online/tienda-backend/internal/config"
	"github.com/tienda-online/tienda-backend/internal/invoice"
	"github.com/tienda-online/tienda-backend/internal/product"
	"github.com/tienda-online/tienda-backend/internal/purchase"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		// missing DATABASE_URL lands here; the process must not start without it
		logger.Fatal("configuración inválida", zap.Error(err))
	}

	db := mustOpenDB(cfg, logger)
	defer db.Close()

	ensureSchema(db, logger)

	app := fiber.New()
	setupCORS(app, cfg)
	app.Use(requestLogger(logger))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Servidor backend en funcionamiento")
	})

	productHandler := product.NewHandler(product.NewService(product.NewPostgresRepository(db)), logger)
	productHandler.RegisterPublicRoutes(app)

	checkoutHandler := checkout.NewHandler(checkout.NewService(checkout.NewPostgresRepository(db)), logger)
	checkoutHandler.RegisterPublicRoutes(app)

	purchaseHandler := purchase.NewHandler(purchase.NewService(purchase.NewPostgresRepository(db)), logger)
	purchaseHandler.RegisterPublicRoutes(app)

	invoiceHandler := invoice.NewHandler(invoice.NewService(invoice.NewPostgresRepository(db)), logger)
	invoiceHandler.RegisterPublicRoutes(app)

	logger.Info("servidor backend escuchando", zap.String("addr", cfg.Addr))
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Fatal("servidor detenido", zap.Error(err))
	}
}

func setupCORS(app *fiber.App, cfg config.Config) {
	allowOrigins := "*"
	if !cfg.AllowAllOrigins {
		allowOrigins = strings.Join(cfg.AllowOrigins, ",")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := uuid.New().String()
		c.Locals("requestID", requestID)
		err := c.Next()
		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", c.Method()),
			zap.String("path", c.OriginalURL()),
			zap.Int("status", c.Response().StatusCode()))
		return err
	}
}

func mustOpenDB(cfg config.Config, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("no se pudo abrir la base de datos", zap.Error(err))
	}

	// fixed-size pool; callers queue on the driver when it is exhausted
	db.SetMaxOpenConns(10)

	if err := db.Ping(); err != nil {
		logger.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}

	return db
}

func ensureSchema(db *sql.DB, logger *zap.Logger) {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS productos (
			id SERIAL PRIMARY KEY,
			nombre TEXT NOT NULL,
			descripcion TEXT,
			precio numeric NOT NULL DEFAULT 0,
			imagen TEXT,
			stock INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS compras (
			id SERIAL PRIMARY KEY,
			usuario_id INT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS detalle_compras (
			id SERIAL PRIMARY KEY,
			compra_id INT NOT NULL,
			producto_id INT NOT NULL,
			cantidad INT NOT NULL,
			precio_unitario numeric NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS pedidos (
			id SERIAL PRIMARY KEY,
			producto_id INT NOT NULL,
			cantidad INT NOT NULL,
			total numeric NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS facturas (
			id SERIAL PRIMARY KEY,
			pedido_id INT NOT NULL,
			total numeric NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			logger.Fatal("no se pudo preparar el esquema", zap.Error(err))
		}
	}
}
