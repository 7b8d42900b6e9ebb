package product

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// failingRepo simulates a data-access failure on every call.
type failingRepo struct{}

func (r *failingRepo) List() ([]Product, error) {
	return nil, errors.New("db down")
}

func setupApp(repo Repository) *fiber.App {
	app := fiber.New()
	h := NewHandler(NewService(repo), zap.NewNop())
	h.RegisterPublicRoutes(app)
	return app
}

func TestGetProducts(t *testing.T) {
	seed := []Product{
		{ID: 1, Nombre: "Camiseta", Precio: 15.5, Stock: 20},
		{ID: 2, Nombre: "Taza", Precio: 7.0, Stock: 50},
	}
	app := setupApp(NewInMemoryRepository(seed))

	req := httptest.NewRequest("GET", "/productos", nil)
	res, err := app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var products []Product
	if err := json.NewDecoder(res.Body).Decode(&products); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(products) != 2 || products[0].Nombre != "Camiseta" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestGetProducts_RepeatedCallsIdentical(t *testing.T) {
	app := setupApp(NewInMemoryRepository([]Product{{ID: 7, Nombre: "Gorra", Precio: 12.0}}))

	var bodies []string
	for i := 0; i < 2; i++ {
		res, err := app.Test(httptest.NewRequest("GET", "/productos", nil), -1)
		if err != nil {
			t.Fatal(err)
		}
		b, _ := io.ReadAll(res.Body)
		bodies = append(bodies, string(b))
	}
	if bodies[0] != bodies[1] {
		t.Fatalf("expected identical listings, got %q vs %q", bodies[0], bodies[1])
	}
}

func TestGetProducts_ReadFailure(t *testing.T) {
	app := setupApp(&failingRepo{})

	res, err := app.Test(httptest.NewRequest("GET", "/productos", nil), -1)
	if err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if string(b) != "Error al obtener productos" {
		t.Fatalf("unexpected body %q", string(b))
	}
}
