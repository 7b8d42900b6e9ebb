package product

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestList(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"id", "nombre", "descripcion", "precio", "imagen", "stock"}).
		AddRow(1, "Camiseta", "Camiseta de algodón", 15.5, "/img/camiseta.png", 20).
		AddRow(2, "Taza", nil, 7.0, nil, 50)
	mock.ExpectQuery("FROM productos").WillReturnRows(rows)

	products, err := repo.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].Nombre != "Camiseta" || products[0].Precio != 15.5 {
		t.Fatalf("unexpected first product %+v", products[0])
	}
	if products[1].Descripcion != nil {
		t.Fatalf("expected nil descripcion, got %v", *products[1].Descripcion)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestList_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock error: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM productos").WillReturnError(errors.New("connection refused"))

	if _, err := repo.List(); err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
