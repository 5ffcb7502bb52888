package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/stockroom/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --case underscore --name Products|Purchases|Sales|Repository --output=./mocks
type (
	Products interface {
		// AddProduct stores a new product and returns it with its id and timestamps.
		AddProduct(ctx context.Context, prd *entity.ProductInsert) (*entity.Product, error)
		// GetProducts returns active products ordered by creation time.
		GetProducts(ctx context.Context) ([]entity.Product, error)
		// GetProductsByIds returns products by id, deleted ones included.
		GetProductsByIds(ctx context.Context, ids []string) ([]entity.Product, error)
		UpdateProduct(ctx context.Context, id string, prd *entity.ProductInsert) error
		// DeleteProduct soft deletes a product.
		DeleteProduct(ctx context.Context, id string) error
	}

	Purchases interface {
		// AddPurchase stores the purchased products and the purchase referencing them.
		AddPurchase(ctx context.Context, pn *entity.PurchaseNew) (*entity.Purchase, error)
		// ListPurchases returns active purchases created inside rng, oldest first.
		ListPurchases(ctx context.Context, rng entity.DateRange) ([]entity.Purchase, error)
		UpdatePurchase(ctx context.Context, id string, pi *entity.PurchaseInsert) error
		DeletePurchase(ctx context.Context, id string) error
	}

	Sales interface {
		AddSale(ctx context.Context, sn *entity.SaleNew) (*entity.Sale, error)
		// ListSales returns active sales created inside rng, oldest first.
		ListSales(ctx context.Context, rng entity.DateRange) ([]entity.Sale, error)
		UpdateSale(ctx context.Context, id string, si *entity.SaleInsert) error
		DeleteSale(ctx context.Context, id string) error
	}

	Repository interface {
		Products() Products
		Purchases() Purchases
		Sales() Sales
		Ping(ctx context.Context) error
		Now() time.Time
		Close()
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
