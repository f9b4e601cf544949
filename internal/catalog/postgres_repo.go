package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pricecompare/internal/product"
)

// PostgresSource reads the catalog from the products table.
type PostgresSource struct {
	db *pgxpool.Pool
}

func NewPostgresSource(db *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{db: db}
}

const selectProductsSQL = `
	SELECT id, name,
		amazon_price, amazon_rating, amazon_url,
		flipkart_price, flipkart_rating, flipkart_url,
		myntra_price, myntra_rating, myntra_url
	FROM products
	ORDER BY id`

func (s *PostgresSource) Load(ctx context.Context) ([]product.Product, error) {
	rows, err := s.db.Query(ctx, selectProductsSQL)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}

	products, err := pgx.CollectRows(rows, scanProduct)
	if err != nil {
		return nil, fmt.Errorf("scan products: %w", err)
	}
	return products, nil
}

func scanProduct(row pgx.CollectableRow) (product.Product, error) {
	var p product.Product
	err := row.Scan(
		&p.ID, &p.Name,
		&p.Amazon.Price, &p.Amazon.Rating, &p.Amazon.URL,
		&p.Flipkart.Price, &p.Flipkart.Rating, &p.Flipkart.URL,
		&p.Myntra.Price, &p.Myntra.Rating, &p.Myntra.URL,
	)
	return p, err
}

const upsertProductSQL = `
	INSERT INTO products (id, name,
		amazon_price, amazon_rating, amazon_url,
		flipkart_price, flipkart_rating, flipkart_url,
		myntra_price, myntra_rating, myntra_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		amazon_price = EXCLUDED.amazon_price,
		amazon_rating = EXCLUDED.amazon_rating,
		amazon_url = EXCLUDED.amazon_url,
		flipkart_price = EXCLUDED.flipkart_price,
		flipkart_rating = EXCLUDED.flipkart_rating,
		flipkart_url = EXCLUDED.flipkart_url,
		myntra_price = EXCLUDED.myntra_price,
		myntra_rating = EXCLUDED.myntra_rating,
		myntra_url = EXCLUDED.myntra_url`

// Seed writes products into the products table in one transaction. It backs
// the seed command; the API never writes.
func (s *PostgresSource) Seed(ctx context.Context, products []product.Product) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		batch.Queue(upsertProductSQL,
			p.ID, p.Name,
			p.Amazon.Price, p.Amazon.Rating, p.Amazon.URL,
			p.Flipkart.Price, p.Flipkart.Rating, p.Flipkart.URL,
			p.Myntra.Price, p.Myntra.Rating, p.Myntra.URL,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upsert products: %w", err)
	}

	return tx.Commit(ctx)
}
