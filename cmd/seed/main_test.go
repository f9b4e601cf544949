package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"pricecompare/internal/catalog"
	"pricecompare/internal/product"
)

type memSeeder struct {
	rows    []product.Product
	seedErr error
}

func (m *memSeeder) Seed(ctx context.Context, products []product.Product) error {
	if m.seedErr != nil {
		return m.seedErr
	}
	m.rows = append(m.rows, products...)
	return nil
}

func (m *memSeeder) Load(ctx context.Context) ([]product.Product, error) {
	return m.rows, nil
}

func TestSeed_WritesAndVerifies(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	dst := &memSeeder{}

	err := seed(context.Background(), dst, catalog.SeedProducts(), zap.New(core))

	require.NoError(t, err)
	assert.Len(t, dst.rows, 10)
	total := logs.FilterMessage("total products in database").All()
	require.Len(t, total, 1)
	assert.Equal(t, int64(10), total[0].ContextMap()["count"])
}

func TestSeed_ReturnsSeedError(t *testing.T) {
	dst := &memSeeder{seedErr: errors.New("connection reset")}

	err := seed(context.Background(), dst, catalog.SeedProducts(), zap.NewNop())

	assert.ErrorContains(t, err, "seed products")
	assert.ErrorContains(t, err, "connection reset")
}

func TestRun_InvalidDSN(t *testing.T) {
	err := run("postgres://user@localhost:notaport/db", zap.NewNop())

	assert.ErrorContains(t, err, "connect to database")
}

func TestDatabaseDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	assert.Equal(t, defaultDSN, databaseDSN())

	t.Setenv("DB_DSN", "postgres://u:p@db:5432/x")
	assert.Equal(t, "postgres://u:p@db:5432/x", databaseDSN())
}
