package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"pricecompare/internal/catalog"
)

func newAPI(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := catalog.New(catalog.SeedProducts())
	require.NoError(t, err)
	srv := httptest.NewServer(catalog.NewRouter(catalog.NewHTTPHandler(catalog.NewService(store)), zap.NewNop(), catalog.RouterOptions{}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestCompare_List(t *testing.T) {
	srv := newAPI(t)

	out, err := execute(t, "--api", srv.URL, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Showing all 10 products")
	assert.Contains(t, out, "iPhone 15 Pro")
	assert.Contains(t, out, "Dell XPS 13 Laptop")
	assert.Equal(t, 10, strings.Count(out, "Best Deal"))
}

func TestCompare_Search(t *testing.T) {
	srv := newAPI(t)

	out, err := execute(t, "--api", srv.URL, "--min-display", "0s", "search", "nike")

	require.NoError(t, err)
	assert.Contains(t, out, `1 product found for "nike"`)
	assert.Contains(t, out, "Nike Air Max 270")
	assert.NotContains(t, out, "iPhone")
}

func TestCompare_SearchMultiWord(t *testing.T) {
	srv := newAPI(t)

	out, err := execute(t, "--api", srv.URL, "--min-display", "0s", "search", "samsung", "galaxy")

	require.NoError(t, err)
	assert.Contains(t, out, "Samsung Galaxy S24")
	assert.NotContains(t, out, "QLED")
}

func TestCompare_SearchNoResults(t *testing.T) {
	srv := newAPI(t)

	out, err := execute(t, "--api", srv.URL, "--min-display", "0s", "search", "zzz")

	require.NoError(t, err)
	assert.Contains(t, out, `No products found for "zzz"`)
}

func TestCompare_Clear(t *testing.T) {
	srv := newAPI(t)

	out, err := execute(t, "--api", srv.URL, "clear")

	require.NoError(t, err)
	assert.Contains(t, out, "Showing all 10 products")
}

func TestCompare_FiltersAreShownButInert(t *testing.T) {
	srv := newAPI(t)

	out, err := execute(t, "--api", srv.URL, "--brand", "apple", "--rating", "4.5+", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "brand=apple")
	assert.Contains(t, out, "rating=4.5+")
	assert.Contains(t, out, "Showing all 10 products")
}

func TestCompare_InvalidFilter(t *testing.T) {
	_, err := execute(t, "--brand", "nokia", "list")

	assert.ErrorContains(t, err, "invalid --brand")
}

func TestCompare_UnreachableAPIShowsEmptyList(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	out, err := execute(t, "--api", url, "list")

	require.NoError(t, err)
	assert.Contains(t, out, "Showing all 0 products")
}

func TestCompare_SearchBlankQueryListsAll(t *testing.T) {
	srv := newAPI(t)

	out, err := execute(t, "--api", srv.URL, "search", "   ")

	require.NoError(t, err)
	assert.Contains(t, out, "Showing all 10 products")
	assert.NotContains(t, out, "found for")
}

func TestCompare_Ping(t *testing.T) {
	srv := newAPI(t)

	out, err := execute(t, "--api", srv.URL, "ping")

	require.NoError(t, err)
	assert.Equal(t, catalog.HealthMessage+"\n", out)
}

func TestCompare_PingUnreachable(t *testing.T) {
	srv := httptest.NewServer(nil)
	url := srv.URL
	srv.Close()

	_, err := execute(t, "--api", url, "ping")

	assert.ErrorContains(t, err, "api not reachable")
}
