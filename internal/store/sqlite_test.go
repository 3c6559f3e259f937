package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-manager/internal/models"
	"stock-manager/internal/store"
)

func newTestStore(t *testing.T) (*store.SQLiteStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock_management.db")
	st, err := store.Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st, path
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSQLiteStore_InitIsIdempotent(t *testing.T) {
	st, path := newTestStore(t)
	ctx := context.Background()

	_, err := st.Insert(ctx, "Widget", price("9.99"), 10)
	require.NoError(t, err)

	require.NoError(t, st.Init(ctx))
	require.NoError(t, st.Ping(ctx))

	// Reopening the same file keeps existing rows.
	require.NoError(t, st.Close())
	reopened, err := store.Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	articles, err := reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Widget", articles[0].Name)
}

func TestSQLiteStore_InsertAssignsIncreasingIDs(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	first, err := st.Insert(ctx, "Widget", price("9.99"), 10)
	require.NoError(t, err)
	second, err := st.Insert(ctx, "Gadget", price("1.50"), 3)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	articles, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, int64(1), articles[0].ID)
	assert.True(t, articles[0].Price.Equal(price("9.99")))
	assert.Equal(t, 10, articles[0].Quantity)
	assert.Equal(t, "Gadget", articles[1].Name)
	assert.True(t, articles[1].Price.Equal(price("1.5")))
}

func TestSQLiteStore_IDsAreNotReused(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_, err := st.Insert(ctx, "a", price("1"), 1)
	require.NoError(t, err)
	last, err := st.Insert(ctx, "b", price("2"), 2)
	require.NoError(t, err)

	n, err := st.Delete(ctx, last.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	next, err := st.Insert(ctx, "c", price("3"), 3)
	require.NoError(t, err)
	assert.Greater(t, next.ID, last.ID)
}

func TestSQLiteStore_UpdateAndDelete(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	a, err := st.Insert(ctx, "Widget", price("9.99"), 10)
	require.NoError(t, err)
	other, err := st.Insert(ctx, "Gadget", price("4"), 1)
	require.NoError(t, err)

	n, err := st.Update(ctx, models.Article{ID: a.ID, Name: "Widget Pro", Price: price("12.50"), Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	articles, err := st.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, a.ID, articles[0].ID)
	assert.Equal(t, "Widget Pro", articles[0].Name)
	assert.Equal(t, "12.5", articles[0].Price.String())
	assert.Equal(t, 5, articles[0].Quantity)
	assert.Equal(t, other.ID, articles[1].ID)
	assert.Equal(t, "Gadget", articles[1].Name)
	assert.True(t, articles[1].Price.Equal(other.Price))

	n, err = st.Update(ctx, models.Article{ID: 99, Name: "ghost", Price: price("1"), Quantity: 1})
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = st.Delete(ctx, 99)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = st.Delete(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	articles, err = st.List(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, other.ID, articles[0].ID)
}

func TestSQLiteStore_ListEmpty(t *testing.T) {
	st, _ := newTestStore(t)

	articles, err := st.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)
}

func TestSQLiteStore_ListRejectsNonFinitePrice(t *testing.T) {
	st, _ := newTestStore(t)
	ctx := context.Background()

	_, err := st.Insert(ctx, "Widget", price("9.99"), 10)
	require.NoError(t, err)
	// 1e400 overflows float64 and lands in the REAL column as +Inf.
	_, err = st.Insert(ctx, "Broken", price("1e400"), 1)
	require.NoError(t, err)

	var articles []models.Article
	require.NotPanics(t, func() {
		articles, err = st.List(ctx)
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a finite number")
	assert.Nil(t, articles)
}
