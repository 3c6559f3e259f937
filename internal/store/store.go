// Package store persists articles in a local SQLite file.
package store

import (
	"context"

	"github.com/shopspring/decimal"

	"stock-manager/internal/models"
)

// Store defines the persistence operations behind the inventory form.
type Store interface {
	Init(ctx context.Context) error
	Insert(ctx context.Context, name string, price decimal.Decimal, quantity int) (models.Article, error)
	// Update rewrites the row matching a.ID and reports how many rows matched.
	Update(ctx context.Context, a models.Article) (int64, error)
	// Delete removes the row matching id and reports how many rows matched.
	Delete(ctx context.Context, id int64) (int64, error)
	List(ctx context.Context) ([]models.Article, error)
	Ping(ctx context.Context) error
	Close() error
}
