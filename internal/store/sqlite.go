package store

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	sq "github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"stock-manager/internal/models"
)

const articlesTable = "articles"

var _ Store = (*SQLiteStore)(nil)

const createArticlesTable = `
CREATE TABLE IF NOT EXISTS articles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	price REAL NOT NULL,
	quantity INTEGER NOT NULL
)`

// SQLiteStore implements Store on a single SQLite database file.
type SQLiteStore struct {
	db *sql.DB
	sb sq.StatementBuilderType
}

// Open opens (creating if needed) the database file at path and ensures the
// articles table exists.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database %q: %w", path, err)
	}
	// One writer, no pool: every statement runs on the same connection.
	db.SetMaxOpenConns(1)

	s := NewSQLiteStore(db)
	if err := s.Init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// NewSQLiteStore wraps an already opened database handle.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}
}

// Init creates the articles table if it does not exist. It is idempotent.
func (s *SQLiteStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createArticlesTable); err != nil {
		return fmt.Errorf("creating articles table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Insert(ctx context.Context, name string, price decimal.Decimal, quantity int) (models.Article, error) {
	sqlStr, args, err := s.sb.
		Insert(articlesTable).
		Columns("name", "price", "quantity").
		Values(name, price.InexactFloat64(), quantity).
		ToSql()
	if err != nil {
		return models.Article{}, fmt.Errorf("building article insert query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return models.Article{}, fmt.Errorf("inserting article %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Article{}, fmt.Errorf("reading inserted article id: %w", err)
	}

	return models.Article{ID: id, Name: name, Price: price, Quantity: quantity}, nil
}

func (s *SQLiteStore) Update(ctx context.Context, a models.Article) (int64, error) {
	sqlStr, args, err := s.sb.
		Update(articlesTable).
		Set("name", a.Name).
		Set("price", a.Price.InexactFloat64()).
		Set("quantity", a.Quantity).
		Where(sq.Eq{"id": a.ID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building article update query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("updating article %d: %w", a.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading updated row count: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, id int64) (int64, error) {
	sqlStr, args, err := s.sb.
		Delete(articlesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building article delete query: %w", err)
	}

	res, err := s.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("deleting article %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reading deleted row count: %w", err)
	}
	return n, nil
}

// List returns every article in id order.
func (s *SQLiteStore) List(ctx context.Context) ([]models.Article, error) {
	sqlStr, args, err := s.sb.
		Select("id", "name", "price", "quantity").
		From(articlesTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building article list query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("querying articles: %w", err)
	}
	defer rows.Close()

	articles := make([]models.Article, 0)
	for rows.Next() {
		var (
			a     models.Article
			price float64
		)
		if scanErr := rows.Scan(&a.ID, &a.Name, &price, &a.Quantity); scanErr != nil {
			return nil, fmt.Errorf("scanning article row: %w", scanErr)
		}
		if math.IsInf(price, 0) || math.IsNaN(price) {
			return nil, fmt.Errorf("reading article %d: price %v is not a finite number", a.ID, price)
		}
		a.Price = decimal.NewFromFloat(price)
		articles = append(articles, a)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("iterating article rows: %w", rowsErr)
	}
	return articles, nil
}

// Ping checks database connectivity.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
