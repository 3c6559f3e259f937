package models

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ArticleInput is the raw, unvalidated content of the article form.
type ArticleInput struct {
	ID       string
	Name     string
	Price    string
	Quantity string
}

// ParseArticle validates name, price and quantity. The ID field is ignored.
// Missing fields are reported before malformed ones, in form order.
func ParseArticle(in ArticleInput) (Article, error) {
	name := in.Name
	price := strings.TrimSpace(in.Price)
	quantity := strings.TrimSpace(in.Quantity)

	switch {
	case strings.TrimSpace(name) == "":
		return Article{}, missing("name")
	case price == "":
		return Article{}, missing("price")
	case quantity == "":
		return Article{}, missing("quantity")
	}

	p, err := decimal.NewFromString(price)
	if err != nil || !finite(p) {
		return Article{}, invalid("price", "must be a number")
	}
	if p.IsNegative() {
		return Article{}, invalid("price", "must be zero or positive")
	}

	q, err := strconv.Atoi(quantity)
	if err != nil {
		return Article{}, invalid("quantity", "must be an integer")
	}
	if q < 0 {
		return Article{}, invalid("quantity", "must be zero or positive")
	}

	return Article{Name: name, Price: p, Quantity: q}, nil
}

// ParseID validates the id field of the form.
func ParseID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, missing("id")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, invalid("id", "must be an integer")
	}
	return id, nil
}

// ParseExisting validates every field of the form, including the id.
func ParseExisting(in ArticleInput) (Article, error) {
	id, err := ParseID(in.ID)
	if err != nil {
		return Article{}, err
	}
	a, err := ParseArticle(in)
	if err != nil {
		return Article{}, err
	}
	a.ID = id
	return a, nil
}

// finite reports whether d survives the trip through a REAL column.
func finite(d decimal.Decimal) bool {
	f := d.InexactFloat64()
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
