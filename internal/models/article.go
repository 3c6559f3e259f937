package models

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Article is one inventory record.
type Article struct {
	ID       int64
	Name     string
	Price    decimal.Decimal
	Quantity int
}

// Row returns the article as display strings in column order (ID, Name, Price, Quantity).
func (a Article) Row() []string {
	return []string{
		strconv.FormatInt(a.ID, 10),
		a.Name,
		a.Price.String(),
		strconv.Itoa(a.Quantity),
	}
}

// Input converts the article back into the raw form representation.
func (a Article) Input() ArticleInput {
	row := a.Row()
	return ArticleInput{ID: row[0], Name: row[1], Price: row[2], Quantity: row[3]}
}
