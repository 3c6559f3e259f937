package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArticle(t *testing.T) {
	t.Run("ValidInput", func(t *testing.T) {
		a, err := ParseArticle(ArticleInput{ID: "ignored", Name: "Widget", Price: "9.99", Quantity: "10"})
		require.NoError(t, err)
		assert.Zero(t, a.ID)
		assert.Equal(t, "Widget", a.Name)
		assert.True(t, a.Price.Equal(decimal.RequireFromString("9.99")))
		assert.Equal(t, 10, a.Quantity)
	})

	t.Run("NameKeepsInnerWhitespace", func(t *testing.T) {
		a, err := ParseArticle(ArticleInput{Name: "Widget Pro", Price: " 12.50 ", Quantity: " 5"})
		require.NoError(t, err)
		assert.Equal(t, "Widget Pro", a.Name)
		assert.Equal(t, "12.5", a.Price.String())
		assert.Equal(t, 5, a.Quantity)
	})

	cases := []struct {
		name  string
		in    ArticleInput
		field string
	}{
		{"EmptyName", ArticleInput{Name: "", Price: "1", Quantity: "1"}, "name"},
		{"BlankName", ArticleInput{Name: "   ", Price: "1", Quantity: "1"}, "name"},
		{"EmptyPrice", ArticleInput{Name: "a", Price: "", Quantity: "1"}, "price"},
		{"EmptyQuantity", ArticleInput{Name: "a", Price: "1", Quantity: ""}, "quantity"},
		{"NonNumericPrice", ArticleInput{Name: "a", Price: "cheap", Quantity: "1"}, "price"},
		{"OverflowingPrice", ArticleInput{Name: "a", Price: "1e400", Quantity: "1"}, "price"},
		{"NegativeOverflowingPrice", ArticleInput{Name: "a", Price: "-1e400", Quantity: "1"}, "price"},
		{"NegativePrice", ArticleInput{Name: "a", Price: "-0.01", Quantity: "1"}, "price"},
		{"FractionalQuantity", ArticleInput{Name: "a", Price: "1", Quantity: "1.5"}, "quantity"},
		{"NegativeQuantity", ArticleInput{Name: "a", Price: "1", Quantity: "-3"}, "quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArticle(tc.in)
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestParseID(t *testing.T) {
	id, err := ParseID(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("")
	require.ErrorIs(t, err, ErrValidation)

	_, err = ParseID("abc")
	require.ErrorIs(t, err, ErrValidation)
}

func TestParseExisting(t *testing.T) {
	a, err := ParseExisting(ArticleInput{ID: "1", Name: "Widget Pro", Price: "12.50", Quantity: "5"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.ID)

	_, err = ParseExisting(ArticleInput{ID: "", Name: "Widget Pro", Price: "12.50", Quantity: "5"})
	require.ErrorIs(t, err, ErrValidation)
}

func TestArticleRow(t *testing.T) {
	a := Article{ID: 3, Name: "Bolt", Price: decimal.RequireFromString("0.50"), Quantity: 200}
	assert.Equal(t, []string{"3", "Bolt", "0.5", "200"}, a.Row())
	assert.Equal(t, ArticleInput{ID: "3", Name: "Bolt", Price: "0.5", Quantity: "200"}, a.Input())
}
