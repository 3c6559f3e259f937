package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"stock-manager/internal/models"
)

var articleColumns = []string{"ID", "Name", "Price", "Quantity"}

var articleColumnWidths = []float32{60, 260, 100, 100}

// ArticleTable lists articles with a header row. Selecting any cell selects its row.
type ArticleTable struct {
	Table *widget.Table

	rows          [][]string
	selectHandler func(row int)
}

// NewArticleTable creates the article list component
func NewArticleTable() *ArticleTable {
	at := &ArticleTable{}

	at.Table = widget.NewTableWithHeaders(
		func() (int, int) {
			return len(at.rows), len(articleColumns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, cell fyne.CanvasObject) {
			if id.Row < 0 || id.Row >= len(at.rows) {
				return
			}
			cell.(*widget.Label).SetText(at.rows[id.Row][id.Col])
		},
	)
	at.Table.ShowHeaderColumn = false
	at.Table.CreateHeader = func() fyne.CanvasObject {
		return widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}
	at.Table.UpdateHeader = func(id widget.TableCellID, cell fyne.CanvasObject) {
		if id.Col >= 0 && id.Col < len(articleColumns) {
			cell.(*widget.Label).SetText(articleColumns[id.Col])
		}
	}
	at.Table.OnSelected = func(id widget.TableCellID) {
		if at.selectHandler != nil && id.Row >= 0 && id.Row < len(at.rows) {
			at.selectHandler(id.Row)
		}
	}
	for i, w := range articleColumnWidths {
		at.Table.SetColumnWidth(i, w)
	}

	return at
}

// SetSelectHandler sets the handler receiving the selected row index
func (at *ArticleTable) SetSelectHandler(handler func(row int)) {
	at.selectHandler = handler
}

// SetArticles replaces the listed rows and clears the selection
func (at *ArticleTable) SetArticles(articles []models.Article) {
	rows := make([][]string, 0, len(articles))
	for _, a := range articles {
		rows = append(rows, a.Row())
	}
	at.rows = rows
	at.Table.UnselectAll()
	at.Table.Refresh()
}

// Rows returns the displayed rows
func (at *ArticleTable) Rows() [][]string {
	return at.rows
}

// Columns returns the header labels
func (at *ArticleTable) Columns() []string {
	return articleColumns
}
