package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"stock-manager/internal/models"
)

// ArticleForm holds the four article entries and the Add/Update/Delete buttons
type ArticleForm struct {
	container *fyne.Container

	IDEntry       *widget.Entry
	NameEntry     *widget.Entry
	PriceEntry    *widget.Entry
	QuantityEntry *widget.Entry

	AddButton    *widget.Button
	UpdateButton *widget.Button
	DeleteButton *widget.Button

	addHandler    func()
	updateHandler func()
	deleteHandler func()
}

// NewArticleForm creates the article form component
func NewArticleForm() *ArticleForm {
	af := &ArticleForm{}
	af.createComponents()
	af.buildLayout()
	return af
}

func (af *ArticleForm) createComponents() {
	af.IDEntry = widget.NewEntry()
	af.NameEntry = widget.NewEntry()
	af.PriceEntry = widget.NewEntry()
	af.QuantityEntry = widget.NewEntry()

	af.IDEntry.SetPlaceHolder("Select a row or type an id")
	af.PriceEntry.SetPlaceHolder("0.00")
	af.QuantityEntry.SetPlaceHolder("0")

	af.AddButton = widget.NewButton("Add", func() {
		if af.addHandler != nil {
			af.addHandler()
		}
	})
	af.AddButton.Importance = widget.SuccessImportance

	af.UpdateButton = widget.NewButton("Update", func() {
		if af.updateHandler != nil {
			af.updateHandler()
		}
	})
	af.UpdateButton.Importance = widget.HighImportance

	af.DeleteButton = widget.NewButton("Delete", func() {
		if af.deleteHandler != nil {
			af.deleteHandler()
		}
	})
	af.DeleteButton.Importance = widget.DangerImportance
}

func (af *ArticleForm) buildLayout() {
	form := widget.NewForm(
		widget.NewFormItem("ID", af.IDEntry),
		widget.NewFormItem("Name", af.NameEntry),
		widget.NewFormItem("Price", af.PriceEntry),
		widget.NewFormItem("Quantity", af.QuantityEntry),
	)

	buttons := container.NewGridWithColumns(3, af.AddButton, af.UpdateButton, af.DeleteButton)

	af.container = container.NewVBox(form, buttons)
}

// SetAddHandler sets the handler for the Add button
func (af *ArticleForm) SetAddHandler(handler func()) {
	af.addHandler = handler
}

// SetUpdateHandler sets the handler for the Update button
func (af *ArticleForm) SetUpdateHandler(handler func()) {
	af.updateHandler = handler
}

// SetDeleteHandler sets the handler for the Delete button
func (af *ArticleForm) SetDeleteHandler(handler func()) {
	af.deleteHandler = handler
}

// Input returns the raw entry contents
func (af *ArticleForm) Input() models.ArticleInput {
	return models.ArticleInput{
		ID:       af.IDEntry.Text,
		Name:     af.NameEntry.Text,
		Price:    af.PriceEntry.Text,
		Quantity: af.QuantityEntry.Text,
	}
}

// SetInput replaces the entry contents
func (af *ArticleForm) SetInput(in models.ArticleInput) {
	af.IDEntry.SetText(in.ID)
	af.NameEntry.SetText(in.Name)
	af.PriceEntry.SetText(in.Price)
	af.QuantityEntry.SetText(in.Quantity)
}

// GetContainer returns the form container
func (af *ArticleForm) GetContainer() *fyne.Container {
	return af.container
}
