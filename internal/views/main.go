package views

import (
	"io"

	"stock-manager/internal/models"
	"stock-manager/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	WindowTitle  = "Stock Management System"
	BannerText   = "WELCOME TO STOCK MANAGEMENT SYSTEM"
	WindowWidth  = 640
	WindowHeight = 640
)

// MainView builds the inventory window: banner, article form, article table,
// export button and status bar.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container

	banner       *widget.Label
	form         *components.ArticleForm
	table        *components.ArticleTable
	exportButton *widget.Button
	statusBar    *components.StatusBar

	exportHandler   func()
	exportAsHandler func()
	quitHandler     func()
}

// NewMainView creates the main view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupMenus()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.banner = widget.NewLabelWithStyle(BannerText, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	mv.form = components.NewArticleForm()
	mv.table = components.NewArticleTable()
	mv.statusBar = components.NewStatusBar()

	mv.exportButton = widget.NewButton("Export to CSV", func() {
		if mv.exportHandler != nil {
			mv.exportHandler()
		}
	})
}

func (mv *MainView) buildLayout() {
	topArea := container.NewVBox(
		mv.banner,
		mv.form.GetContainer(),
		widget.NewSeparator(),
	)

	bottomArea := container.NewVBox(
		container.NewCenter(mv.exportButton),
		mv.statusBar.GetContainer(),
	)

	mv.mainContainer = container.NewBorder(
		topArea,
		bottomArea,
		nil,
		nil,
		mv.table.Table,
	)

	mv.window.SetTitle(WindowTitle)
	mv.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export to CSV", func() {
			if mv.exportHandler != nil {
				mv.exportHandler()
			}
		}),
		fyne.NewMenuItem("Export As...", func() {
			if mv.exportAsHandler != nil {
				mv.exportAsHandler()
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			if mv.quitHandler != nil {
				mv.quitHandler()
			}
		}),
	)
	// Without a flagged item fyne adds a second Quit entry of its own.
	fileMenu.Items[len(fileMenu.Items)-1].IsQuit = true

	mv.window.SetMainMenu(fyne.NewMainMenu(fileMenu))
}

// Event handler setters - called by controller

// SetAddHandler sets the handler for the Add button
func (mv *MainView) SetAddHandler(handler func()) {
	mv.form.SetAddHandler(handler)
}

// SetUpdateHandler sets the handler for the Update button
func (mv *MainView) SetUpdateHandler(handler func()) {
	mv.form.SetUpdateHandler(handler)
}

// SetDeleteHandler sets the handler for the Delete button
func (mv *MainView) SetDeleteHandler(handler func()) {
	mv.form.SetDeleteHandler(handler)
}

// SetSelectHandler sets the handler for row selection in the table
func (mv *MainView) SetSelectHandler(handler func(row int)) {
	mv.table.SetSelectHandler(handler)
}

// SetExportHandler sets the handler for the Export to CSV button and menu item
func (mv *MainView) SetExportHandler(handler func()) {
	mv.exportHandler = handler
}

// SetExportAsHandler sets the handler for the Export As... menu item
func (mv *MainView) SetExportAsHandler(handler func()) {
	mv.exportAsHandler = handler
}

// SetQuitHandler sets the handler for the Quit menu item
func (mv *MainView) SetQuitHandler(handler func()) {
	mv.quitHandler = handler
}

// UI update methods - called by controller

// FormInput returns the raw content of the four form entries
func (mv *MainView) FormInput() models.ArticleInput {
	return mv.form.Input()
}

// SetFormInput replaces the content of the four form entries
func (mv *MainView) SetFormInput(in models.ArticleInput) {
	mv.form.SetInput(in)
}

// SetArticles repopulates the table and the row counter
func (mv *MainView) SetArticles(articles []models.Article) {
	mv.table.SetArticles(articles)
	mv.statusBar.SetArticleCount(len(articles))
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

// ShowError displays an error dialog titled after the failed action
func (mv *MainView) ShowError(title string, err error) {
	mv.showMessage(title, theme.ErrorIcon(), err.Error())
}

// ShowInfo displays an information dialog
func (mv *MainView) ShowInfo(title, message string) {
	dialog.ShowInformation(title, message, mv.window)
}

// ShowWarning displays a warning dialog
func (mv *MainView) ShowWarning(title, message string) {
	mv.showMessage(title, theme.WarningIcon(), message)
}

func (mv *MainView) showMessage(title string, icon fyne.Resource, message string) {
	content := container.NewHBox(
		widget.NewIcon(icon),
		widget.NewLabel(message),
	)
	dialog.ShowCustom(title, "OK", content, mv.window)
}

// ShowSaveDialog asks for an export destination. The callback is not
// invoked when the user cancels.
func (mv *MainView) ShowSaveDialog(fileName string, callback func(io.WriteCloser, error)) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if writer == nil && err == nil {
			return
		}
		if err != nil {
			callback(nil, err)
			return
		}
		callback(writer, nil)
	}, mv.window)
	d.SetFileName(fileName)
	d.Show()
}

// GetWindow returns the main window
func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

// GetContainer returns the main container
func (mv *MainView) GetContainer() *fyne.Container {
	return mv.mainContainer
}

// Show displays the view
func (mv *MainView) Show() {
	mv.window.Show()
}

// ViewState represents the current state of the view
type ViewState struct {
	Form          models.ArticleInput
	Rows          [][]string
	StatusMessage string
	ArticleCount  string
}

// GetViewState returns the current view state
func (mv *MainView) GetViewState() ViewState {
	return ViewState{
		Form:          mv.form.Input(),
		Rows:          mv.table.Rows(),
		StatusMessage: mv.statusBar.GetStatus(),
		ArticleCount:  mv.statusBar.GetArticleCount(),
	}
}
