package controllers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"stock-manager/internal/logger"
	"stock-manager/internal/models"
	"stock-manager/internal/services"
)

const (
	msgAdded    = "Article added successfully!"
	msgUpdated  = "Article updated successfully!"
	msgDeleted  = "Article deleted successfully!"
	msgExported = "Articles exported to CSV successfully!"
	msgNoExport = "No articles to export!"
)

// View is the part of the main window the controller drives.
type View interface {
	SetAddHandler(handler func())
	SetUpdateHandler(handler func())
	SetDeleteHandler(handler func())
	SetSelectHandler(handler func(row int))
	SetExportHandler(handler func())
	SetExportAsHandler(handler func())

	FormInput() models.ArticleInput
	SetFormInput(in models.ArticleInput)
	SetArticles(articles []models.Article)
	UpdateStatus(status string)

	ShowError(title string, err error)
	ShowInfo(title, message string)
	ShowWarning(title, message string)
	ShowSaveDialog(fileName string, callback func(io.WriteCloser, error))
}

// AppState is the state shared between handlers: the rows currently listed
// and the article picked from them.
type AppState struct {
	Articles     []models.Article
	SelectedID   int64
	HasSelection bool
}

// MainController maps view gestures to inventory operations
type MainController struct {
	inventory *services.InventoryService
	exporter  *services.ExportService
	logger    logger.Logger

	mainView View
	state    AppState

	// refreshErr holds the failure of the last event-driven refresh until
	// the write that triggered it reports back.
	refreshErr error

	exportPath string
	opTimeout  time.Duration
}

// NewMainController creates a new main controller and registers it as the
// inventory's event dispatcher.
func NewMainController(
	inventory *services.InventoryService,
	exporter *services.ExportService,
	log logger.Logger,
	exportPath string,
	opTimeout time.Duration,
) *MainController {
	controller := &MainController{
		inventory:  inventory,
		exporter:   exporter,
		logger:     log,
		exportPath: exportPath,
		opTimeout:  opTimeout,
	}

	inventory.SetDispatcher(controller)
	return controller
}

// SetMainView associates the main view with this controller
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	mc.setupViewEventHandlers()
}

// Start loads the initial article list
func (mc *MainController) Start() {
	if err := mc.Refresh(); err != nil {
		mc.handleError("Load failed", err)
		return
	}
	mc.updateStatus("Ready")
}

// State returns a copy of the current application state
func (mc *MainController) State() AppState {
	state := mc.state
	state.Articles = append([]models.Article(nil), mc.state.Articles...)
	return state
}

// AddArticle inserts the article described by the form. The id field is ignored.
func (mc *MainController) AddArticle() {
	in := mc.mainView.FormInput()

	ctx, cancel := mc.operationContext()
	defer cancel()

	mc.refreshErr = nil
	article, err := mc.inventory.Insert(ctx, in.Name, in.Price, in.Quantity)
	if err != nil {
		mc.handleError("Add failed", err)
		return
	}
	if mc.refreshFailed() {
		return
	}

	mc.updateStatus(fmt.Sprintf("Added article %d", article.ID))
	mc.mainView.ShowInfo("Success", msgAdded)
}

// UpdateArticle rewrites the article whose id is in the form
func (mc *MainController) UpdateArticle() {
	in := mc.mainView.FormInput()

	ctx, cancel := mc.operationContext()
	defer cancel()

	mc.refreshErr = nil
	if err := mc.inventory.Update(ctx, in.ID, in.Name, in.Price, in.Quantity); err != nil {
		mc.handleError("Update failed", err)
		return
	}
	if mc.refreshFailed() {
		return
	}

	mc.updateStatus(fmt.Sprintf("Updated article %s", in.ID))
	mc.mainView.ShowInfo("Success", msgUpdated)
}

// DeleteArticle removes the article whose id is in the form
func (mc *MainController) DeleteArticle() {
	in := mc.mainView.FormInput()

	ctx, cancel := mc.operationContext()
	defer cancel()

	mc.refreshErr = nil
	if err := mc.inventory.Delete(ctx, in.ID); err != nil {
		mc.handleError("Delete failed", err)
		return
	}
	if mc.refreshFailed() {
		return
	}

	mc.updateStatus(fmt.Sprintf("Deleted article %s", in.ID))
	mc.mainView.ShowInfo("Success", msgDeleted)
}

// SelectRow copies the listed article at row back into the form
func (mc *MainController) SelectRow(row int) {
	if row < 0 || row >= len(mc.state.Articles) {
		return
	}

	article := mc.state.Articles[row]
	mc.state.SelectedID = article.ID
	mc.state.HasSelection = true

	mc.mainView.SetFormInput(article.Input())
	mc.updateStatus(fmt.Sprintf("Selected article %d", article.ID))
}

// ExportArticles writes the full list to the configured export path
func (mc *MainController) ExportArticles() {
	ctx, cancel := mc.operationContext()
	defer cancel()

	n, err := mc.exporter.ExportFile(ctx, mc.exportPath)
	if err != nil {
		mc.handleExportError(err)
		return
	}

	mc.updateStatus(fmt.Sprintf("Exported %d articles to %s", n, mc.exportPath))
	mc.mainView.ShowInfo("Success", msgExported)
}

// ExportArticlesAs reads the full list, then asks for a destination and
// writes that list there. Nothing is asked for when the list is empty.
func (mc *MainController) ExportArticlesAs() {
	ctx, cancel := mc.operationContext()
	articles, err := mc.exporter.Snapshot(ctx)
	cancel()
	if err != nil {
		mc.handleExportError(err)
		return
	}

	mc.mainView.ShowSaveDialog(filepath.Base(mc.exportPath), func(w io.WriteCloser, err error) {
		if err != nil {
			mc.handleError("Export failed", err)
			return
		}

		n, exportErr := mc.exporter.Write(w, articles)
		closeErr := w.Close()
		if exportErr == nil && closeErr != nil {
			exportErr = fmt.Errorf("closing export destination: %w", closeErr)
		}
		if exportErr != nil {
			mc.handleExportError(exportErr)
			return
		}

		mc.updateStatus(fmt.Sprintf("Exported %d articles", n))
		mc.mainView.ShowInfo("Success", msgExported)
	})
}

// Refresh re-reads the full table and repopulates the view
func (mc *MainController) Refresh() error {
	ctx, cancel := mc.operationContext()
	defer cancel()

	articles, err := mc.inventory.ListAll(ctx)
	if err != nil {
		return err
	}

	mc.state.Articles = articles
	mc.state.HasSelection = false
	mc.state.SelectedID = 0

	if mc.mainView != nil {
		mc.mainView.SetArticles(articles)
	}
	return nil
}

// Dispatch refreshes the list after every inventory write
func (mc *MainController) Dispatch(event services.Event) error {
	mc.logger.Debug("MainController", "refreshing after event", map[string]interface{}{
		"event": event.Type(),
	})
	mc.refreshErr = mc.Refresh()
	return mc.refreshErr
}

// setupViewEventHandlers connects view callbacks to controller methods
func (mc *MainController) setupViewEventHandlers() {
	if mc.mainView == nil {
		return
	}

	mc.mainView.SetAddHandler(mc.AddArticle)
	mc.mainView.SetUpdateHandler(mc.UpdateArticle)
	mc.mainView.SetDeleteHandler(mc.DeleteArticle)
	mc.mainView.SetSelectHandler(mc.SelectRow)
	mc.mainView.SetExportHandler(mc.ExportArticles)
	mc.mainView.SetExportAsHandler(mc.ExportArticlesAs)
}

func (mc *MainController) operationContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), mc.opTimeout)
}

// refreshFailed reports a write that was stored but whose list refresh
// failed, so no success message is shown over a stale table.
func (mc *MainController) refreshFailed() bool {
	err := mc.refreshErr
	mc.refreshErr = nil
	if err == nil {
		return false
	}
	mc.handleError("Refresh failed", fmt.Errorf("change saved but the list could not be reloaded: %w", err))
	return true
}

func (mc *MainController) handleExportError(err error) {
	if errors.Is(err, models.ErrEmptyExport) {
		mc.logger.Warning("MainController", "export skipped", map[string]interface{}{
			"reason": err.Error(),
		})
		mc.mainView.ShowWarning("Warning", msgNoExport)
		return
	}
	mc.handleError("Export failed", err)
}

// handleError reports a failed action. Validation problems are expected user
// input and are not logged as errors.
func (mc *MainController) handleError(title string, err error) {
	if errors.Is(err, models.ErrValidation) {
		mc.logger.Debug("MainController", "input rejected", map[string]interface{}{
			"action": title,
			"reason": err.Error(),
		})
	} else {
		mc.logger.Error("MainController", err, map[string]interface{}{
			"action": title,
		})
	}

	mc.updateStatus(title)
	mc.mainView.ShowError(title, err)
}

func (mc *MainController) updateStatus(status string) {
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(status)
	}
}
