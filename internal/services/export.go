package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"stock-manager/internal/logger"
	"stock-manager/internal/models"
)

const exportDelimiter = ";"

var exportHeader = []string{"ID", "Name", "Price", "Quantity"}

// ArticleLister is the read side of the inventory used by exports.
type ArticleLister interface {
	ListAll(ctx context.Context) ([]models.Article, error)
}

// ExportService writes the article list as semicolon-delimited text.
type ExportService struct {
	articles ArticleLister
	logger   logger.Logger
}

func NewExportService(articles ArticleLister, log logger.Logger) *ExportService {
	return &ExportService{articles: articles, logger: log}
}

// Export writes the header and one line per article to w and returns the
// number of articles written. It fails with models.ErrEmptyExport, writing
// nothing, when the inventory is empty.
func (es *ExportService) Export(ctx context.Context, w io.Writer) (int, error) {
	articles, err := es.Snapshot(ctx)
	if err != nil {
		return 0, err
	}
	return es.Write(w, articles)
}

// Write writes a previously taken snapshot to w.
func (es *ExportService) Write(w io.Writer, articles []models.Article) (int, error) {
	if len(articles) == 0 {
		return 0, models.ErrEmptyExport
	}
	if err := writeArticles(w, articles); err != nil {
		return 0, err
	}
	return len(articles), nil
}

// ExportFile writes the export to path. The file is replaced only once the
// whole export has been written; on an empty inventory no file is touched.
func (es *ExportService) ExportFile(ctx context.Context, path string) (int, error) {
	articles, err := es.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".export-*.csv")
	if err != nil {
		return 0, fmt.Errorf("creating export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("setting export file mode: %w", err)
	}

	if err := writeArticles(tmp, articles); err != nil {
		_ = tmp.Close()
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, fmt.Errorf("moving export into place at %q: %w", path, err)
	}

	es.logger.Info("ExportService", "articles exported", map[string]interface{}{
		"path":  path,
		"count": len(articles),
	})
	return len(articles), nil
}

// Snapshot reads the articles to export. It fails with models.ErrEmptyExport
// when there are none.
func (es *ExportService) Snapshot(ctx context.Context) ([]models.Article, error) {
	articles, err := es.articles.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, models.ErrEmptyExport
	}
	return articles, nil
}

// writeArticles writes one delimiter-joined line per article. Fields are
// never quoted.
func writeArticles(w io.Writer, articles []models.Article) error {
	bw := bufio.NewWriter(w)

	if err := writeLine(bw, exportHeader); err != nil {
		return fmt.Errorf("writing export header: %w", err)
	}
	for _, a := range articles {
		row := a.Row()
		row[1] = escapeName(row[1])
		if err := writeLine(bw, row); err != nil {
			return fmt.Errorf("writing article %d: %w", a.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing export: %w", err)
	}
	return nil
}

func writeLine(bw *bufio.Writer, fields []string) error {
	if _, err := bw.WriteString(strings.Join(fields, exportDelimiter)); err != nil {
		return err
	}
	return bw.WriteByte('\n')
}

// escapeName replaces the delimiter inside a name with a space.
func escapeName(name string) string {
	return strings.ReplaceAll(name, exportDelimiter, " ")
}
