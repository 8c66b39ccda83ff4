// Package bundle packages rendered sheets for download or writes them to disk.
package bundle

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fortuna/depthsheets/internal/batch"
)

// Zip writes every document into a deflated zip archive, in order
func Zip(docs []batch.Document, modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, doc := range docs {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     doc.Name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, fmt.Errorf("add %s to zip: %w", doc.Name, err)
		}
		if _, err := w.Write([]byte(doc.Body)); err != nil {
			return nil, fmt.Errorf("write %s to zip: %w", doc.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize zip: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDir writes one file per document under dir and returns the written paths
func WriteDir(dir string, docs []batch.Document) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		path := filepath.Join(dir, doc.Name)
		if err := os.WriteFile(path, []byte(doc.Body), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", doc.Name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// ArchiveName names the zip for one week, e.g. "nfl_reg_week02_txt.zip"
func ArchiveName(seasonType string, week int) string {
	return fmt.Sprintf("nfl_%s_week%02d_txt.zip", seasonType, week)
}
