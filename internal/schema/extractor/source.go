package extractor

import (
	"context"
	"os"

	"github.com/PuerkitoBio/goquery"

	dErrors "udyam/pkg/domain-errors"
)

// Source produces a parsed snapshot of the registration page. Extraction
// never sees a live, mutable document: every run gets its own snapshot.
type Source interface {
	Fetch(ctx context.Context) (*goquery.Document, error)
}

// FileSource reads a saved HTML snapshot from disk. Used by tests and by the
// scraper CLI when pointed at a local capture.
type FileSource struct {
	Path string
}

func (s FileSource) Fetch(_ context.Context) (*goquery.Document, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "registration page snapshot unreadable", err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeUnavailable, "registration page snapshot unparsable", err)
	}
	return doc, nil
}
