package rmp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/PuerkitoBio/goquery"
)

// PageSource provides the rendered review-site pages. The site is a
// client-rendered app behind aggressive bot protection, so pages are
// captured by an external browser session and handed to the pipeline as
// rendered HTML rather than fetched here.
type PageSource interface {
	// ProfessorListing returns the rendered school listing page with
	// every professor card expanded.
	ProfessorListing(ctx context.Context) (*goquery.Document, error)
	// ProfessorPage returns the rendered profile page of one
	// professor with its review list expanded.
	ProfessorPage(ctx context.Context, id string) (*goquery.Document, error)
}

// FsPages reads page dumps from a directory:
//
//	<dir>/professors.html
//	<dir>/profs/<id>.html
type FsPages struct {
	Dir string
}

var _ PageSource = FsPages{}

func (f FsPages) read(path string) (*goquery.Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read page dump: %w", err)
	}
	return goquery.NewDocumentFromReader(bytes.NewBuffer(raw))
}

func (f FsPages) ProfessorListing(ctx context.Context) (*goquery.Document, error) {
	return f.read(filepath.Join(f.Dir, "professors.html"))
}

func (f FsPages) ProfessorPage(ctx context.Context, id string) (*goquery.Document, error) {
	return f.read(filepath.Join(f.Dir, "profs", id+".html"))
}
