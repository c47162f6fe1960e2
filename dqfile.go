// Package dqfile generates the DOT/FMCSR driver employment application: a
// fixed 25-page, fillable PDF that makes up a driver qualification file.
//
// Pages are drawn from scratch by the builders in package section, in the
// order given by section.Catalog, then stamped "Page i of N" and written
// once with an interactive form whose field names are stable:
//
//	pdf, err := dqfile.Generate(ctx, answers.FromMap(map[string]any{
//	    "first_name": "Dana",
//	    "last_name":  "Reyes",
//	}), dqfile.WithCompany(layout.Company{Name: "Acme Freight"}))
//
// Package registry holds the parallel percentage-based field table used to
// overlay the same answers onto a pre-printed template.
package dqfile

import (
	"context"
	"fmt"

	"github.com/lvillar/dqfile/answers"
	"github.com/lvillar/dqfile/canvas"
	"github.com/lvillar/dqfile/layout"
	"github.com/lvillar/dqfile/section"
)

// Placement is the page range a section occupies in the application.
type Placement struct {
	Section string
	Title   string
	First   int
	Last    int
}

// Layout returns where every section lands in the finished application.
func Layout() []Placement {
	var out []Placement
	next := 1
	for _, s := range section.Catalog() {
		out = append(out, Placement{Section: s.Name, Title: s.Title, First: next, Last: next + s.Pages - 1})
		next += s.Pages
	}
	return out
}

// TotalPages returns the page count of the complete application.
func TotalPages() int { return section.TotalPages() }

// SectionForPage returns the placement containing page n.
func SectionForPage(n int) (Placement, bool) {
	for _, p := range Layout() {
		if n >= p.First && n <= p.Last {
			return p, true
		}
	}
	return Placement{}, false
}

// Build draws every section into a new document and stamps the page
// numbers, without serializing it. The context is checked between
// sections.
func Build(ctx context.Context, in answers.Answers, opts ...Option) (*canvas.Document, error) {
	cfg := newConfig(opts)
	return build(ctx, in, cfg, section.Catalog())
}

func build(ctx context.Context, in answers.Answers, cfg *config, sections []section.Section) (*canvas.Document, error) {
	if in == nil {
		in = answers.Answers{}
	}
	doc := canvas.New(canvas.Metadata{
		Title:    "Driver Employment Application",
		Author:   cfg.company.Name,
		Subject:  "Driver qualification file, 49 CFR Part 391",
		Keywords: "DOT FMCSR driver application " + cfg.control,
		Creator:  "dqfile",
		Created:  cfg.created,
	}, cfg.compress)
	if err := doc.Err(); err != nil {
		return nil, newBuildError("init", err)
	}

	env := section.Env{Company: cfg.company, ControlNumber: cfg.control, Issued: cfg.created}
	for _, s := range sections {
		if err := ctx.Err(); err != nil {
			return nil, newBuildError(s.Name, err)
		}
		before := doc.PageCount()
		pages, err := s.Build(doc, in, env)
		if err != nil {
			return nil, newBuildError(s.Name, err)
		}
		if added := doc.PageCount() - before; added != s.Pages || len(pages) != s.Pages {
			return nil, newBuildError(s.Name, fmt.Errorf("%w: %s declares %d pages, built %d", ErrPageCount, s.Name, s.Pages, added))
		}
		cfg.logger.Debug("built section", "section", s.Name, "pages", s.Pages, "first", before+1)
	}

	n := doc.PageCount()
	for i, p := range doc.Pages() {
		layout.PageNumber(p, i+1, n)
		layout.FooterNote(p, "Driver Employment Application  |  Control No. "+cfg.control)
	}
	if err := doc.Err(); err != nil {
		return nil, newBuildError("stamp", err)
	}

	for page, y := range doc.Overflow() {
		cfg.logger.Warn("content drawn below the bottom margin", "page", page, "y", y)
	}
	if unused := in.Unused(doc.FieldNames()); len(unused) > 0 {
		cfg.logger.Warn("answers without a field were ignored", "count", len(unused), "keys", unused)
	}
	return doc, nil
}

// Generate builds the complete application and returns the PDF bytes. No
// partial document is returned on error.
func Generate(ctx context.Context, in answers.Answers, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	doc, err := build(ctx, in, cfg, section.Catalog())
	if err != nil {
		return nil, err
	}
	out, err := doc.Serialize()
	if err != nil {
		return nil, newBuildError("serialize", err)
	}
	cfg.logger.Info("generated application", "pages", doc.PageCount(), "fields", len(doc.FieldNames()), "bytes", len(out), "control", cfg.control)
	return out, nil
}

// GenerateDOTApplicationPDF is Generate with a background context.
func GenerateDOTApplicationPDF(in answers.Answers, opts ...Option) ([]byte, error) {
	return Generate(context.Background(), in, opts...)
}
