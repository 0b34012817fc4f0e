// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders classified papers as CSV, a human-readable
// table, or JSON. Multi-valued fields are joined with "; " in the CSV
// so each paper occupies one row.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// csvHeader is the report column layout. Field presence is guaranteed
// by the classifier's placeholder conventions, so writing is lossless.
var csvHeader = []string{
	"PubmedID",
	"Title",
	"Publication Date",
	"Non-academic Author(s)",
	"Company Affiliation(s)",
	"Corresponding Author Email",
}

const fieldSep = "; "

// WriteCSV writes the papers to path as a CSV report. An empty batch
// writes no file and returns no error; the caller reports that no
// relevant papers were found.
func WriteCSV(papers []types.ClassifiedPaper, path string) error {
	if len(papers) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range papers {
		if err := w.Write(row(p)); err != nil {
			return fmt.Errorf("writing CSV row for %s: %w", p.PubmedID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

func row(p types.ClassifiedPaper) []string {
	return []string{
		p.PubmedID,
		p.Title,
		p.PublicationDate,
		strings.Join(p.NonAcademicAuthors, fieldSep),
		strings.Join(p.CompanyAffiliations, fieldSep),
		p.CorrespondingEmail,
	}
}

// FormatTable writes papers as a human-readable table to w.
func FormatTable(papers []types.ClassifiedPaper, w io.Writer) {
	if len(papers) == 0 {
		fmt.Fprintln(w, "No relevant papers found.")
		return
	}

	fmt.Fprintf(w, "%-10s  %-55s  %-10s  %-25s  %s\n",
		"PMID", "Title", "Date", "Company", "Email")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	for _, p := range papers {
		title := p.Title
		if len(title) > 55 {
			title = title[:52] + "..."
		}
		company := strings.Join(p.CompanyAffiliations, fieldSep)
		if len(company) > 25 {
			company = company[:22] + "..."
		}
		fmt.Fprintf(w, "%-10s  %-55s  %-10s  %-25s  %s\n",
			p.PubmedID, title, p.PublicationDate, company, p.CorrespondingEmail)
	}

	fmt.Fprintf(w, "\n%d relevant paper(s)\n", len(papers))
}

// FormatJSON writes papers as indented JSON to w.
func FormatJSON(papers []types.ClassifiedPaper, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(papers)
}
