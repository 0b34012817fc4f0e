// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline sequences the stages of a run: PubMed search, record
// fetch, and affiliation classification. It owns no classification
// logic of its own.
package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/pharma-papers/internal/classify"
	"github.com/pdiddy/pharma-papers/internal/eutils"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// Fetcher resolves a query to PMIDs and retrieves article records.
// *eutils.Client is the production implementation.
type Fetcher interface {
	ESearch(ctx context.Context, term string) ([]string, error)
	EFetch(ctx context.Context, pmids []string) ([]eutils.Article, error)
}

// Result holds the outcome of one pipeline run.
type Result struct {
	// PMIDs are the identifiers the search returned.
	PMIDs []string

	// Fetched is the number of article records retrieved.
	Fetched int

	// Excluded is the number of articles without company-affiliated authors.
	Excluded int

	// Papers are the qualifying articles, in search order.
	Papers []types.ClassifiedPaper
}

// Run executes search → fetch → classify for one query. Progress is
// written to w; debug receives per-article exclusion detail. An empty
// search result or an all-excluded batch is a normal outcome with an
// empty Papers slice, not an error.
func Run(ctx context.Context, client Fetcher, query string, rules *classify.Ruleset, w, debug io.Writer) (Result, error) {
	fmt.Fprintf(w, "searching PubMed for: %s\n", query)

	pmids, err := client.ESearch(ctx, query)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "found %d paper(s)\n", len(pmids))
	if len(pmids) == 0 {
		return Result{}, nil
	}

	articles, err := client.EFetch(ctx, pmids)
	if err != nil {
		return Result{}, err
	}
	fmt.Fprintf(w, "fetched %d record(s)\n", len(articles))

	batch := classify.ClassifyBatch(articles, rules, debug)
	fmt.Fprintf(w, "classified: %d relevant, %d excluded\n", batch.Included, batch.Excluded)

	return Result{
		PMIDs:    pmids,
		Fetched:  len(articles),
		Excluded: batch.Excluded,
		Papers:   batch.Papers,
	}, nil
}
