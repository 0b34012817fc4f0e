// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pdiddy/pharma-papers/pkg/types"
)

// QueryOptions holds parameters for archive queries.
type QueryOptions struct {
	// Query is the FTS5 full-text search string over title and companies.
	Query string

	// Company filters papers whose company set contains the substring.
	Company string

	// RunID filters by run.
	RunID string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// IsEmpty reports whether the query has no search terms or filters.
func (q QueryOptions) IsEmpty() bool {
	return q.Query == "" && q.Company == "" && q.RunID == ""
}

// QueryResult is an archived paper with its run context.
type QueryResult struct {
	types.ClassifiedPaper
	RunID    string `json:"run_id" yaml:"run_id"`
	RunQuery string `json:"run_query" yaml:"run_query"`
}

// Retrieve queries the archive with optional full-text search and
// structured filters. Full-text queries are ranked by relevance;
// structured-only queries are ordered by run and PMID.
func (s *Store) Retrieve(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb     strings.Builder
		args   []any
		useFTS = opts.Query != ""
	)

	if useFTS {
		qb.WriteString(
			`SELECT p.pmid, p.title, p.pub_date, p.authors, p.companies, p.email,
				p.run_id, r.query
			FROM papers_fts
			JOIN papers p ON p.rowid = papers_fts.rowid
			LEFT JOIN runs r ON p.run_id = r.id
			WHERE papers_fts MATCH ?`)
		args = append(args, opts.Query)
	} else {
		qb.WriteString(
			`SELECT p.pmid, p.title, p.pub_date, p.authors, p.companies, p.email,
				p.run_id, r.query
			FROM papers p
			LEFT JOIN runs r ON p.run_id = r.id
			WHERE 1=1`)
	}

	if opts.RunID != "" {
		qb.WriteString(` AND p.run_id = ?`)
		args = append(args, opts.RunID)
	}

	if opts.Company != "" {
		qb.WriteString(` AND EXISTS (SELECT 1 FROM json_each(p.companies) WHERE value LIKE '%' || ? || '%')`)
		args = append(args, opts.Company)
	}

	if useFTS {
		qb.WriteString(` ORDER BY papers_fts.rank`)
	} else {
		qb.WriteString(` ORDER BY p.run_id, p.pmid`)
	}

	qb.WriteString(` LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		var (
			qr            QueryResult
			authorsJSON   sql.NullString
			companiesJSON sql.NullString
			runQuery      sql.NullString
		)

		if err := rows.Scan(
			&qr.PubmedID, &qr.Title, &qr.PublicationDate,
			&authorsJSON, &companiesJSON, &qr.CorrespondingEmail,
			&qr.RunID, &runQuery,
		); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		if authorsJSON.Valid {
			json.Unmarshal([]byte(authorsJSON.String), &qr.NonAcademicAuthors)
		}
		if companiesJSON.Valid {
			json.Unmarshal([]byte(companiesJSON.String), &qr.CompanyAffiliations)
		}
		if runQuery.Valid {
			qr.RunQuery = runQuery.String
		}

		results = append(results, qr)
	}
	return results, rows.Err()
}
