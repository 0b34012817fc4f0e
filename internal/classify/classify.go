// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/pharma-papers/internal/eutils"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// BatchResult holds the outcome of classifying a batch of articles.
type BatchResult struct {
	Included int
	Excluded int
	Papers   []types.ClassifiedPaper
}

// Total returns the number of articles processed.
func (r BatchResult) Total() int {
	return r.Included + r.Excluded
}

// Classify examines one article record and, when at least one author
// has a commercial pharma/biotech affiliation, assembles the report
// record. The second return value is false when the article does not
// qualify. Classification is a pure function of the record and the
// rule set; classifying the same record twice yields equal results.
func Classify(article *eutils.Article, rules *Ruleset) (*types.ClassifiedPaper, bool) {
	authors := ParseAuthors(article)

	var nonAcademic []string
	companies := make(map[string]struct{})

	for _, a := range authors {
		qualified := false
		for _, aff := range a.Affiliations {
			if !rules.IsCompanyAffiliation(aff) {
				continue
			}
			if !qualified {
				nonAcademic = append(nonAcademic, a.Name)
				qualified = true
			}
			companies[rules.ExtractCompanyName(aff)] = struct{}{}
		}
	}

	if len(nonAcademic) == 0 {
		return nil, false
	}

	companyList := make([]string, 0, len(companies))
	for c := range companies {
		companyList = append(companyList, c)
	}
	sort.Strings(companyList)

	return &types.ClassifiedPaper{
		PubmedID:            orPlaceholder(article.PMID),
		Title:               orPlaceholder(strings.TrimSpace(article.Title)),
		PublicationDate:     publicationDate(article),
		NonAcademicAuthors:  nonAcademic,
		CompanyAffiliations: companyList,
		CorrespondingEmail:  correspondingEmail(authors, rules),
	}, true
}

// ClassifyBatch classifies each article independently. One malformed or
// non-qualifying article never affects the rest of the batch; excluded
// articles are reported to w.
func ClassifyBatch(articles []eutils.Article, rules *Ruleset, w io.Writer) BatchResult {
	var result BatchResult
	for i := range articles {
		paper, ok := Classify(&articles[i], rules)
		if !ok {
			result.Excluded++
			fmt.Fprintf(w, "excluded: %s (no company-affiliated authors)\n",
				orPlaceholder(articles[i].PMID))
			continue
		}
		result.Included++
		result.Papers = append(result.Papers, *paper)
	}
	return result
}

// publicationDate composes "YYYY[-MM[-DD]]" from the first date
// container that carries a year, in preference order: journal issue
// publication date, electronic article date, completion date. Leaf text
// is kept as-is; PubMed mixes numeric and named months.
func publicationDate(article *eutils.Article) string {
	for _, d := range []eutils.DateParts{
		article.PubDate,
		article.ArticleDate,
		article.DateCompleted,
	} {
		if !d.HasYear() {
			continue
		}
		date := d.Year
		if d.Month != "" {
			date += "-" + d.Month
			if d.Day != "" {
				date += "-" + d.Day
			}
		}
		return date
	}
	return types.Placeholder
}

// correspondingEmail returns the first email address found in the
// affiliations of authors flagged as corresponding, scanning authors in
// document order and each author's affiliations in order.
func correspondingEmail(authors []types.Author, rules *Ruleset) string {
	for _, a := range authors {
		if !a.Corresponding {
			continue
		}
		for _, aff := range a.Affiliations {
			if email := rules.FindEmail(aff); email != "" {
				return email
			}
		}
	}
	return types.Placeholder
}

func orPlaceholder(s string) string {
	if s == "" {
		return types.Placeholder
	}
	return s
}
