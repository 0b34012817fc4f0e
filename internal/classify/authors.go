// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"

	"github.com/pdiddy/pharma-papers/internal/eutils"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// ParseAuthors extracts the normalized author list from an article
// record in document order. A record without an author list yields an
// empty slice. Authors with no name information are kept with the
// placeholder so their affiliations still count toward classification.
func ParseAuthors(article *eutils.Article) []types.Author {
	authors := make([]types.Author, 0, len(article.Authors))
	for _, rec := range article.Authors {
		authors = append(authors, types.Author{
			Name:          authorName(rec),
			Affiliations:  affiliations(rec),
			Corresponding: isCorresponding(rec),
		})
	}
	return authors
}

// authorName composes "LastName, FirstName" from whichever name parts
// the record carries. Collective names (consortia, working groups)
// stand on their own.
func authorName(rec eutils.AuthorRecord) string {
	last := strings.TrimSpace(rec.LastName)
	fore := strings.TrimSpace(rec.ForeName)
	switch {
	case last != "" && fore != "":
		return last + ", " + fore
	case last != "":
		return last
	case fore != "":
		return fore
	case strings.TrimSpace(rec.CollectiveName) != "":
		return strings.TrimSpace(rec.CollectiveName)
	default:
		return types.Placeholder
	}
}

// affiliations collects the affiliation text leaves under the author's
// AffiliationInfo elements in document order, dropping blank entries.
func affiliations(rec eutils.AuthorRecord) []string {
	affs := []string{}
	for _, info := range rec.Affiliations {
		for _, a := range info.Affiliation {
			if strings.TrimSpace(a) != "" {
				affs = append(affs, a)
			}
		}
	}
	return affs
}

// isCorresponding scans all text in the author's element for the word
// "corresponding". PubMed has no reliable structured marker for
// corresponding authorship, so any mention counts.
func isCorresponding(rec eutils.AuthorRecord) bool {
	return strings.Contains(strings.ToLower(rec.Raw), "corresponding")
}
