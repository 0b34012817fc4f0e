// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import (
	"strings"
	"testing"

	"github.com/pdiddy/pharma-papers/internal/eutils"
	"github.com/pdiddy/pharma-papers/pkg/types"
)

// decodeOne parses a single-article EFetch XML document for tests.
func decodeOne(t *testing.T, xmlDoc string) *eutils.Article {
	t.Helper()
	articles, err := eutils.DecodeArticleSet(strings.NewReader(xmlDoc))
	if err != nil {
		t.Fatalf("DecodeArticleSet: %v", err)
	}
	if len(articles) != 1 {
		t.Fatalf("decoded %d articles, want 1", len(articles))
	}
	return &articles[0]
}

func articleXML(authorsXML string) string {
	return `<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID Version="1">12345</PMID>
      <Article>
        <ArticleTitle>Test Article</ArticleTitle>
        <AuthorList>` + authorsXML + `</AuthorList>
      </Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`
}

func TestParseAuthorsNameComposition(t *testing.T) {
	tests := []struct {
		name      string
		authorXML string
		wantName  string
	}{
		{
			name:      "last and fore name",
			authorXML: `<Author><LastName>Smith</LastName><ForeName>Jane</ForeName></Author>`,
			wantName:  "Smith, Jane",
		},
		{
			name:      "last name only",
			authorXML: `<Author><LastName>Smith</LastName></Author>`,
			wantName:  "Smith",
		},
		{
			name:      "fore name only",
			authorXML: `<Author><ForeName>Jane</ForeName></Author>`,
			wantName:  "Jane",
		},
		{
			name:      "collective name",
			authorXML: `<Author><CollectiveName>COVID Vaccine Study Group</CollectiveName></Author>`,
			wantName:  "COVID Vaccine Study Group",
		},
		{
			name:      "no name at all",
			authorXML: `<Author><AffiliationInfo><Affiliation>Pfizer Inc.</Affiliation></AffiliationInfo></Author>`,
			wantName:  types.Placeholder,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := decodeOne(t, articleXML(tt.authorXML))
			authors := ParseAuthors(article)
			if len(authors) != 1 {
				t.Fatalf("parsed %d authors, want 1", len(authors))
			}
			if authors[0].Name != tt.wantName {
				t.Errorf("Name = %q, want %q", authors[0].Name, tt.wantName)
			}
		})
	}
}

func TestParseAuthorsAffiliations(t *testing.T) {
	authorXML := `<Author>
		<LastName>Doe</LastName><ForeName>John</ForeName>
		<AffiliationInfo><Affiliation>Acme Therapeutics, Boston, MA</Affiliation></AffiliationInfo>
		<AffiliationInfo><Affiliation>   </Affiliation></AffiliationInfo>
		<AffiliationInfo><Affiliation>Harvard Medical School</Affiliation></AffiliationInfo>
	</Author>`

	article := decodeOne(t, articleXML(authorXML))
	authors := ParseAuthors(article)
	if len(authors) != 1 {
		t.Fatalf("parsed %d authors, want 1", len(authors))
	}

	want := []string{"Acme Therapeutics, Boston, MA", "Harvard Medical School"}
	got := authors[0].Affiliations
	if len(got) != len(want) {
		t.Fatalf("affiliations = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("affiliations[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestParseAuthorsAffiliationsNeverNil(t *testing.T) {
	article := decodeOne(t, articleXML(`<Author><LastName>Solo</LastName></Author>`))
	authors := ParseAuthors(article)
	if authors[0].Affiliations == nil {
		t.Error("Affiliations is nil, want empty slice")
	}
}

func TestParseAuthorsCorresponding(t *testing.T) {
	tests := []struct {
		name      string
		authorXML string
		want      bool
	}{
		{
			name: "marker in affiliation text",
			authorXML: `<Author><LastName>Lee</LastName>
				<AffiliationInfo><Affiliation>Corresponding author. Vertex, Boston.</Affiliation></AffiliationInfo>
			</Author>`,
			want: true,
		},
		{
			name: "mixed case marker",
			authorXML: `<Author><LastName>Lee</LastName>
				<AffiliationInfo><Affiliation>CORRESPONDING: lee@vrtx.com</Affiliation></AffiliationInfo>
			</Author>`,
			want: true,
		},
		{
			name:      "no marker",
			authorXML: `<Author><LastName>Lee</LastName><AffiliationInfo><Affiliation>Vertex, Boston</Affiliation></AffiliationInfo></Author>`,
			want:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := decodeOne(t, articleXML(tt.authorXML))
			authors := ParseAuthors(article)
			if authors[0].Corresponding != tt.want {
				t.Errorf("Corresponding = %v, want %v", authors[0].Corresponding, tt.want)
			}
		})
	}
}

func TestParseAuthorsMissingAuthorList(t *testing.T) {
	doc := `<?xml version="1.0" ?>
<PubmedArticleSet>
  <PubmedArticle>
    <MedlineCitation>
      <PMID>99</PMID>
      <Article><ArticleTitle>No Authors Here</ArticleTitle></Article>
    </MedlineCitation>
  </PubmedArticle>
</PubmedArticleSet>`

	article := decodeOne(t, doc)
	authors := ParseAuthors(article)
	if len(authors) != 0 {
		t.Errorf("parsed %d authors, want 0", len(authors))
	}
}

func TestParseAuthorsDocumentOrder(t *testing.T) {
	authorsXML := `
		<Author><LastName>First</LastName></Author>
		<Author><LastName>Second</LastName></Author>
		<Author><LastName>Third</LastName></Author>`

	article := decodeOne(t, articleXML(authorsXML))
	authors := ParseAuthors(article)

	want := []string{"First", "Second", "Third"}
	if len(authors) != len(want) {
		t.Fatalf("parsed %d authors, want %d", len(authors), len(want))
	}
	for i, name := range want {
		if authors[i].Name != name {
			t.Errorf("authors[%d].Name = %q, want %q", i, authors[i].Name, name)
		}
	}
}
