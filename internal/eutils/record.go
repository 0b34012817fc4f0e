// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package eutils

import (
	"encoding/xml"
	"io"
)

// Article is one PubMed record as returned by EFetch. Only the fields
// the classification pipeline consumes are mapped; the rest of the
// record is ignored by the decoder.
type Article struct {
	PMID  string `xml:"MedlineCitation>PMID"`
	Title string `xml:"MedlineCitation>Article>ArticleTitle"`

	// The three date-bearing containers, in classification preference
	// order: journal issue publication date, electronic article date,
	// completion date.
	PubDate       DateParts `xml:"MedlineCitation>Article>Journal>JournalIssue>PubDate"`
	ArticleDate   DateParts `xml:"MedlineCitation>Article>ArticleDate"`
	DateCompleted DateParts `xml:"MedlineCitation>DateCompleted"`

	Authors []AuthorRecord `xml:"MedlineCitation>Article>AuthorList>Author"`
}

// DateParts holds the optional Year/Month/Day leaves of a date container.
// Values are kept as raw text; PubMed mixes numeric and named months.
type DateParts struct {
	Year  string `xml:"Year"`
	Month string `xml:"Month"`
	Day   string `xml:"Day"`
}

// HasYear reports whether the container yields a usable date.
func (d DateParts) HasYear() bool { return d.Year != "" }

// AuthorRecord is one <Author> element. Raw retains the element's inner
// XML so callers can scan text the mapped fields do not cover, such as
// corresponding-author markers whose placement varies across records.
type AuthorRecord struct {
	LastName       string            `xml:"LastName"`
	ForeName       string            `xml:"ForeName"`
	CollectiveName string            `xml:"CollectiveName"`
	Affiliations   []AffiliationInfo `xml:"AffiliationInfo"`
	Raw            string            `xml:",innerxml"`
}

// AffiliationInfo is one <AffiliationInfo> element. A single element
// usually carries one <Affiliation> leaf but the DTD allows several.
type AffiliationInfo struct {
	Affiliation []string `xml:"Affiliation"`
}

type articleSet struct {
	XMLName  xml.Name  `xml:"PubmedArticleSet"`
	Articles []Article `xml:"PubmedArticle"`
}

// DecodeArticleSet parses an EFetch XML response body into article
// records in document order.
func DecodeArticleSet(r io.Reader) ([]Article, error) {
	var set articleSet
	if err := xml.NewDecoder(r).Decode(&set); err != nil {
		return nil, err
	}
	return set.Articles, nil
}
