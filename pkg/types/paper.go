// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pharma-papers pipeline.
package types

// Placeholder stands in for any output field that could not be extracted
// from the source record.
const Placeholder = "N/A"

// Author is one parsed author of a PubMed article.
type Author struct {
	// Name is "LastName, FirstName" when both parts are present, the
	// available fragment otherwise, or the placeholder.
	Name string `json:"name" yaml:"name"`

	// Affiliations lists the author's raw affiliation strings in
	// document order. Never nil; may be empty.
	Affiliations []string `json:"affiliations" yaml:"affiliations"`

	// Corresponding is true when the author's record mentions the word
	// "corresponding" anywhere in its text.
	Corresponding bool `json:"corresponding" yaml:"corresponding"`
}

// ClassifiedPaper is one qualifying article: at least one author is
// affiliated with a commercial pharma/biotech organization.
type ClassifiedPaper struct {
	// PubmedID is the article's PMID, or the placeholder.
	PubmedID string `json:"pubmed_id" yaml:"pubmed_id"`

	// Title is the article title, or the placeholder.
	Title string `json:"title" yaml:"title"`

	// PublicationDate is "YYYY", "YYYY-MM", or "YYYY-MM-DD" depending on
	// which components the record carries, or the placeholder.
	PublicationDate string `json:"publication_date" yaml:"publication_date"`

	// NonAcademicAuthors lists the names of company-affiliated authors in
	// first-match order. Never empty in a produced record.
	NonAcademicAuthors []string `json:"non_academic_authors" yaml:"non_academic_authors"`

	// CompanyAffiliations is the deduplicated set of extracted company
	// name fragments, sorted for output stability. Consumers must not
	// ascribe meaning to the order.
	CompanyAffiliations []string `json:"company_affiliations" yaml:"company_affiliations"`

	// CorrespondingEmail is the first email found in a corresponding
	// author's affiliations, or the placeholder.
	CorrespondingEmail string `json:"corresponding_email" yaml:"corresponding_email"`
}
