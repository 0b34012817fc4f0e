// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether PubMed articles have commercial
// pharma/biotech author affiliations and assembles the report records.
//
// The decision is a fixed set of case-insensitive regular-expression
// rules over free-text affiliation strings. The rules are heuristic:
// a hospital's "Clinical Research Center" matches even though it is
// academic. That trade-off is accepted; the rule semantics are stable
// because downstream reports depend on them.
package classify

import (
	"regexp"
	"strings"
)

// rulePatterns are the affiliation classification rules. A match on any
// rule marks the affiliation as commercial.
var rulePatterns = []string{
	// Major pharmaceutical and biotech companies, including the
	// alternate "J&J" form.
	`(?i)\b(pfizer|novartis|roche|johnson\s*&\s*johnson|j&j|merck|gsk|glaxosmithkline|sanofi|astrazeneca|abbvie|bristol\s*myers\s*squibb|eli\s*lilly|boehringer\s*ingelheim|takeda|bayer|amgen|gilead|biogen|celgene|vertex|regeneron|alexion|incyte|illumina|moderna|biontech)\b`,

	// Generic sector vocabulary.
	`(?i)\b(pharmaceuticals?|biotech|biotechnology|therapeutics?|biopharmaceuticals?|life\s*sciences?|drug\s*development|clinical\s*research)\b`,

	// Commercially branded research-institute names.
	`(?i)\b(pharma|biotech|therapeutic|clinical)\s+(research|institute|center|laboratory|lab)\b`,

	// Arbitrary company names ending in a sector suffix, e.g. "Acme Therapeutics".
	`(?i)\b\w+\s*(pharmaceuticals?|biotech|therapeutics?|biosciences?|lifesciences?)\b`,
}

const emailPattern = `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`

// Ruleset is the immutable compiled rule set. It is safe for concurrent
// use; construct it once and pass it to each classification call.
type Ruleset struct {
	company []*regexp.Regexp
	email   *regexp.Regexp
}

// NewRuleset compiles the affiliation rules and the email pattern.
func NewRuleset() *Ruleset {
	rs := &Ruleset{
		company: make([]*regexp.Regexp, 0, len(rulePatterns)),
		email:   regexp.MustCompile(emailPattern),
	}
	for _, p := range rulePatterns {
		rs.company = append(rs.company, regexp.MustCompile(p))
	}
	return rs
}

// IsCompanyAffiliation reports whether the affiliation string denotes a
// commercial pharma/biotech entity. An empty string is never a match.
func (r *Ruleset) IsCompanyAffiliation(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	for _, re := range r.company {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// FindEmail returns the first email address in text, or "" if none.
func (r *Ruleset) FindEmail(text string) string {
	return r.email.FindString(text)
}
