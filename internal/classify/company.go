// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "strings"

// companyDelimiters are tried in this order when isolating the
// company-bearing fragment of an affiliation. The order is a stable
// tie-break: changing it changes which fragment of a multi-part
// affiliation is reported.
var companyDelimiters = []string{",", ";", "\n", "  "}

// ExtractCompanyName derives a human-readable company-name fragment
// from an affiliation string. Affiliations read roughly "Department,
// Company Name, City, Country"; splitting on each delimiter in turn and
// re-testing the segments isolates the company without a full grammar.
// If no delimiter yields a qualifying segment the whole trimmed string
// is returned, so the result is always non-empty for non-empty input.
func (r *Ruleset) ExtractCompanyName(affiliation string) string {
	for _, delim := range companyDelimiters {
		if !strings.Contains(affiliation, delim) {
			continue
		}
		for _, part := range strings.Split(affiliation, delim) {
			if r.IsCompanyAffiliation(part) {
				return strings.TrimSpace(part)
			}
		}
	}
	return strings.TrimSpace(affiliation)
}
