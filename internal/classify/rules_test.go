// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "testing"

func TestIsCompanyAffiliationNamedCompanies(t *testing.T) {
	rules := NewRuleset()

	tests := []struct {
		name string
		text string
	}{
		{"pfizer plain", "Pfizer Inc., New York, NY, USA"},
		{"pfizer lowercase", "pfizer inc., new york"},
		{"pfizer uppercase", "PFIZER GLOBAL R&D"},
		{"novartis", "Novartis Institutes for BioMedical Research, Basel, Switzerland"},
		{"johnson and johnson spaced", "Johnson & Johnson, New Brunswick, NJ"},
		{"johnson and johnson compact", "Johnson&Johnson Innovative Medicine"},
		{"j and j short form", "J&J Medical Devices"},
		{"astrazeneca", "Oncology R&D, AstraZeneca, Cambridge, UK"},
		{"bristol myers squibb", "Bristol Myers Squibb, Princeton, NJ"},
		{"eli lilly", "Eli Lilly and Company, Indianapolis, IN"},
		{"boehringer ingelheim", "Boehringer Ingelheim Pharma GmbH"},
		{"moderna", "Moderna, Inc., Cambridge, MA"},
		{"biontech", "BioNTech SE, Mainz, Germany"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !rules.IsCompanyAffiliation(tt.text) {
				t.Errorf("IsCompanyAffiliation(%q) = false, want true", tt.text)
			}
		})
	}
}

func TestIsCompanyAffiliationGenericVocabulary(t *testing.T) {
	rules := NewRuleset()

	tests := []struct {
		name string
		text string
	}{
		{"pharmaceuticals", "Acme Pharmaceuticals, Springfield"},
		{"biotech", "Orion Biotech, San Diego, CA"},
		{"biotechnology", "Institute of Biotechnology Applications"},
		{"therapeutics suffix", "Acme Therapeutics, Boston, MA"},
		{"biopharmaceutical", "Zenith Biopharmaceuticals Ltd."},
		{"life sciences", "Crestwood Life Sciences, Dublin"},
		{"drug development", "Center for Drug Development, Horizon Ltd."},
		{"clinical research", "Global Clinical Research Organization"},
		{"biosciences suffix", "Redwood Biosciences, Emeryville"},
		{"lifesciences suffix", "Apex Lifesciences Pvt. Ltd."},
		{"hybrid institute", "Pharma Research Institute of Osaka"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !rules.IsCompanyAffiliation(tt.text) {
				t.Errorf("IsCompanyAffiliation(%q) = false, want true", tt.text)
			}
		})
	}
}

func TestIsCompanyAffiliationAcademicNegatives(t *testing.T) {
	rules := NewRuleset()

	tests := []struct {
		name string
		text string
	}{
		{"university", "Harvard Medical School, Boston, MA, USA"},
		{"department", "Department of Medicine, University of Oxford"},
		{"hospital", "Massachusetts General Hospital, Boston"},
		{"public health", "School of Public Health, Johns Hopkins University"},
		{"empty string", ""},
		{"whitespace only", "   \t  "},
		{"plain address", "221B Baker Street, London"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rules.IsCompanyAffiliation(tt.text) {
				t.Errorf("IsCompanyAffiliation(%q) = true, want false", tt.text)
			}
		})
	}
}

// An academic "Clinical Research Center" matches the hybrid-institute
// rule. That false positive is part of the heuristic's contract.
func TestIsCompanyAffiliationKnownFalsePositive(t *testing.T) {
	rules := NewRuleset()
	text := "Clinical Research Center, City General Hospital"
	if !rules.IsCompanyAffiliation(text) {
		t.Errorf("IsCompanyAffiliation(%q) = false; the hybrid rule is expected to match", text)
	}
}

func TestIsCompanyAffiliationWholeWordBoundaries(t *testing.T) {
	rules := NewRuleset()

	// "bayer" must match as a whole word, not inside another word.
	if rules.IsCompanyAffiliation("Obayerton University, Dept. of History") {
		t.Error("substring inside a longer word should not match")
	}
	if !rules.IsCompanyAffiliation("Bayer AG, Leverkusen, Germany") {
		t.Error("whole-word company name should match")
	}
}

func TestFindEmail(t *testing.T) {
	rules := NewRuleset()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain email", "Acme Therapeutics, Boston, MA, acme@acmetx.com", "acme@acmetx.com"},
		{"email with dots and plus", "Contact: first.last+lab@sub.example.org.", "first.last+lab@sub.example.org"},
		{"no email", "Pfizer Inc., New York", ""},
		{"missing tld", "broken@localhost", ""},
		{"first of two", "a@x.com and b@y.com", "a@x.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.FindEmail(tt.text); got != tt.want {
				t.Errorf("FindEmail(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
