// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package classify

import "testing"

func TestExtractCompanyName(t *testing.T) {
	rules := NewRuleset()

	tests := []struct {
		name        string
		affiliation string
		want        string
	}{
		{
			name:        "company segment between department and city",
			affiliation: "Department of Oncology, Pfizer Inc., New York, NY, USA",
			want:        "Pfizer Inc.",
		},
		{
			name:        "company leads the string",
			affiliation: "Acme Therapeutics, Boston, MA, acme@acmetx.com",
			want:        "Acme Therapeutics",
		},
		{
			name:        "semicolon delimited",
			affiliation: "Research Division; Novartis Pharma AG; Basel; Switzerland",
			want:        "Novartis Pharma AG",
		},
		{
			name:        "comma preferred over semicolon",
			affiliation: "Moderna Inc., Cambridge; MA",
			want:        "Moderna Inc.",
		},
		{
			name:        "newline delimited",
			affiliation: "Translational Sciences\nRegeneron\nTarrytown NY",
			want:        "Regeneron",
		},
		{
			name:        "double space delimited",
			affiliation: "Medical Affairs  Gilead Sciences KK  Tokyo",
			want:        "Gilead Sciences KK",
		},
		{
			name:        "no delimiter falls back to whole string",
			affiliation: "AstraZeneca",
			want:        "AstraZeneca",
		},
		{
			name:        "delimiter present but no qualifying segment",
			affiliation: "Johnson, & Johnson",
			want:        "Johnson, & Johnson",
		},
		{
			name:        "surrounding whitespace trimmed",
			affiliation: "  Takeda Pharmaceutical Company Limited  ",
			want:        "Takeda Pharmaceutical Company Limited",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rules.ExtractCompanyName(tt.affiliation)
			if got != tt.want {
				t.Errorf("ExtractCompanyName(%q) = %q, want %q", tt.affiliation, got, tt.want)
			}
		})
	}
}

// The extractor is total: any non-empty input yields a non-empty result.
func TestExtractCompanyNameTotality(t *testing.T) {
	rules := NewRuleset()

	inputs := []string{
		"x",
		"Harvard Medical School, Boston",
		"a, b; c\nd",
		", , ,",
	}
	for _, in := range inputs {
		if got := rules.ExtractCompanyName(in); got == "" {
			t.Errorf("ExtractCompanyName(%q) = empty string", in)
		}
	}
}
