package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewforge/backoffice/internal/normalize"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already canonical", "company_type", "company_type"},
		{"mixed case and spaces", "  Company Type ", "company_type"},
		{"hyphens and dots", "general-contractor.v2", "general_contractor_v2"},
		{"slashes", "crane/rigging", "crane_rigging"},
		{"repeated separators", "a--b__c  d", "a_b_c_d"},
		{"invalid runes stripped", "Émile's crew!", "miles_crew"},
		{"leading separators", "__works_with__", "works_with"},
		{"digits kept", "local 401", "local_401"},
		{"empty", "   ", ""},
		{"only invalid runes", "!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.Key(tt.input))
		})
	}
}

func TestEmail(t *testing.T) {
	assert.Equal(t, "foreman@site.example", normalize.Email("  Foreman@Site.Example "))
	assert.Equal(t, "", normalize.Email("   "))
}

func TestPhoneE164(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"nanp ten digits", "(212) 555-0142", "+12125550142"},
		{"eleven with leading one", "1-212-555-0142", "+12125550142"},
		{"already e164", "+12125550142", "+12125550142"},
		{"international", "+44 20 7946 0958", "+442079460958"},
		{"seven digits", "555-0142", "+5550142"},
		{"way too short", "12345", ""},
		{"no digits", "call me", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.PhoneE164(tt.input))
		})
	}
}

func TestName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Acme Steel", "acme steel"},
		{"punctuation removed", "O'Brien & Sons, Inc.", "obrien sons inc"},
		{"whitespace collapsed", "  Iron   Works \t LLC ", "iron works llc"},
		{"unicode letters kept", "Béton Québec", "béton québec"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.Name(tt.input))
		})
	}
}

func TestLabelFromKey(t *testing.T) {
	assert.Equal(t, "Company Type", normalize.LabelFromKey("company_type"))
	assert.Equal(t, "Reports To", normalize.LabelFromKey("reports_to"))
	assert.Equal(t, "A B C", normalize.LabelFromKey("a__b_c"))
	assert.Equal(t, "", normalize.LabelFromKey(""))
}
