package aiControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		text   string
		budget int
		ok     bool
	}{
		{"build me a gaming pc for 1000", 1000, true},
		{"$1500 editing workstation", 1500, true},
		{"rs. 50000 please", 50000, true},
		{"inr 80000", 80000, true},
		{"rs800 quick build", 800, true},
		{"around 999999 total", 999999, true},
		{"i have 99 bucks", 0, false},       // below 3 digits
		{"secret code 1234567", 0, false},   // above 6 digits
		{"no budget mentioned", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		budget, ok := ExtractBudget(tt.text)
		assert.Equal(t, tt.ok, ok, "text: %q", tt.text)
		assert.Equal(t, tt.budget, budget, "text: %q", tt.text)
	}
}

func TestExtractBudgetPicksFirstNumber(t *testing.T) {
	budget, ok := ExtractBudget("either 800 or 1200")
	assert.True(t, ok)
	assert.Equal(t, 800, budget)
}

func TestExtractUseCase(t *testing.T) {
	tests := []struct {
		text    string
		useCase string
	}{
		{"a GAMING rig", UseCaseGaming},
		{"for video editing", UseCaseEditing},
		{"photo work", UseCaseEditing},
		{"render farm node", UseCaseEditing},
		{"office machine", UseCaseOffice},
		{"something for a student", UseCaseOffice},
		{"just browsing the web", UseCaseOffice},
		{"whatever works", UseCaseGeneral},
		{"", UseCaseGeneral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.useCase, ExtractUseCase(tt.text), "text: %q", tt.text)
	}
}
