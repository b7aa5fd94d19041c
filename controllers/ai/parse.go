package aiControllers

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultBudget is assumed when the message carries no usable number.
const DefaultBudget = 1000

// First 3-6 digit integer, optionally preceded by a currency marker.
var budgetRe = regexp.MustCompile(`(?i)\b(?:\$|rs\.?|inr\s?)?(\d{3,6})\b`)

// ExtractBudget pulls a budget out of free text. ok is false when no number
// in range was found.
func ExtractBudget(text string) (int, bool) {
	m := budgetRe.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// Use-case profiles recognized by ExtractUseCase and the weight tables.
const (
	UseCaseGaming  = "gaming"
	UseCaseEditing = "editing"
	UseCaseOffice  = "office"
	UseCaseGeneral = "general"
)

var useCaseKeywords = []struct {
	useCase  string
	keywords []string
}{
	{UseCaseGaming, []string{"gaming"}},
	{UseCaseEditing, []string{"editing", "render", "video", "photo"}},
	{UseCaseOffice, []string{"office", "browsing", "study", "student"}},
}

// ExtractUseCase matches keywords against the known profiles, defaulting to
// "general".
func ExtractUseCase(text string) string {
	lower := strings.ToLower(text)
	for _, uc := range useCaseKeywords {
		for _, kw := range uc.keywords {
			if strings.Contains(lower, kw) {
				return uc.useCase
			}
		}
	}
	return UseCaseGeneral
}
