package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// compatRule is one pairwise constraint: the tagKey values of both categories
// must match when both are present. Absence on either side skips the rule.
type compatRule struct {
	catA    string
	catB    string
	tagKey  string
	message string
}

// Evaluated in this exact order; append here to add constraints.
var compatRules = []compatRule{
	{models.CategoryCPU, models.CategoryMotherboard, models.TagSocketType, "CPU and Motherboard socket mismatch"},
	{models.CategoryRAM, models.CategoryMotherboard, models.TagMemoryType, "RAM type incompatible with Motherboard"},
	{models.CategoryCase, models.CategoryMotherboard, models.TagFormFactor, "Case and Motherboard form factor mismatch"},
}

type CompatibilityResult struct {
	Compatible bool     `json:"compatible"`
	Issues     []string `json:"issues"`
}

// CheckCompatibility validates a candidate part set (category -> tags)
// against the rule table. Pure: same input always yields the same result.
func CheckCompatibility(parts map[string]map[string]string) CompatibilityResult {
	issues := []string{}
	for _, r := range compatRules {
		a, okA := parts[r.catA]
		b, okB := parts[r.catB]
		if !okA || !okB {
			continue
		}
		va, vb := a[r.tagKey], b[r.tagKey]
		if va == "" || vb == "" {
			continue
		}
		if va != vb {
			issues = append(issues, r.message)
		}
	}
	return CompatibilityResult{Compatible: len(issues) == 0, Issues: issues}
}

// SeedRules returns the rule table as persistable rows.
func SeedRules() []models.CompatibilityRule {
	rules := make([]models.CompatibilityRule, 0, len(compatRules))
	for _, r := range compatRules {
		rules = append(rules, models.CompatibilityRule{
			ComponentType1:   r.catA,
			ComponentType2:   r.catB,
			CompatibilityKey: r.tagKey,
			RuleDescription:  r.message,
		})
	}
	return rules
}

type PartInput struct {
	Category          string            `json:"category"`
	CompatibilityTags map[string]string `json:"compatibility_tags"`
}

type CompatibilityRequest struct {
	Parts []PartInput `json:"parts"`
}

// POST /products/compatibility
func CheckCompatibilityHandler(c *gin.Context) {
	var req CompatibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierr.Respond(c, apierr.InvalidInput("invalid input: %v", err))
		return
	}

	parts := make(map[string]map[string]string, len(req.Parts))
	for _, p := range req.Parts {
		parts[p.Category] = p.CompatibilityTags
	}
	c.JSON(http.StatusOK, CheckCompatibility(parts))
}

// GET /products/compatibility/rules
func ListCompatibilityRules(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rules []models.CompatibilityRule
		if err := db.Order("id").Find(&rules).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to fetch compatibility rules"))
			return
		}
		c.JSON(http.StatusOK, rules)
	}
}
