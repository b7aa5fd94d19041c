package aiControllers

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// Categories a build is assembled from, allocated in this order. Peripherals
// are not part of a build.
var buildCategories = []string{
	models.CategoryCPU,
	models.CategoryGPU,
	models.CategoryRAM,
	models.CategoryMotherboard,
	models.CategoryStorage,
	models.CategoryPSU,
	models.CategoryCase,
}

// Budget share per category for each use-case profile; each row sums to 1.0.
var useCaseWeights = map[string]map[string]float64{
	UseCaseGaming: {
		models.CategoryCPU: 0.2, models.CategoryGPU: 0.45, models.CategoryRAM: 0.1,
		models.CategoryMotherboard: 0.1, models.CategoryStorage: 0.08,
		models.CategoryPSU: 0.05, models.CategoryCase: 0.02,
	},
	UseCaseEditing: {
		models.CategoryCPU: 0.35, models.CategoryGPU: 0.25, models.CategoryRAM: 0.12,
		models.CategoryMotherboard: 0.12, models.CategoryStorage: 0.1,
		models.CategoryPSU: 0.04, models.CategoryCase: 0.02,
	},
	UseCaseOffice: {
		models.CategoryCPU: 0.25, models.CategoryGPU: 0.1, models.CategoryRAM: 0.15,
		models.CategoryMotherboard: 0.15, models.CategoryStorage: 0.15,
		models.CategoryPSU: 0.1, models.CategoryCase: 0.1,
	},
	UseCaseGeneral: {
		models.CategoryCPU: 0.25, models.CategoryGPU: 0.3, models.CategoryRAM: 0.12,
		models.CategoryMotherboard: 0.12, models.CategoryStorage: 0.12,
		models.CategoryPSU: 0.06, models.CategoryCase: 0.03,
	},
}

type BuildSuggestion struct {
	Picks map[string]models.Product `json:"picks"`
	Total decimal.Decimal           `json:"total"`
}

// SuggestBuild distributes the budget across the category weights and picks,
// per category, the most expensive product still at or under its target, or
// the cheapest one when nothing fits. Categories with no products are
// skipped. No randomness: fixed inputs and a fixed catalog always produce
// the same build.
func SuggestBuild(db *gorm.DB, budget int, useCase string) (BuildSuggestion, error) {
	weights, ok := useCaseWeights[useCase]
	if !ok {
		weights = useCaseWeights[UseCaseGeneral]
	}

	picks := make(map[string]models.Product, len(buildCategories))
	total := decimal.Zero
	for _, cat := range buildCategories {
		target := decimal.NewFromInt(int64(budget)).Mul(decimal.NewFromFloat(weights[cat]))

		var products []models.Product
		if err := db.Where("category = ?", cat).
			Order("price ASC, id ASC").Find(&products).Error; err != nil {
			return BuildSuggestion{}, apierr.Internal(err, "failed to fetch products")
		}
		if len(products) == 0 {
			continue
		}

		pick := products[0]
		for _, p := range products {
			if p.Price.LessThanOrEqual(target) {
				pick = p
			}
		}
		picks[cat] = pick
		total = total.Add(pick.Price)
	}
	return BuildSuggestion{Picks: picks, Total: total}, nil
}
