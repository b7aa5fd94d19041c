package productcontroller

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/vanshpar/pc-builder-api/apierr"
	"github.com/vanshpar/pc-builder-api/models"
)

// ExportProductsToExcel streams the whole catalog as an .xlsx download.
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("category, id").Find(&products).Error; err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to fetch products"))
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to create Excel sheet"))
			return
		}

		headers := []string{
			"ID", "Name", "Category", "Brand", "Price", "Stock",
			"CompatibilityTags", "Specifications", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Brand)
			row.AddCell().SetValue(p.Price.String())
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(jsonCell(p.CompatibilityTags))
			row.AddCell().SetValue(jsonCell(p.Specifications))
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			apierr.Respond(c, apierr.Internal(err, "failed to write Excel file"))
			return
		}
	}
}

func jsonCell(m map[string]any) string {
	if len(m) == 0 {
		return ""
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}
