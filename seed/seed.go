// Package seed loads the demo catalog: one demo user, a representative set
// of parts per category, the service offerings, and the compatibility rule
// rows. Quantities and prices are fixed so seeded environments behave the
// same everywhere.
package seed

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	productcontroller "github.com/vanshpar/pc-builder-api/controllers/product"
	"github.com/vanshpar/pc-builder-api/models"
)

func price(n int) decimal.Decimal { return decimal.NewFromInt(int64(n)) }

func product(name, category, brand string, p, stock int, specs, tags datatypes.JSONMap) models.Product {
	return models.Product{
		Name:              name,
		Category:          category,
		Brand:             brand,
		Price:             price(p),
		StockQuantity:     stock,
		Specifications:    specs,
		ImageURL:          fmt.Sprintf("https://via.placeholder.com/600x400.png?text=%s", category),
		Description:       brand + " " + name,
		CompatibilityTags: tags,
	}
}

func catalog() []models.Product {
	products := []models.Product{
		// CPUs
		product("Intel Core i5-12400F", models.CategoryCPU, "Intel", 180, 12,
			datatypes.JSONMap{"cores": 6, "base_clock": "2.5 GHz"},
			datatypes.JSONMap{models.TagSocketType: "LGA1700"}),
		product("Intel Core i7-12700F", models.CategoryCPU, "Intel", 320, 8,
			datatypes.JSONMap{"cores": 12, "base_clock": "2.1 GHz"},
			datatypes.JSONMap{models.TagSocketType: "LGA1700"}),
		product("AMD Ryzen 5 5600", models.CategoryCPU, "AMD", 160, 15,
			datatypes.JSONMap{"cores": 6, "base_clock": "3.5 GHz"},
			datatypes.JSONMap{models.TagSocketType: "AM4"}),
		product("AMD Ryzen 7 5800X", models.CategoryCPU, "AMD", 260, 10,
			datatypes.JSONMap{"cores": 8, "base_clock": "3.8 GHz"},
			datatypes.JSONMap{models.TagSocketType: "AM4"}),

		// Motherboards
		product("MSI PRO B660M-A", models.CategoryMotherboard, "MSI", 120, 9,
			datatypes.JSONMap{"chipset": "B660"},
			datatypes.JSONMap{models.TagSocketType: "LGA1700", models.TagMemoryType: "DDR4", models.TagFormFactor: "mATX"}),
		product("ASUS TUF Gaming B660-PLUS", models.CategoryMotherboard, "ASUS", 170, 7,
			datatypes.JSONMap{"chipset": "B660"},
			datatypes.JSONMap{models.TagSocketType: "LGA1700", models.TagMemoryType: "DDR4", models.TagFormFactor: "ATX"}),
		product("Gigabyte B550M DS3H", models.CategoryMotherboard, "Gigabyte", 100, 14,
			datatypes.JSONMap{"chipset": "B550"},
			datatypes.JSONMap{models.TagSocketType: "AM4", models.TagMemoryType: "DDR4", models.TagFormFactor: "mATX"}),
		product("ASUS ROG Strix B550-F", models.CategoryMotherboard, "ASUS", 160, 6,
			datatypes.JSONMap{"chipset": "B550"},
			datatypes.JSONMap{models.TagSocketType: "AM4", models.TagMemoryType: "DDR4", models.TagFormFactor: "ATX"}),

		// RAM
		product("8GB DDR4 3200", models.CategoryRAM, "Corsair", 28, 25,
			datatypes.JSONMap{"capacity": "8GB"}, datatypes.JSONMap{models.TagMemoryType: "DDR4"}),
		product("16GB DDR4 3200", models.CategoryRAM, "Corsair", 56, 20,
			datatypes.JSONMap{"capacity": "16GB"}, datatypes.JSONMap{models.TagMemoryType: "DDR4"}),
		product("16GB DDR4 3600", models.CategoryRAM, "G.Skill", 64, 18,
			datatypes.JSONMap{"capacity": "16GB"}, datatypes.JSONMap{models.TagMemoryType: "DDR4"}),
		product("32GB DDR4 3600", models.CategoryRAM, "G.Skill", 128, 12,
			datatypes.JSONMap{"capacity": "32GB"}, datatypes.JSONMap{models.TagMemoryType: "DDR4"}),

		// GPUs
		product("NVIDIA GeForce RTX 4060", models.CategoryGPU, "NVIDIA", 300, 10,
			datatypes.JSONMap{"vram": "8GB"}, datatypes.JSONMap{}),
		product("NVIDIA GeForce RTX 4070", models.CategoryGPU, "NVIDIA", 520, 6,
			datatypes.JSONMap{"vram": "12GB"}, datatypes.JSONMap{}),
		product("AMD Radeon RX 6600", models.CategoryGPU, "AMD", 210, 12,
			datatypes.JSONMap{"vram": "8GB"}, datatypes.JSONMap{}),
		product("AMD Radeon RX 6700 XT", models.CategoryGPU, "AMD", 350, 8,
			datatypes.JSONMap{"vram": "12GB"}, datatypes.JSONMap{}),

		// Storage
		product("1TB NVMe SSD", models.CategoryStorage, "Samsung", 80, 30,
			datatypes.JSONMap{}, datatypes.JSONMap{}),
		product("512GB NVMe SSD", models.CategoryStorage, "WD", 45, 40,
			datatypes.JSONMap{}, datatypes.JSONMap{}),
		product("2TB HDD", models.CategoryStorage, "Seagate", 50, 35,
			datatypes.JSONMap{}, datatypes.JSONMap{}),
		product("1TB SATA SSD", models.CategoryStorage, "Crucial", 60, 28,
			datatypes.JSONMap{}, datatypes.JSONMap{}),

		// PSUs
		product("550W 80+ Bronze", models.CategoryPSU, "Corsair", 50, 20,
			datatypes.JSONMap{"wattage": "550W"}, datatypes.JSONMap{}),
		product("650W 80+ Bronze", models.CategoryPSU, "Cooler Master", 60, 18,
			datatypes.JSONMap{"wattage": "650W"}, datatypes.JSONMap{}),
		product("750W 80+ Gold", models.CategoryPSU, "Seasonic", 100, 12,
			datatypes.JSONMap{"wattage": "750W"}, datatypes.JSONMap{}),

		// Cases
		product("ATX Mid Tower", models.CategoryCase, "NZXT", 70, 15,
			datatypes.JSONMap{}, datatypes.JSONMap{models.TagFormFactor: "ATX"}),
		product("mATX Mini Tower", models.CategoryCase, "Cooler Master", 55, 18,
			datatypes.JSONMap{}, datatypes.JSONMap{models.TagFormFactor: "mATX"}),

		// Peripherals
		product("Mechanical Keyboard", models.CategoryPeripherals, "Redragon", 35, 30,
			datatypes.JSONMap{}, datatypes.JSONMap{}),
		product("Gaming Mouse", models.CategoryPeripherals, "Logitech", 25, 35,
			datatypes.JSONMap{}, datatypes.JSONMap{}),
		product(`1080p Monitor 24"`, models.CategoryPeripherals, "AOC", 120, 20,
			datatypes.JSONMap{}, datatypes.JSONMap{}),
		product("Headset", models.CategoryPeripherals, "HyperX", 40, 25,
			datatypes.JSONMap{}, datatypes.JSONMap{}),
	}

	// Storage variants to give the allocator a denser price ladder
	for i := 0; i < 20; i++ {
		products = append(products, product(
			fmt.Sprintf("1TB NVMe SSD Gen4 Model %d", i+1),
			models.CategoryStorage, "Generic", 60+i, 20,
			datatypes.JSONMap{"gen": "4x4"}, datatypes.JSONMap{},
		))
	}
	return products
}

func services() []models.Service {
	return []models.Service{
		{ServiceName: "PC Assembly", Description: "Professional assembly of your PC parts", BasePrice: price(50), Category: "assembly", EstimatedTime: "1-2 days"},
		{ServiceName: "Repair Services", Description: "Diagnostics and repair", BasePrice: price(30), Category: "repair", EstimatedTime: "2-5 days"},
		{ServiceName: "Upgrades", Description: "Hardware upgrade service", BasePrice: price(20), Category: "upgrade", EstimatedTime: "1-3 days"},
		{ServiceName: "Maintenance", Description: "Cleaning and thermal paste replacement", BasePrice: price(25), Category: "maintenance", EstimatedTime: "1 day"},
	}
}

// Run wipes and reloads products, services, and compatibility rules, and
// makes sure the demo user exists. Carts, orders, and bookings are left
// alone.
func Run(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Product{}, &models.Service{}, &models.CompatibilityRule{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		var demo models.User
		err := tx.Where("email = ?", "demo@example.com").First(&demo).Error
		if err == gorm.ErrRecordNotFound {
			demo = models.User{Name: "Demo User", Email: "demo@example.com", Address: "123 Demo Street"}
			err = tx.Create(&demo).Error
		}
		if err != nil {
			return err
		}

		products := catalog()
		if err := tx.Create(&products).Error; err != nil {
			return err
		}
		offered := services()
		if err := tx.Create(&offered).Error; err != nil {
			return err
		}
		rules := productcontroller.SeedRules()
		if err := tx.Create(&rules).Error; err != nil {
			return err
		}

		log.Printf("seeded %d products, %d services, %d compatibility rules",
			len(products), len(offered), len(rules))
		return nil
	})
}
