package db

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Mysterious135/delivery-app/internal/models"
)

// Seed replaces the catalog with the fixture vendors and items. Orders are
// wiped too so no order_items point at deleted rows. Everything runs in one
// transaction.
func Seed(gdb *gorm.DB) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{
			&models.OrderItem{},
			&models.Item{},
			&models.Order{},
			&models.Vendor{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}

		vendors := []models.Vendor{
			{
				Name:     "Pizza Palace",
				Address:  "123 Main St, Anytown",
				ImageURL: "https://images.pexels.com/photos/1653877/pexels-photo-1653877.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
			{
				Name:     "Burger Barn",
				Address:  "456 Oak Ave, Anytown",
				ImageURL: "https://images.pexels.com/photos/2271107/pexels-photo-2271107.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
		}
		if err := tx.Create(&vendors).Error; err != nil {
			return err
		}

		items := []models.Item{
			{
				VendorID:      vendors[0].ID,
				Name:          "Margherita Pizza",
				Price:         decimal.RequireFromString("8.99"),
				StockQuantity: 50,
				ImageURL:      "https://images.pexels.com/photos/1260968/pexels-photo-1260968.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
			{
				VendorID:      vendors[0].ID,
				Name:          "Pepperoni Pizza",
				Price:         decimal.RequireFromString("10.50"),
				StockQuantity: 40,
				ImageURL:      "https://images.pexels.com/photos/845811/pexels-photo-845811.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
			{
				VendorID:      vendors[1].ID,
				Name:          "Classic Burger",
				Price:         decimal.RequireFromString("5.99"),
				StockQuantity: 100,
				ImageURL:      "https://images.pexels.com/photos/1639557/pexels-photo-1639557.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
			{
				VendorID:      vendors[1].ID,
				Name:          "Cheese Burger",
				Price:         decimal.RequireFromString("6.49"),
				StockQuantity: 80,
				ImageURL:      "https://images.pexels.com/photos/2983101/pexels-photo-2983101.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
			{
				VendorID:      vendors[1].ID,
				Name:          "Fries",
				Price:         decimal.RequireFromString("2.99"),
				StockQuantity: 200,
				ImageURL:      "https://images.pexels.com/photos/1583884/pexels-photo-1583884.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			},
		}

		return tx.Create(&items).Error
	})
}
