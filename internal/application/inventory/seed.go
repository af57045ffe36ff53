package inventory

import (
	"time"

	"github.com/jhoicas/aadish-inventory/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DemoSeed catálogo de ejemplo: cinco artículos de abarrotes y los movimientos de septiembre 2023.
func DemoSeed() Seed {
	day := func(d int) time.Time { return time.Date(2023, time.September, d, 0, 0, 0, 0, time.UTC) }
	inr := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

	items := []entity.InventoryItem{
		{ID: "1", Name: "Premium Rice", SKU: "RICE001", Category: "Grains", Supplier: "Farm Fresh Supplies",
			CurrentStock: 250, LowStockThreshold: 50, PurchasePrice: inr(2500), SellingPrice: inr(3200), LastUpdated: day(15)},
		{ID: "2", Name: "Wheat Flour", SKU: "WHEAT001", Category: "Grains", Supplier: "Organic Mills",
			CurrentStock: 180, LowStockThreshold: 40, PurchasePrice: inr(1800), SellingPrice: inr(2400), LastUpdated: day(12)},
		{ID: "3", Name: "Sugar", SKU: "SUGAR001", Category: "Sweeteners", Supplier: "Sweet Industries",
			CurrentStock: 120, LowStockThreshold: 30, PurchasePrice: inr(3000), SellingPrice: inr(3800), LastUpdated: day(10)},
		{ID: "4", Name: "Cooking Oil", SKU: "OIL001", Category: "Oils", Supplier: "Pure Oils Ltd",
			CurrentStock: 28, LowStockThreshold: 30, PurchasePrice: inr(9500), SellingPrice: inr(12000), LastUpdated: day(5)},
		{ID: "5", Name: "Salt", SKU: "SALT001", Category: "Condiments", Supplier: "Salt Factory",
			CurrentStock: 200, LowStockThreshold: 50, PurchasePrice: inr(800), SellingPrice: inr(1200), LastUpdated: day(8)},
	}

	tx := func(id string, d int, item entity.InventoryItem, qty int64, unit int64, detail entity.TransactionDetail) entity.StockTransaction {
		return entity.StockTransaction{
			ID: id, Date: day(d), ItemID: item.ID, ItemName: item.Name, Quantity: int(qty),
			UnitPrice: inr(unit), TotalPrice: inr(qty * unit), Detail: detail,
		}
	}
	rice, flour, sugar, oil := items[0], items[1], items[2], items[3]
	txs := []entity.StockTransaction{
		tx("1", 1, rice, 100, 2500, entity.Addition{Supplier: rice.Supplier}),
		tx("2", 2, flour, 80, 1800, entity.Addition{Supplier: flour.Supplier}),
		tx("3", 5, rice, 30, 3200, entity.Sale{Customer: "Restaurant ABC"}),
		tx("4", 7, flour, 20, 2400, entity.Sale{Customer: "Bakery XYZ"}),
		tx("5", 10, sugar, 120, 3000, entity.Addition{Supplier: sugar.Supplier}),
		tx("6", 12, oil, 50, 9500, entity.Addition{Supplier: oil.Supplier}),
		tx("7", 15, sugar, 40, 3800, entity.Sale{Customer: "Sweet Shop"}),
		tx("8", 18, oil, 22, 12000, entity.Sale{Customer: "Restaurant DEF"}),
	}

	suppliers := make([]string, 0, len(items))
	for _, it := range items {
		suppliers = append(suppliers, it.Supplier)
	}
	return Seed{Items: items, Transactions: txs, Suppliers: suppliers}
}
