package cron

import (
	"log"
	"os"
	"strconv"

	"gudang.GO/config"
	itemRepo "gudang.GO/model/repository/item"
)

// StockReportJob logs items whose stock is at or below LOW_STOCK_THRESHOLD
// (default 5). Read-only; it never touches the transaction path.
func StockReportJob(args ...string) {
	threshold := 5
	if v := os.Getenv("LOW_STOCK_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			threshold = n
		}
	}

	db, err := config.NewDB()
	if err != nil {
		log.Printf("stockreport: database connection failed: %v", err)
		return
	}

	items, err := itemRepo.NewItemRepository(db).FindAllWithCategory()
	if err != nil {
		log.Printf("stockreport: query failed: %v", err)
		return
	}

	low := 0
	for _, it := range items {
		if it.Stock <= threshold {
			low++
			log.Printf("stockreport: low stock: item %d %q (%s) stock=%d", it.ID, it.Nama, it.CategoryName, it.Stock)
		}
	}
	log.Printf("stockreport: %d items checked, %d at or below threshold %d", len(items), low, threshold)
}
