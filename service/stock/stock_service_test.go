package stock_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	entity "gudang.GO/model/entity"
	transactionRepo "gudang.GO/model/repository/transaction"
	stockService "gudang.GO/service/stock"
)

func stockTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Temp file DB so concurrent transactions share the same database;
	// pragmas go in the DSN so every pooled connection gets them.
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("stock_service_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	dsn := tmpFile + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Category{},
		&entity.Item{},
		&entity.Transaction{},
		&entity.TransactionItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedItem(t *testing.T, db *gorm.DB, nama string, stock int) entity.Item {
	t.Helper()
	cat := entity.Category{Nama: "Alat Kantor"}
	if err := db.Where("nama = ?", cat.Nama).FirstOrCreate(&cat).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	it := entity.Item{Nama: nama, CategoryID: cat.ID, Stock: stock}
	if err := db.Create(&it).Error; err != nil {
		t.Fatalf("create item: %v", err)
	}
	return it
}

func itemStock(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()
	var it entity.Item
	if err := db.First(&it, id).Error; err != nil {
		t.Fatalf("reload item %d: %v", id, err)
	}
	return it.Stock
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestExecute_StockIn(t *testing.T) {
	db := stockTestDB(t)
	it := seedItem(t, db, "Kertas A4", 10)
	svc := stockService.NewService(db)

	id, err := svc.Execute(entity.TypeIn, []stockService.Entry{{ItemID: it.ID, Qty: 5}})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if id == 0 {
		t.Error("transaction id not set")
	}
	if got := itemStock(t, db, it.ID); got != 15 {
		t.Errorf("stock = %d, want 15", got)
	}

	repo := transactionRepo.NewTransactionRepository(db)
	header, err := repo.FindByID(id)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if header.Type != entity.TypeIn {
		t.Errorf("type = %q, want in", header.Type)
	}
	lines, err := repo.LineItems(id)
	if err != nil {
		t.Fatalf("LineItems: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("lines = %d, want 1", len(lines))
	}
	if lines[0].StockBefore != 10 || lines[0].StockAfter != 15 {
		t.Errorf("audit = %d->%d, want 10->15", lines[0].StockBefore, lines[0].StockAfter)
	}
}

func TestExecute_StockOut_ExactDrain(t *testing.T) {
	db := stockTestDB(t)
	it := seedItem(t, db, "Spidol", 7)
	svc := stockService.NewService(db)

	if _, err := svc.Execute(entity.TypeOut, []stockService.Entry{{ItemID: it.ID, Qty: 7}}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := itemStock(t, db, it.ID); got != 0 {
		t.Errorf("stock = %d, want 0", got)
	}
}

func TestExecute_InsufficientStock_RollsBackEverything(t *testing.T) {
	db := stockTestDB(t)
	first := seedItem(t, db, "Kertas A4", 10)
	second := seedItem(t, db, "Tinta", 2)
	svc := stockService.NewService(db)

	_, err := svc.Execute(entity.TypeOut, []stockService.Entry{
		{ItemID: first.ID, Qty: 4}, // would succeed alone
		{ItemID: second.ID, Qty: 5},
	})
	var insufficient *stockService.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientStockError", err)
	}
	if insufficient.ItemID != second.ID {
		t.Errorf("offending item = %d, want %d", insufficient.ItemID, second.ID)
	}
	want := fmt.Sprintf("Stock for item \"%d\" is not enough!", second.ID)
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}

	if got := itemStock(t, db, first.ID); got != 10 {
		t.Errorf("first item stock = %d, want 10 (rolled back)", got)
	}
	if got := itemStock(t, db, second.ID); got != 2 {
		t.Errorf("second item stock = %d, want 2 (unchanged)", got)
	}
	if n := countRows(t, db, &entity.Transaction{}); n != 0 {
		t.Errorf("transactions = %d, want 0", n)
	}
	if n := countRows(t, db, &entity.TransactionItem{}); n != 0 {
		t.Errorf("transaction_items = %d, want 0", n)
	}
}

func TestExecute_SameItemEntriesChain(t *testing.T) {
	db := stockTestDB(t)
	it := seedItem(t, db, "Kertas A4", 10)
	svc := stockService.NewService(db)

	id, err := svc.Execute(entity.TypeIn, []stockService.Entry{
		{ItemID: it.ID, Qty: 5},
		{ItemID: it.ID, Qty: 3},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := itemStock(t, db, it.ID); got != 18 {
		t.Errorf("stock = %d, want 18", got)
	}

	lines, err := transactionRepo.NewTransactionRepository(db).LineItems(id)
	if err != nil {
		t.Fatalf("LineItems: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	// Second entry must see the first entry's in-flight update, not the
	// original stock.
	if lines[0].StockBefore != 10 || lines[0].StockAfter != 15 {
		t.Errorf("line 0 = %d->%d, want 10->15", lines[0].StockBefore, lines[0].StockAfter)
	}
	if lines[1].StockBefore != 15 || lines[1].StockAfter != 18 {
		t.Errorf("line 1 = %d->%d, want 15->18", lines[1].StockBefore, lines[1].StockAfter)
	}
}

func TestExecute_UnknownItem_RollsBack(t *testing.T) {
	db := stockTestDB(t)
	svc := stockService.NewService(db)

	_, err := svc.Execute(entity.TypeIn, []stockService.Entry{{ItemID: 9999, Qty: 1}})
	var notFound *stockService.ItemNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want ItemNotFoundError", err)
	}
	if notFound.ItemID != 9999 {
		t.Errorf("item id = %d, want 9999", notFound.ItemID)
	}
	if n := countRows(t, db, &entity.Transaction{}); n != 0 {
		t.Errorf("transactions = %d, want 0 (header rolled back)", n)
	}
}

func TestExecute_NegativeQty_Rejected(t *testing.T) {
	db := stockTestDB(t)
	it := seedItem(t, db, "Kertas A4", 10)
	svc := stockService.NewService(db)

	_, err := svc.Execute(entity.TypeOut, []stockService.Entry{{ItemID: it.ID, Qty: -3}})
	var invalid *stockService.InvalidQuantityError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidQuantityError", err)
	}
	if got := itemStock(t, db, it.ID); got != 10 {
		t.Errorf("stock = %d, want 10 (unchanged)", got)
	}
	if n := countRows(t, db, &entity.Transaction{}); n != 0 {
		t.Errorf("transactions = %d, want 0", n)
	}
}

func TestExecute_InvalidType_Rejected(t *testing.T) {
	db := stockTestDB(t)
	it := seedItem(t, db, "Kertas A4", 10)
	svc := stockService.NewService(db)

	_, err := svc.Execute("sideways", []stockService.Entry{{ItemID: it.ID, Qty: 1}})
	var invalid *stockService.InvalidTypeError
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want InvalidTypeError", err)
	}
}

func TestExecute_ConcurrentOut_Serializes(t *testing.T) {
	db := stockTestDB(t)
	it := seedItem(t, db, "Kertas A4", 5)
	svc := stockService.NewService(db)

	// Combined qty exceeds stock: exactly one of the two concurrent calls
	// may succeed, never both.
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Execute(entity.TypeOut, []stockService.Entry{{ItemID: it.ID, Qty: 3}})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	insufficient := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var e *stockService.InsufficientStockError
		if errors.As(err, &e) {
			insufficient++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || insufficient != 1 {
		t.Fatalf("succeeded = %d, insufficient = %d, want 1 and 1", succeeded, insufficient)
	}
	if got := itemStock(t, db, it.ID); got != 2 {
		t.Errorf("stock = %d, want 2", got)
	}
}
