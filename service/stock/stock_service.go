package stock

import (
	"errors"

	"gorm.io/gorm"

	entity "gudang.GO/model/entity"
	itemRepo "gudang.GO/model/repository/item"
	transactionRepo "gudang.GO/model/repository/transaction"
)

// Entry is one (item, quantity) movement inside a stock transaction.
type Entry struct {
	ItemID uint `json:"item_id"`
	Qty    int  `json:"qty"`
}

// Service applies multi-item stock movements as one atomic unit of work:
// either every entry's stock change and audit row commits together with the
// header, or none of it does.
type Service struct {
	items        *itemRepo.ItemRepository
	transactions *transactionRepo.TransactionRepository
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		items:        itemRepo.NewItemRepository(db),
		transactions: transactionRepo.NewTransactionRepository(db),
	}
}

// Execute records one stock transaction and returns its generated id.
//
// Entries are processed strictly in input order; two entries for the same
// item within one call thread the running stock value, because each entry
// re-reads the item under the row lock inside the same transaction. Any
// failure (unknown item, negative qty, insufficient stock, storage error)
// rolls back the header and every earlier entry's writes.
func (s *Service) Execute(typ entity.TransactionType, entries []Entry) (uint, error) {
	if typ != entity.TypeIn && typ != entity.TypeOut {
		return 0, &InvalidTypeError{Type: string(typ)}
	}

	var transactionID uint
	err := s.transactions.RunInTransaction(func(tx *gorm.DB) error {
		id, err := s.transactions.CreateHeader(tx, typ)
		if err != nil {
			return err
		}

		for _, e := range entries {
			if e.Qty < 0 {
				return &InvalidQuantityError{ItemID: e.ItemID, Qty: e.Qty}
			}

			it, err := s.items.LockForUpdate(tx, e.ItemID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &ItemNotFoundError{ItemID: e.ItemID}
				}
				return err
			}

			newStock := it.Stock + e.Qty
			if typ == entity.TypeOut {
				newStock = it.Stock - e.Qty
			}
			if newStock < 0 {
				return &InsufficientStockError{ItemID: e.ItemID}
			}

			if err := s.items.UpdateStock(tx, e.ItemID, newStock); err != nil {
				return err
			}
			if err := s.transactions.CreateLineItem(tx, &entity.TransactionItem{
				TransactionID: id,
				ItemID:        e.ItemID,
				StockBefore:   it.Stock,
				StockAfter:    newStock,
			}); err != nil {
				return err
			}
		}

		transactionID = id
		return nil
	})
	if err != nil {
		return 0, err
	}
	return transactionID, nil
}
