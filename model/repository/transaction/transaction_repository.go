package transaction

import (
	"gorm.io/gorm"

	entity "gudang.GO/model/entity"
)

type TransactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// RunInTransaction opens a unit of work and invokes fn with the transaction
// handle. It commits when fn returns nil and rolls back every write when fn
// returns an error, which is passed through to the caller.
func (r *TransactionRepository) RunInTransaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

// CreateHeader inserts the transaction header and returns its generated id.
func (r *TransactionRepository) CreateHeader(tx *gorm.DB, typ entity.TransactionType) (uint, error) {
	t := entity.Transaction{Type: typ}
	if err := tx.Create(&t).Error; err != nil {
		return 0, err
	}
	return t.ID, nil
}

func (r *TransactionRepository) CreateLineItem(tx *gorm.DB, line *entity.TransactionItem) error {
	return tx.Create(line).Error
}

func (r *TransactionRepository) FindByID(id uint) (*entity.Transaction, error) {
	var t entity.Transaction
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// LineItems returns the audit rows of one transaction in insertion order.
func (r *TransactionRepository) LineItems(transactionID uint) ([]entity.TransactionItem, error) {
	var lines []entity.TransactionItem
	err := r.db.Where("transaction_id = ?", transactionID).Order("id").Find(&lines).Error
	return lines, err
}
