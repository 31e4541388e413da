package item

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	entity "gudang.GO/model/entity"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// ItemWithCategory is the list row shape: item columns plus the joined
// category name.
type ItemWithCategory struct {
	ID           uint      `json:"id"`
	Nama         string    `json:"nama"`
	CategoryName string    `json:"category_name"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"created_at"`
}

func (r *ItemRepository) Create(it *entity.Item) error {
	return r.db.Create(it).Error
}

func (r *ItemRepository) FindAllWithCategory() ([]ItemWithCategory, error) {
	var rows []ItemWithCategory
	err := r.db.Table("items").
		Select("items.id, items.nama, categories.nama AS category_name, items.stock, items.created_at").
		Joins("INNER JOIN categories ON categories.id = items.category_id").
		Order("items.id").
		Scan(&rows).Error
	return rows, err
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var it entity.Item
	if err := r.db.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// LockForUpdate reads an item's id and stock under an exclusive row lock
// (SELECT ... FOR UPDATE), forcing concurrent transactions on the same item
// to serialize. Must be called with an open transaction handle; the lock is
// held until that transaction commits or rolls back.
func (r *ItemRepository) LockForUpdate(tx *gorm.DB, id uint) (*entity.Item, error) {
	q := tx.Select("id", "stock")
	// sqlite (used by the tests) has no FOR UPDATE; writes serialize on the
	// database write lock instead.
	if tx.Dialector.Name() == "mysql" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var it entity.Item
	if err := q.First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateStock sets the item's stock inside the caller's transaction.
func (r *ItemRepository) UpdateStock(tx *gorm.DB, id uint, stock int) error {
	return tx.Model(&entity.Item{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"stock":      stock,
			"updated_at": time.Now(),
		}).Error
}
