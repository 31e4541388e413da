package entity

import "time"

// Item is a stocked product. Stock is only mutated at creation time and by
// the stock transaction service; it must never be negative once a
// transaction commits.
type Item struct {
	ID         uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nama       string    `gorm:"column:nama;type:varchar(255);not null" json:"nama"`
	CategoryID uint      `gorm:"column:category_id;not null;index" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
	Stock      int       `gorm:"column:stock;not null;default:0" json:"stock"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Item) TableName() string {
	return "items"
}
