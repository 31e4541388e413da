package entity

import "time"

// Category groups items. Deleting a category cascades to its items
// (FK constraint, see migrations).
type Category struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Nama      string    `gorm:"column:nama;type:varchar(255);not null" json:"nama"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}
