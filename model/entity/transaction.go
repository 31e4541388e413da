package entity

import "time"

// TransactionType is the direction of a stock movement.
type TransactionType string

const (
	TypeIn  TransactionType = "in"
	TypeOut TransactionType = "out"
)

// Transaction is an append-only stock movement header. Its line items live in
// transaction_items and are cascade-deleted with it.
type Transaction struct {
	ID        uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Type      TransactionType `gorm:"column:type;type:varchar(10);not null" json:"type"`
	CreatedAt time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// TransactionItem records one item movement inside a transaction, with the
// stock level before and after the movement as an audit trail.
type TransactionItem struct {
	ID            uint         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TransactionID uint         `gorm:"column:transaction_id;not null;index" json:"transaction_id"`
	Transaction   *Transaction `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"-"`
	ItemID        uint         `gorm:"column:item_id;not null;index" json:"item_id"`
	Item          *Item        `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
	StockBefore   int          `gorm:"column:stock_before;not null" json:"stock_before"`
	StockAfter    int          `gorm:"column:stock_after;not null" json:"stock_after"`
	CreatedAt     time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (TransactionItem) TableName() string {
	return "transaction_items"
}
