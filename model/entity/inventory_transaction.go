package entity

import "time"

// Inventory transaction types. A TopUp adds to stock, a Withdrawal subtracts.
const (
	TypeTopUp      = "TopUp"
	TypeWithdrawal = "Withdrawal"
)

// InventoryTransaction represents the inventory_transactions table: one
// signed stock movement against an item.
type InventoryTransaction struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemID          uint      `gorm:"column:item_id;not null;index" json:"itemId"`
	Item            *Item     `gorm:"foreignKey:ItemID" json:"-"`
	Qty             int       `gorm:"column:qty;not null" json:"qty"`
	Type            string    `gorm:"column:type;type:varchar(16);not null" json:"type"`
	TransactionDate time.Time `gorm:"column:transaction_date;not null" json:"transactionDate"`
}

func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}

// IsTopUp reports whether the transaction adds stock.
func (t *InventoryTransaction) IsTopUp() bool {
	return t.Type == TypeTopUp
}

// ValidType reports whether a type string is one of the two known kinds.
func ValidType(t string) bool {
	return t == TypeTopUp || t == TypeWithdrawal
}
