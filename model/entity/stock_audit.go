package entity

import (
	"time"

	"gorm.io/datatypes"
)

// StockAudit records every stock mutation applied by the stock service:
// the signed delta, the resulting cached stock, and the source operation.
type StockAudit struct {
	ID         uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ItemID     uint           `gorm:"column:item_id;not null;index" json:"itemId"`
	Delta      int            `gorm:"column:delta;not null" json:"delta"`
	StockAfter int            `gorm:"column:stock_after;not null" json:"stockAfter"`
	Detail     datatypes.JSON `gorm:"column:detail" json:"detail,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;not null" json:"createdAt"`
}

func (StockAudit) TableName() string {
	return "stock_audits"
}
