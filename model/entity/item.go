package entity

// Item represents the items table. CurrentStock is a denormalized copy of
// the transaction-log sum, written only by the stock service.
type Item struct {
	ID           uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price        float64 `gorm:"column:price;not null;default:0" json:"price"`
	CurrentStock int     `gorm:"column:current_stock;not null;default:0" json:"currentStock"`
}

func (Item) TableName() string {
	return "items"
}
