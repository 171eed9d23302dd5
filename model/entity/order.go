package entity

// Order represents the orders table. OrderNo is client-supplied and unique.
// TotalPrice is computed at write time (qty * price), never recomputed on read.
type Order struct {
	OrderNo    uint64  `gorm:"column:order_no;primaryKey;autoIncrement:false" json:"orderNo"`
	ItemID     uint    `gorm:"column:item_id;not null;index" json:"itemId"`
	Item       *Item   `gorm:"foreignKey:ItemID" json:"-"`
	Qty        int     `gorm:"column:qty;not null" json:"qty"`
	Price      float64 `gorm:"column:price;not null" json:"price"`
	TotalPrice float64 `gorm:"column:total_price;not null" json:"totalPrice"`
}

func (Order) TableName() string {
	return "orders"
}
