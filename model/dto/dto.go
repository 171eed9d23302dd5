package dto

import "time"

// ItemDTO is the item payload shape.
type ItemDTO struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	CurrentStock int     `json:"currentStock"`
}

// InventoryDTO is the inventory transaction payload shape.
type InventoryDTO struct {
	ID              uint      `json:"id"`
	ItemID          uint      `json:"itemId"`
	Qty             int       `json:"qty"`
	Type            string    `json:"type"`
	TransactionDate time.Time `json:"transactionDate"`
}

// OrderDTO is the order payload shape.
type OrderDTO struct {
	OrderNo    uint64  `json:"orderNo"`
	ItemID     uint    `json:"itemId"`
	Qty        int     `json:"qty"`
	Price      float64 `json:"price"`
	TotalPrice float64 `json:"totalPrice"`
}
