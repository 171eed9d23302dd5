package stock

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"inventory.GO/core/errs"
	entity "inventory.GO/model/entity"
	itemRepo "inventory.GO/model/repository/item"
)

// Ledger is the single writer of items.current_stock. All stock mutations
// in the system funnel through ApplyDelta; managers never touch the cached
// field directly.
type Ledger struct {
	db    *gorm.DB
	items *itemRepo.ItemRepository
}

// NewLedger binds a Ledger to a DB handle. Managers create one per unit of
// work, bound to their transaction handle.
func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db, items: itemRepo.NewItemRepository(db)}
}

// CurrentStock derives an item's stock from the transaction log and open
// order reservations. Used for pre-flight availability checks and for the
// item delete guard; the cached field stays in step via ApplyDelta.
func (l *Ledger) CurrentStock(itemID uint) (int, error) {
	return l.items.CalculateStock(itemID)
}

// ApplyDelta applies a signed stock change to an item's cached stock.
// qty must be positive; isAddition selects the sign. A result below zero
// fails with InsufficientStock and performs no mutation. Every applied
// delta leaves a stock_audits row.
//
// Callers must hold the item lock (LockItems) and run inside a DB
// transaction so the read-modify-write below cannot interleave.
func (l *Ledger) ApplyDelta(itemID uint, qty int, isAddition bool, source string) error {
	item, err := l.items.FindByID(itemID)
	if err != nil {
		return err
	}

	var newStock int
	if isAddition {
		newStock = item.CurrentStock + qty
	} else {
		newStock = item.CurrentStock - qty
		if newStock < 0 {
			return &errs.InsufficientStockError{
				ItemName:  item.Name,
				Requested: qty,
				Available: item.CurrentStock,
			}
		}
	}

	item.CurrentStock = newStock
	if err := l.items.Save(item); err != nil {
		return err
	}

	delta := qty
	if !isAddition {
		delta = -qty
	}
	return l.audit(itemID, delta, newStock, source)
}

// audit appends a stock_audits row for an applied delta.
func (l *Ledger) audit(itemID uint, delta, stockAfter int, source string) error {
	detail, _ := json.Marshal(map[string]interface{}{"source": source})
	row := entity.StockAudit{
		ItemID:     itemID,
		Delta:      delta,
		StockAfter: stockAfter,
		Detail:     datatypes.JSON(detail),
		CreatedAt:  time.Now(),
	}
	return l.db.Create(&row).Error
}
