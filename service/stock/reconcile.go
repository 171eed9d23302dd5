package stock

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	entity "inventory.GO/model/entity"
)

// Drift is one item whose cached stock disagrees with the derived value.
type Drift struct {
	ItemID  uint   `mapstructure:"item_id" json:"itemId"`
	Name    string `mapstructure:"name" json:"name"`
	Cached  int    `mapstructure:"cached" json:"cached"`
	Derived int    `mapstructure:"derived" json:"derived"`
}

const driftQuery = `
	SELECT i.id AS item_id, i.name AS name, i.current_stock AS cached,
	       COALESCE(t.total, 0) - COALESCE(o.total, 0) AS derived
	FROM items i
	LEFT JOIN (SELECT item_id, SUM(CASE WHEN type = 'TopUp' THEN qty ELSE -qty END) AS total
	           FROM inventory_transactions GROUP BY item_id) t ON t.item_id = i.id
	LEFT JOIN (SELECT item_id, SUM(qty) AS total
	           FROM orders GROUP BY item_id) o ON o.item_id = i.id
	WHERE i.current_stock <> COALESCE(t.total, 0) - COALESCE(o.total, 0)`

// Reconcile rewrites the cached stock of every drifted item from the
// derived value and returns the drift report. Drift can only enter through
// the admin item-update path; regular mutations keep cache and log in step.
func Reconcile(db *gorm.DB) ([]Drift, error) {
	var rows []map[string]interface{}
	if err := db.Raw(driftQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("drift query: %w", err)
	}

	drifts := make([]Drift, 0, len(rows))
	for _, row := range rows {
		var d Drift
		// Numeric column types differ between mysql and sqlite drivers;
		// decode weakly typed.
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &d,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(row); err != nil {
			return nil, fmt.Errorf("decode drift row: %w", err)
		}
		drifts = append(drifts, d)
	}

	for _, d := range drifts {
		d := d
		unlock := LockItems(d.ItemID)
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&entity.Item{}).Where("id = ?", d.ItemID).
				Update("current_stock", d.Derived).Error; err != nil {
				return err
			}
			ledger := NewLedger(tx)
			return ledger.audit(d.ItemID, d.Derived-d.Cached, d.Derived, "reconcile")
		})
		unlock()
		if err != nil {
			return drifts, fmt.Errorf("reconcile item %d: %w", d.ItemID, err)
		}
	}
	return drifts, nil
}
