package jobs

import (
	"log"

	"inventory.GO/config"
	"inventory.GO/cron"
	stockService "inventory.GO/service/stock"
)

func init() {
	// Nightly drift repair for items.current_stock.
	cron.Register("stockreconcile", "0 3 * * *", StockReconcileJob)
}

// StockReconcileJob recomputes every item's cached stock from the
// transaction log and open orders, repairing and logging any drift.
func StockReconcileJob(args ...string) {
	db, err := config.NewDB()
	if err != nil {
		log.Printf("stock reconcile: db connection failed: %v", err)
		return
	}
	drifts, err := stockService.Reconcile(db)
	if err != nil {
		log.Printf("stock reconcile failed: %v", err)
		return
	}
	if len(drifts) == 0 {
		log.Println("stock reconcile: no drift")
		return
	}
	for _, d := range drifts {
		log.Printf("stock reconcile: item %d (%s) cached=%d derived=%d, repaired",
			d.ItemID, d.Name, d.Cached, d.Derived)
	}
}
