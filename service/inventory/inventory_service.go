package inventory

import (
	"time"

	"gorm.io/gorm"

	"inventory.GO/core/errs"
	"inventory.GO/model/dto"
	entity "inventory.GO/model/entity"
	invRepo "inventory.GO/model/repository/inventory"
	itemRepo "inventory.GO/model/repository/item"
	stockService "inventory.GO/service/stock"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Get(id uint) (*dto.InventoryDTO, error) {
	tx, err := invRepo.NewInventoryRepository(s.db).FindByID(id)
	if err != nil {
		return nil, err
	}
	out := toDTO(tx)
	return &out, nil
}

func (s *Service) List(pageNo, pageSize int) (*dto.PageResponse, error) {
	txs, total, err := invRepo.NewInventoryRepository(s.db).FindAll(pageNo, pageSize)
	if err != nil {
		return nil, err
	}
	content := make([]dto.InventoryDTO, 0, len(txs))
	for i := range txs {
		content = append(content, toDTO(&txs[i]))
	}
	page := dto.NewPageResponse(content, pageNo, pageSize, total)
	return &page, nil
}

// Create records a stock movement and applies its effect through the ledger.
// Withdrawals are pre-checked against derived stock; the ledger re-validates
// when the delta lands.
func (s *Service) Create(in dto.InventoryDTO) (*dto.InventoryDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var out dto.InventoryDTO
	unlock := stockService.LockItems(in.ItemID)
	defer unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		items := itemRepo.NewItemRepository(tx)
		item, err := items.FindByID(in.ItemID)
		if err != nil {
			return err
		}

		ledger := stockService.NewLedger(tx)
		if in.Type == entity.TypeWithdrawal {
			current, err := ledger.CurrentStock(item.ID)
			if err != nil {
				return err
			}
			if current < in.Qty {
				return &errs.InsufficientStockError{
					ItemName:  item.Name,
					Requested: in.Qty,
					Available: current,
				}
			}
		}

		if err := ledger.ApplyDelta(item.ID, in.Qty, in.Type == entity.TypeTopUp, "inventory:create"); err != nil {
			return err
		}

		rec := entity.InventoryTransaction{
			ItemID:          item.ID,
			Qty:             in.Qty,
			Type:            in.Type,
			TransactionDate: time.Now(),
		}
		if err := invRepo.NewInventoryRepository(tx).Create(&rec); err != nil {
			return err
		}
		out = toDTO(&rec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update reverses the existing transaction's effect, validates the new one,
// and applies it. If the new effect turns out insufficient, the original
// effect is re-applied before the error is raised, so the net state is as
// if the update never started (the surrounding DB transaction rolls back
// as well; the compensation keeps the two-step sequence explicit).
func (s *Service) Update(id uint, in dto.InventoryDTO) (*dto.InventoryDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	// Resolve lock targets before taking locks: the record may move to
	// another item.
	existing, err := invRepo.NewInventoryRepository(s.db).FindByID(id)
	if err != nil {
		return nil, err
	}

	var out dto.InventoryDTO
	unlock := stockService.LockItems(existing.ItemID, in.ItemID)
	defer unlock()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := invRepo.NewInventoryRepository(tx)
		existing, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		items := itemRepo.NewItemRepository(tx)
		item, err := items.FindByID(in.ItemID)
		if err != nil {
			return err
		}

		ledger := stockService.NewLedger(tx)

		// Reverse previous stock operation
		wasAddition := existing.IsTopUp()
		if err := ledger.ApplyDelta(existing.ItemID, existing.Qty, !wasAddition, "inventory:update:reverse"); err != nil {
			return err
		}

		if in.Type == entity.TypeWithdrawal {
			// Post-reversal cached stock is the mid-flight truth here: the
			// log still holds the old record until the save below.
			fresh, err := items.FindByID(item.ID)
			if err != nil {
				return err
			}
			if fresh.CurrentStock < in.Qty {
				// Compensate: undo the reversal before raising the error.
				if err := ledger.ApplyDelta(existing.ItemID, existing.Qty, wasAddition, "inventory:update:compensate"); err != nil {
					return err
				}
				return &errs.InsufficientStockError{
					ItemName:  item.Name,
					Requested: in.Qty,
					Available: fresh.CurrentStock,
				}
			}
		}

		if err := ledger.ApplyDelta(item.ID, in.Qty, in.Type == entity.TypeTopUp, "inventory:update:apply"); err != nil {
			return err
		}

		existing.ItemID = item.ID
		existing.Qty = in.Qty
		existing.Type = in.Type
		existing.TransactionDate = time.Now()
		if err := repo.Save(existing); err != nil {
			return err
		}
		out = toDTO(existing)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete reverses the transaction's effect and removes the record.
func (s *Service) Delete(id uint) error {
	existing, err := invRepo.NewInventoryRepository(s.db).FindByID(id)
	if err != nil {
		return err
	}

	unlock := stockService.LockItems(existing.ItemID)
	defer unlock()
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := invRepo.NewInventoryRepository(tx)
		existing, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		ledger := stockService.NewLedger(tx)
		if err := ledger.ApplyDelta(existing.ItemID, existing.Qty, !existing.IsTopUp(), "inventory:delete"); err != nil {
			return err
		}
		return repo.Delete(existing)
	})
}

func validateInput(in dto.InventoryDTO) error {
	if in.Qty <= 0 {
		return errs.InvalidArgumentf("quantity must be greater than 0")
	}
	if in.Type == "" {
		return errs.InvalidArgumentf("inventory type must be set")
	}
	if !entity.ValidType(in.Type) {
		return errs.InvalidArgumentf("unknown inventory type %q", in.Type)
	}
	return nil
}

func toDTO(tx *entity.InventoryTransaction) dto.InventoryDTO {
	return dto.InventoryDTO{
		ID:              tx.ID,
		ItemID:          tx.ItemID,
		Qty:             tx.Qty,
		Type:            tx.Type,
		TransactionDate: tx.TransactionDate,
	}
}
