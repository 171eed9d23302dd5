package order

import (
	"gorm.io/gorm"

	"inventory.GO/core/errs"
	"inventory.GO/model/dto"
	entity "inventory.GO/model/entity"
	itemRepo "inventory.GO/model/repository/item"
	orderRepo "inventory.GO/model/repository/order"
	stockService "inventory.GO/service/stock"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Get(orderNo uint64) (*dto.OrderDTO, error) {
	o, err := orderRepo.NewOrderRepository(s.db).FindByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}
	out := toDTO(o)
	return &out, nil
}

func (s *Service) List(pageNo, pageSize int) (*dto.PageResponse, error) {
	orders, total, err := orderRepo.NewOrderRepository(s.db).FindAll(pageNo, pageSize)
	if err != nil {
		return nil, err
	}
	content := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		content = append(content, toDTO(&orders[i]))
	}
	page := dto.NewPageResponse(content, pageNo, pageSize, total)
	return &page, nil
}

// Create places an order: an order is a stock withdrawal with a price tag.
// The order number is client-supplied and must be free.
func (s *Service) Create(in dto.OrderDTO) (*dto.OrderDTO, error) {
	if in.OrderNo == 0 {
		return nil, errs.InvalidArgumentf("order number is required")
	}
	if err := validateInput(in); err != nil {
		return nil, err
	}

	var out dto.OrderDTO
	unlock := stockService.LockItems(in.ItemID)
	defer unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders := orderRepo.NewOrderRepository(tx)
		exists, err := orders.ExistsByOrderNo(in.OrderNo)
		if err != nil {
			return err
		}
		if exists {
			return errs.InvalidStatef("order number already exists: %d", in.OrderNo)
		}

		item, err := itemRepo.NewItemRepository(tx).FindByID(in.ItemID)
		if err != nil {
			return err
		}

		ledger := stockService.NewLedger(tx)
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

		if err := ledger.ApplyDelta(item.ID, in.Qty, false, "order:create"); err != nil {
			return err
		}

		o := entity.Order{
			OrderNo:    in.OrderNo,
			ItemID:     item.ID,
			Qty:        in.Qty,
			Price:      in.Price,
			TotalPrice: float64(in.Qty) * in.Price,
		}
		if err := orders.Create(&o); err != nil {
			return err
		}
		out = toDTO(&o)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update recomputes the order against its previous quantity as one net
// delta: growing the order withdraws the difference, shrinking restores it.
// Only the increment is checked against stock, not the full new quantity.
func (s *Service) Update(orderNo uint64, in dto.OrderDTO) (*dto.OrderDTO, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	existing, err := orderRepo.NewOrderRepository(s.db).FindByOrderNo(orderNo)
	if err != nil {
		return nil, err
	}

	var out dto.OrderDTO
	unlock := stockService.LockItems(existing.ItemID, in.ItemID)
	defer unlock()
	err = s.db.Transaction(func(tx *gorm.DB) error {
		orders := orderRepo.NewOrderRepository(tx)
		existing, err := orders.FindByOrderNo(orderNo)
		if err != nil {
			return err
		}
		item, err := itemRepo.NewItemRepository(tx).FindByID(in.ItemID)
		if err != nil {
			return err
		}

		ledger := stockService.NewLedger(tx)
		diff := in.Qty - existing.Qty
		if diff > 0 {
			current, err := ledger.CurrentStock(item.ID)
			if err != nil {
				return err
			}
			if current < diff {
				return &errs.InsufficientStockError{
					ItemName:  item.Name,
					Requested: diff,
					Available: current,
				}
			}
		}
		if diff != 0 {
			qty := diff
			if qty < 0 {
				qty = -qty
			}
			if err := ledger.ApplyDelta(item.ID, qty, diff < 0, "order:update"); err != nil {
				return err
			}
		}

		existing.ItemID = item.ID
		existing.Qty = in.Qty
		existing.Price = in.Price
		existing.TotalPrice = float64(in.Qty) * in.Price
		if err := orders.Save(existing); err != nil {
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

// Delete removes the order and restores its reserved stock.
func (s *Service) Delete(orderNo uint64) error {
	existing, err := orderRepo.NewOrderRepository(s.db).FindByOrderNo(orderNo)
	if err != nil {
		return err
	}

	unlock := stockService.LockItems(existing.ItemID)
	defer unlock()
	return s.db.Transaction(func(tx *gorm.DB) error {
		orders := orderRepo.NewOrderRepository(tx)
		existing, err := orders.FindByOrderNo(orderNo)
		if err != nil {
			return err
		}
		ledger := stockService.NewLedger(tx)
		if err := ledger.ApplyDelta(existing.ItemID, existing.Qty, true, "order:delete"); err != nil {
			return err
		}
		return orders.Delete(existing)
	})
}

func validateInput(in dto.OrderDTO) error {
	if in.Qty <= 0 {
		return errs.InvalidArgumentf("quantity must be greater than 0")
	}
	if in.Price < 0 {
		return errs.InvalidArgumentf("price must not be negative")
	}
	return nil
}

func toDTO(o *entity.Order) dto.OrderDTO {
	return dto.OrderDTO{
		OrderNo:    o.OrderNo,
		ItemID:     o.ItemID,
		Qty:        o.Qty,
		Price:      o.Price,
		TotalPrice: o.TotalPrice,
	}
}
