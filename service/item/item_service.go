package item

import (
	"gorm.io/gorm"

	"inventory.GO/core/errs"
	"inventory.GO/model/dto"
	entity "inventory.GO/model/entity"
	itemRepo "inventory.GO/model/repository/item"
	stockService "inventory.GO/service/stock"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a new item. An initial currentStock may be supplied (admin
// seeding path); the ledger takes over from there.
func (s *Service) Create(in dto.ItemDTO) (*dto.ItemDTO, error) {
	if in.Name == "" {
		return nil, errs.InvalidArgumentf("item name is required")
	}
	item := entity.Item{
		Name:         in.Name,
		Price:        in.Price,
		CurrentStock: in.CurrentStock,
	}
	if err := itemRepo.NewItemRepository(s.db).Create(&item); err != nil {
		return nil, err
	}
	indexItem(&item)
	out := toDTO(&item)
	return &out, nil
}

func (s *Service) Get(id uint) (*dto.ItemDTO, error) {
	item, err := itemRepo.NewItemRepository(s.db).FindByID(id)
	if err != nil {
		return nil, err
	}
	out := toDTO(item)
	return &out, nil
}

func (s *Service) List(pageNo, pageSize int) (*dto.PageResponse, error) {
	items, total, err := itemRepo.NewItemRepository(s.db).FindAll(pageNo, pageSize)
	if err != nil {
		return nil, err
	}
	content := make([]dto.ItemDTO, 0, len(items))
	for i := range items {
		content = append(content, toDTO(&items[i]))
	}
	page := dto.NewPageResponse(content, pageNo, pageSize, total)
	return &page, nil
}

// Update overwrites name, price and the cached stock. Writing currentStock
// here bypasses the ledger; reconcile reports and repairs any drift this
// introduces.
func (s *Service) Update(id uint, in dto.ItemDTO) (*dto.ItemDTO, error) {
	if in.Name == "" {
		return nil, errs.InvalidArgumentf("item name is required")
	}
	var out dto.ItemDTO
	unlock := stockService.LockItems(id)
	defer unlock()
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := itemRepo.NewItemRepository(tx)
		item, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		item.Name = in.Name
		item.Price = in.Price
		item.CurrentStock = in.CurrentStock
		if err := repo.Save(item); err != nil {
			return err
		}
		indexItem(item)
		out = toDTO(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes an item. Blocked while derived stock is positive.
func (s *Service) Delete(id uint) error {
	unlock := stockService.LockItems(id)
	defer unlock()
	return s.db.Transaction(func(tx *gorm.DB) error {
		repo := itemRepo.NewItemRepository(tx)
		item, err := repo.FindByID(id)
		if err != nil {
			return err
		}
		current, err := repo.CalculateStock(id)
		if err != nil {
			return err
		}
		if current > 0 {
			return errs.InvalidStatef("cannot delete item with existing stock, current stock: %d", current)
		}
		if err := repo.Delete(item); err != nil {
			return err
		}
		deleteItemDoc(id)
		return nil
	})
}

func toDTO(item *entity.Item) dto.ItemDTO {
	return dto.ItemDTO{
		ID:           item.ID,
		Name:         item.Name,
		Price:        item.Price,
		CurrentStock: item.CurrentStock,
	}
}
