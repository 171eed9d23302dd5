package inventory

import (
	"errors"

	"gorm.io/gorm"

	"inventory.GO/core/errs"
	entity "inventory.GO/model/entity"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) Create(tx *entity.InventoryTransaction) error {
	return r.db.Create(tx).Error
}

func (r *InventoryRepository) FindByID(id uint) (*entity.InventoryTransaction, error) {
	var tx entity.InventoryTransaction
	err := r.db.First(&tx, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("inventory transaction %d", id)
		}
		return nil, err
	}
	return &tx, nil
}

// FindAll returns one page of transactions plus the total row count.
func (r *InventoryRepository) FindAll(pageNo, pageSize int) ([]entity.InventoryTransaction, int64, error) {
	var total int64
	if err := r.db.Model(&entity.InventoryTransaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var txs []entity.InventoryTransaction
	err := r.db.Order("id").Offset(pageNo * pageSize).Limit(pageSize).Find(&txs).Error
	return txs, total, err
}

func (r *InventoryRepository) Save(tx *entity.InventoryTransaction) error {
	return r.db.Save(tx).Error
}

func (r *InventoryRepository) Delete(tx *entity.InventoryTransaction) error {
	return r.db.Delete(tx).Error
}
