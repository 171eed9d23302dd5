package order

import (
	"errors"

	"gorm.io/gorm"

	"inventory.GO/core/errs"
	entity "inventory.GO/model/entity"
)

type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ExistsByOrderNo reports whether an order number is already taken.
func (r *OrderRepository) ExistsByOrderNo(orderNo uint64) (bool, error) {
	var count int64
	err := r.db.Model(&entity.Order{}).Where("order_no = ?", orderNo).Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) Create(o *entity.Order) error {
	return r.db.Create(o).Error
}

func (r *OrderRepository) FindByOrderNo(orderNo uint64) (*entity.Order, error) {
	var o entity.Order
	err := r.db.Where("order_no = ?", orderNo).First(&o).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("order %d", orderNo)
		}
		return nil, err
	}
	return &o, nil
}

// FindAll returns one page of orders plus the total row count.
func (r *OrderRepository) FindAll(pageNo, pageSize int) ([]entity.Order, int64, error) {
	var total int64
	if err := r.db.Model(&entity.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []entity.Order
	err := r.db.Order("order_no").Offset(pageNo * pageSize).Limit(pageSize).Find(&orders).Error
	return orders, total, err
}

func (r *OrderRepository) Save(o *entity.Order) error {
	return r.db.Save(o).Error
}

func (r *OrderRepository) Delete(o *entity.Order) error {
	return r.db.Delete(o).Error
}
