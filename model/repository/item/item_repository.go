package item

import (
	"errors"

	"gorm.io/gorm"

	"inventory.GO/core/errs"
	entity "inventory.GO/model/entity"
)

type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository binds a repository to a DB handle. Pass a transaction
// handle to scope all calls to that transaction.
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(item *entity.Item) error {
	return r.db.Create(item).Error
}

func (r *ItemRepository) FindByID(id uint) (*entity.Item, error) {
	var item entity.Item
	err := r.db.First(&item, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("item %d", id)
		}
		return nil, err
	}
	return &item, nil
}

// FindAll returns one page of items plus the total row count.
func (r *ItemRepository) FindAll(pageNo, pageSize int) ([]entity.Item, int64, error) {
	var total int64
	if err := r.db.Model(&entity.Item{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []entity.Item
	err := r.db.Order("id").Offset(pageNo * pageSize).Limit(pageSize).Find(&items).Error
	return items, total, err
}

func (r *ItemRepository) Save(item *entity.Item) error {
	return r.db.Save(item).Error
}

func (r *ItemRepository) Delete(item *entity.Item) error {
	return r.db.Delete(item).Error
}

// CalculateStock derives current stock for an item: TopUp transactions
// contribute +qty, Withdrawals -qty, and open orders reserve -qty each.
// This is the source of truth; items.current_stock is a cached copy.
func (r *ItemRepository) CalculateStock(itemID uint) (int, error) {
	var stock int
	err := r.db.Raw(`
		SELECT COALESCE((SELECT SUM(CASE WHEN type = ? THEN qty ELSE -qty END)
		                 FROM inventory_transactions WHERE item_id = ?), 0)
		     - COALESCE((SELECT SUM(qty) FROM orders WHERE item_id = ?), 0)
	`, entity.TypeTopUp, itemID, itemID).Scan(&stock).Error
	return stock, err
}

// SearchByName is the SQL fallback for item search when Elasticsearch is
// not configured.
func (r *ItemRepository) SearchByName(q string, limit int) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.Where("name LIKE ?", "%"+q+"%").Order("id").Limit(limit).Find(&items).Error
	return items, err
}
