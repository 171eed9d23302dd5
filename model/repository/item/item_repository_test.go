package item

import (
	"errors"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"inventory.GO/core/errs"
	entity "inventory.GO/model/entity"
)

func testDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.Item{},
		&entity.InventoryTransaction{},
		&entity.Order{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateAndFindByID(t *testing.T) {
	repo := NewItemRepository(testDB(t))

	item := entity.Item{Name: "Widget", Price: 9.99}
	if err := repo.Create(&item); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID == 0 {
		t.Error("ID not set after Create")
	}

	found, err := repo.FindByID(item.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Name != "Widget" {
		t.Errorf("Name = %q, want Widget", found.Name)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo := NewItemRepository(testDB(t))
	_, err := repo.FindByID(999)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFindAll_Pages(t *testing.T) {
	repo := NewItemRepository(testDB(t))
	for i := 0; i < 5; i++ {
		if err := repo.Create(&entity.Item{Name: "Item"}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	items, total, err := repo.FindAll(1, 2)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(items) != 2 {
		t.Errorf("page length = %d, want 2", len(items))
	}

	tail, _, err := repo.FindAll(2, 2)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(tail) != 1 {
		t.Errorf("tail page length = %d, want 1", len(tail))
	}
}

func TestCalculateStock(t *testing.T) {
	db := testDB(t)
	repo := NewItemRepository(db)

	item := entity.Item{Name: "Widget"}
	if err := repo.Create(&item); err != nil {
		t.Fatalf("Create: %v", err)
	}

	for _, rec := range []entity.InventoryTransaction{
		{ItemID: item.ID, Qty: 10, Type: entity.TypeTopUp, TransactionDate: time.Now()},
		{ItemID: item.ID, Qty: 4, Type: entity.TypeWithdrawal, TransactionDate: time.Now()},
	} {
		rec := rec
		if err := db.Create(&rec).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	if err := db.Create(&entity.Order{OrderNo: 1, ItemID: item.ID, Qty: 3, Price: 1, TotalPrice: 3}).Error; err != nil {
		t.Fatalf("seed order: %v", err)
	}

	stock, err := repo.CalculateStock(item.ID)
	if err != nil {
		t.Fatalf("CalculateStock: %v", err)
	}
	if stock != 3 {
		t.Errorf("stock = %d, want 3 (10 - 4 - 3)", stock)
	}
}

func TestCalculateStock_NoRows(t *testing.T) {
	repo := NewItemRepository(testDB(t))
	item := entity.Item{Name: "Widget"}
	repo.Create(&item)

	stock, err := repo.CalculateStock(item.ID)
	if err != nil {
		t.Fatalf("CalculateStock: %v", err)
	}
	if stock != 0 {
		t.Errorf("stock = %d, want 0", stock)
	}
}

func TestSearchByName(t *testing.T) {
	repo := NewItemRepository(testDB(t))
	for _, n := range []string{"Red Widget", "Blue Widget", "Gadget"} {
		repo.Create(&entity.Item{Name: n})
	}

	found, err := repo.SearchByName("Widget", 10)
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(found) != 2 {
		t.Errorf("found %d, want 2", len(found))
	}

	one, err := repo.SearchByName("Widget", 1)
	if err != nil {
		t.Fatalf("SearchByName: %v", err)
	}
	if len(one) != 1 {
		t.Errorf("limited found %d, want 1", len(one))
	}
}

func TestDelete(t *testing.T) {
	repo := NewItemRepository(testDB(t))
	item := entity.Item{Name: "Widget"}
	repo.Create(&item)

	if err := repo.Delete(&item); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(item.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
}
