package inventory

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
	if err := db.AutoMigrate(&entity.Item{}, &entity.InventoryTransaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestCreateAndFindByID(t *testing.T) {
	db := testDB(t)
	repo := NewInventoryRepository(db)

	item := entity.Item{Name: "Widget"}
	db.Create(&item)

	rec := entity.InventoryTransaction{
		ItemID: item.ID, Qty: 5, Type: entity.TypeTopUp, TransactionDate: time.Now(),
	}
	if err := repo.Create(&rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == 0 {
		t.Error("ID not set after Create")
	}

	found, err := repo.FindByID(rec.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Qty != 5 || found.Type != entity.TypeTopUp {
		t.Errorf("found = %+v", found)
	}
}

func TestFindByID_NotFound(t *testing.T) {
	repo := NewInventoryRepository(testDB(t))
	_, err := repo.FindByID(999)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveAndDelete(t *testing.T) {
	db := testDB(t)
	repo := NewInventoryRepository(db)

	item := entity.Item{Name: "Widget"}
	db.Create(&item)
	rec := entity.InventoryTransaction{
		ItemID: item.ID, Qty: 5, Type: entity.TypeTopUp, TransactionDate: time.Now(),
	}
	repo.Create(&rec)

	rec.Qty = 8
	if err := repo.Save(&rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	found, _ := repo.FindByID(rec.ID)
	if found.Qty != 8 {
		t.Errorf("qty = %d, want 8", found.Qty)
	}

	if err := repo.Delete(&rec); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByID(rec.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound after delete", err)
	}
}
