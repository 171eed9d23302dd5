package order

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"inventory.GO/api"
	"inventory.GO/model/dto"
	entity "inventory.GO/model/entity"
)

const (
	testUser = "admin"
	testPass = "secret"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("order_api_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	if err := db.AutoMigrate(
		&entity.Item{},
		&entity.InventoryTransaction{},
		&entity.Order{},
		&entity.StockAudit{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func testServer(t *testing.T, db *gorm.DB) *echo.Echo {
	t.Helper()
	e := echo.New()
	apiGroup := e.Group("/api")
	apiGroup.Use(middleware.BasicAuth(func(user, pass string, c echo.Context) (bool, error) {
		return user == testUser && pass == testPass, nil
	}))
	RegisterOrderRoutes(apiGroup, db)
	return e
}

func doJSON(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(testUser+":"+testPass)))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func seedItem(t *testing.T, db *gorm.DB, stock int) *entity.Item {
	t.Helper()
	item := entity.Item{Name: "Widget", Price: 100, CurrentStock: stock}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	if stock > 0 {
		rec := entity.InventoryTransaction{
			ItemID: item.ID, Qty: stock, Type: entity.TypeTopUp, TransactionDate: time.Now(),
		}
		if err := db.Create(&rec).Error; err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
	return &item
}

func TestOrderAPI_Create(t *testing.T) {
	db := testDB(t)
	e := testServer(t, db)
	item := seedItem(t, db, 10)

	rec := doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderNo": 5001, "itemId": item.ID, "qty": 2, "price": 100,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out dto.OrderDTO
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.OrderNo != 5001 || out.TotalPrice != 200 {
		t.Errorf("created = %+v, want orderNo 5001 total 200", out)
	}

	var got entity.Item
	db.First(&got, item.ID)
	if got.CurrentStock != 8 {
		t.Errorf("stock = %d, want 8", got.CurrentStock)
	}
}

func TestOrderAPI_DuplicateOrderNo_Returns400(t *testing.T) {
	db := testDB(t)
	e := testServer(t, db)
	item := seedItem(t, db, 10)

	body := map[string]interface{}{"orderNo": 5001, "itemId": item.ID, "qty": 2, "price": 100}
	if rec := doJSON(e, http.MethodPost, "/api/orders", body); rec.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", rec.Code)
	}
	rec := doJSON(e, http.MethodPost, "/api/orders", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var errBody api.ErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &errBody)
	if errBody.Code != "INVALID_STATE" {
		t.Errorf("code = %q, want INVALID_STATE", errBody.Code)
	}
}

func TestOrderAPI_MissingOrderNo_Returns400(t *testing.T) {
	db := testDB(t)
	e := testServer(t, db)
	item := seedItem(t, db, 10)

	rec := doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"itemId": item.ID, "qty": 2, "price": 100,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestOrderAPI_InsufficientStock_Returns400(t *testing.T) {
	db := testDB(t)
	e := testServer(t, db)
	item := seedItem(t, db, 1)

	rec := doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderNo": 5001, "itemId": item.ID, "qty": 5, "price": 100,
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var errBody api.ErrorResponse
	json.Unmarshal(rec.Body.Bytes(), &errBody)
	if errBody.Code != "INSUFFICIENT_STOCK" {
		t.Errorf("code = %q, want INSUFFICIENT_STOCK", errBody.Code)
	}
}

func TestOrderAPI_GetAndList(t *testing.T) {
	db := testDB(t)
	e := testServer(t, db)
	item := seedItem(t, db, 10)

	doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderNo": 5001, "itemId": item.ID, "qty": 2, "price": 100,
	})

	rec := doJSON(e, http.MethodGet, "/api/orders/5001", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var out dto.OrderDTO
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.Qty != 2 {
		t.Errorf("qty = %d, want 2", out.Qty)
	}

	rec = doJSON(e, http.MethodGet, "/api/orders", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var page struct {
		Content       []dto.OrderDTO `json:"content"`
		TotalElements int64          `json:"totalElements"`
	}
	json.Unmarshal(rec.Body.Bytes(), &page)
	if len(page.Content) != 1 || page.TotalElements != 1 {
		t.Errorf("page = %+v", page)
	}
}

func TestOrderAPI_Update(t *testing.T) {
	db := testDB(t)
	e := testServer(t, db)
	item := seedItem(t, db, 10)

	doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderNo": 5001, "itemId": item.ID, "qty": 8, "price": 100,
	})
	rec := doJSON(e, http.MethodPut, "/api/orders/5001", map[string]interface{}{
		"itemId": item.ID, "qty": 3, "price": 100,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var out dto.OrderDTO
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out.TotalPrice != 300 {
		t.Errorf("total = %v, want 300", out.TotalPrice)
	}

	var got entity.Item
	db.First(&got, item.ID)
	if got.CurrentStock != 7 {
		t.Errorf("stock = %d, want 7 after shrink", got.CurrentStock)
	}
}

func TestOrderAPI_Delete(t *testing.T) {
	db := testDB(t)
	e := testServer(t, db)
	item := seedItem(t, db, 10)

	doJSON(e, http.MethodPost, "/api/orders", map[string]interface{}{
		"orderNo": 5001, "itemId": item.ID, "qty": 4, "price": 100,
	})
	rec := doJSON(e, http.MethodDelete, "/api/orders/5001", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	var got entity.Item
	db.First(&got, item.ID)
	if got.CurrentStock != 10 {
		t.Errorf("stock = %d, want 10 restored", got.CurrentStock)
	}

	rec = doJSON(e, http.MethodGet, "/api/orders/5001", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestOrderAPI_BadOrderNo_Returns400(t *testing.T) {
	db := testDB(t)
	e := testServer(t, db)

	rec := doJSON(e, http.MethodGet, "/api/orders/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
