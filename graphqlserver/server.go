package graphqlserver

import (
	"errors"
	"strconv"
	"time"

	_ "embed"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"inventory.GO/core/errs"
	"inventory.GO/model/dto"
	inventoryService "inventory.GO/service/inventory"
	itemService "inventory.GO/service/item"
	orderService "inventory.GO/service/order"
)

//go:embed schema.graphqls
var schema string

// RegisterGraphQLRoutes mounts the read-only GraphQL query surface.
func RegisterGraphQLRoutes(e *echo.Echo, db *gorm.DB) error {
	parsed, err := gql.ParseSchema(schema, &RootResolver{DB: db}, gql.UseFieldResolvers())
	if err != nil {
		return err
	}
	handler := &relay.Handler{Schema: parsed}
	e.POST("/graphql", echo.WrapHandler(handler))
	return nil
}

// RootResolver resolves Query fields; mutations go through the REST API.
type RootResolver struct {
	DB *gorm.DB
}

// --- GraphQL models (field-resolved) ---

type Item struct {
	ID           gql.ID
	Name         string
	Price        float64
	CurrentStock int32
}

type ItemPage struct {
	Content       []Item
	PageNo        int32
	PageSize      int32
	TotalElements int32
	TotalPages    int32
	Last          bool
}

type InventoryTransaction struct {
	ID              gql.ID
	ItemID          gql.ID
	Qty             int32
	Type            string
	TransactionDate string
}

type Order struct {
	OrderNo    gql.ID
	ItemID     gql.ID
	Qty        int32
	Price      float64
	TotalPrice float64
}

func (r *RootResolver) Item(args struct{ ID gql.ID }) (*Item, error) {
	id, err := parseID(string(args.ID))
	if err != nil {
		return nil, err
	}
	d, err := itemService.NewService(r.DB).Get(uint(id))
	if err != nil {
		return nil, nullOnNotFound(err)
	}
	return &Item{
		ID:           gqlID(uint64(d.ID)),
		Name:         d.Name,
		Price:        d.Price,
		CurrentStock: int32(d.CurrentStock),
	}, nil
}

func (r *RootResolver) Items(args struct{ PageSize, CurrentPage *int32 }) (*ItemPage, error) {
	pageSize := int32(10)
	if args.PageSize != nil && *args.PageSize > 0 {
		pageSize = *args.PageSize
	}
	currentPage := int32(1)
	if args.CurrentPage != nil && *args.CurrentPage > 0 {
		currentPage = *args.CurrentPage
	}
	// GraphQL pages are 1-based; the service is 0-based.
	page, err := itemService.NewService(r.DB).List(int(currentPage-1), int(pageSize))
	if err != nil {
		return nil, err
	}
	content := make([]Item, 0)
	if ds, ok := page.Content.([]dto.ItemDTO); ok {
		for _, d := range ds {
			content = append(content, Item{
				ID:           gqlID(uint64(d.ID)),
				Name:         d.Name,
				Price:        d.Price,
				CurrentStock: int32(d.CurrentStock),
			})
		}
	}
	return &ItemPage{
		Content:       content,
		PageNo:        int32(page.PageNo),
		PageSize:      int32(page.PageSize),
		TotalElements: int32(page.TotalElements),
		TotalPages:    int32(page.TotalPages),
		Last:          page.Last,
	}, nil
}

func (r *RootResolver) Inventory(args struct{ ID gql.ID }) (*InventoryTransaction, error) {
	id, err := parseID(string(args.ID))
	if err != nil {
		return nil, err
	}
	d, err := inventoryService.NewService(r.DB).Get(uint(id))
	if err != nil {
		return nil, nullOnNotFound(err)
	}
	return &InventoryTransaction{
		ID:              gqlID(uint64(d.ID)),
		ItemID:          gqlID(uint64(d.ItemID)),
		Qty:             int32(d.Qty),
		Type:            d.Type,
		TransactionDate: d.TransactionDate.Format(time.RFC3339),
	}, nil
}

func (r *RootResolver) Order(args struct{ OrderNo gql.ID }) (*Order, error) {
	orderNo, err := parseID(string(args.OrderNo))
	if err != nil {
		return nil, err
	}
	d, err := orderService.NewService(r.DB).Get(orderNo)
	if err != nil {
		return nil, nullOnNotFound(err)
	}
	return &Order{
		OrderNo:    gqlID(d.OrderNo),
		ItemID:     gqlID(uint64(d.ItemID)),
		Qty:        int32(d.Qty),
		Price:      d.Price,
		TotalPrice: d.TotalPrice,
	}, nil
}

func parseID(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func gqlID(v uint64) gql.ID {
	return gql.ID(strconv.FormatUint(v, 10))
}

// nullOnNotFound turns NotFound into a null field instead of a query error.
func nullOnNotFound(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return nil
	}
	return err
}
