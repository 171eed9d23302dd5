package inventory

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"inventory.GO/api"
	itemApi "inventory.GO/api/item"
	"inventory.GO/model/dto"
	inventoryService "inventory.GO/service/inventory"
)

func init() {
	api.RegisterModule(RegisterInventoryRoutes)
}

func RegisterInventoryRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := inventoryService.NewService(db)
	g := apiGroup.Group("/inventory")

	g.POST("", func(c echo.Context) error {
		var in dto.InventoryDTO
		if err := c.Bind(&in); err != nil {
			return api.BadRequest(c, err.Error())
		}
		out, err := svc.Create(in)
		if err != nil {
			return api.HandleError(c, err)
		}
		itemApi.FlushItemCache(out.ItemID)
		return c.JSON(http.StatusCreated, out)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := api.UintParam(c, "id")
		if err != nil {
			return api.BadRequest(c, "invalid inventory id")
		}
		out, err := svc.Get(id)
		if err != nil {
			return api.HandleError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	})

	g.GET("", func(c echo.Context) error {
		pageNo, pageSize := api.PageParams(c)
		out, err := svc.List(pageNo, pageSize)
		if err != nil {
			return api.HandleError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	})

	g.PUT("/:id", func(c echo.Context) error {
		id, err := api.UintParam(c, "id")
		if err != nil {
			return api.BadRequest(c, "invalid inventory id")
		}
		var in dto.InventoryDTO
		if err := c.Bind(&in); err != nil {
			return api.BadRequest(c, err.Error())
		}
		// The record may move between items; the previous item's cache
		// goes stale either way.
		prev, _ := svc.Get(id)
		out, err := svc.Update(id, in)
		if err != nil {
			return api.HandleError(c, err)
		}
		if prev != nil {
			itemApi.FlushItemCache(prev.ItemID)
		}
		itemApi.FlushItemCache(out.ItemID)
		return c.JSON(http.StatusOK, out)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := api.UintParam(c, "id")
		if err != nil {
			return api.BadRequest(c, "invalid inventory id")
		}
		prev, _ := svc.Get(id)
		if err := svc.Delete(id); err != nil {
			return api.HandleError(c, err)
		}
		if prev != nil {
			itemApi.FlushItemCache(prev.ItemID)
		}
		return c.NoContent(http.StatusNoContent)
	})
}
