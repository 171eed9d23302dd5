package order

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"inventory.GO/api"
	itemApi "inventory.GO/api/item"
	"inventory.GO/model/dto"
	orderService "inventory.GO/service/order"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

func RegisterOrderRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := orderService.NewService(db)
	g := apiGroup.Group("/orders")

	g.POST("", func(c echo.Context) error {
		var in dto.OrderDTO
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

	g.GET("/:orderNo", func(c echo.Context) error {
		orderNo, err := orderNoParam(c)
		if err != nil {
			return api.BadRequest(c, "invalid order number")
		}
		out, err := svc.Get(orderNo)
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

	g.PUT("/:orderNo", func(c echo.Context) error {
		orderNo, err := orderNoParam(c)
		if err != nil {
			return api.BadRequest(c, "invalid order number")
		}
		var in dto.OrderDTO
		if err := c.Bind(&in); err != nil {
			return api.BadRequest(c, err.Error())
		}
		prev, _ := svc.Get(orderNo)
		out, err := svc.Update(orderNo, in)
		if err != nil {
			return api.HandleError(c, err)
		}
		if prev != nil {
			itemApi.FlushItemCache(prev.ItemID)
		}
		itemApi.FlushItemCache(out.ItemID)
		return c.JSON(http.StatusOK, out)
	})

	g.DELETE("/:orderNo", func(c echo.Context) error {
		orderNo, err := orderNoParam(c)
		if err != nil {
			return api.BadRequest(c, "invalid order number")
		}
		prev, _ := svc.Get(orderNo)
		if err := svc.Delete(orderNo); err != nil {
			return api.HandleError(c, err)
		}
		if prev != nil {
			itemApi.FlushItemCache(prev.ItemID)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

func orderNoParam(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("orderNo"), 10, 64)
}
