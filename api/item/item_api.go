package item

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"inventory.GO/api"
	"inventory.GO/config"
	"inventory.GO/core/cache"
	"inventory.GO/model/dto"
	itemService "inventory.GO/service/item"
)

const cacheTTL = 60 * time.Second

func init() {
	api.RegisterModule(RegisterItemRoutes)
}

func RegisterItemRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := itemService.NewService(db)
	g := apiGroup.Group("/items")

	g.POST("", func(c echo.Context) error {
		var in dto.ItemDTO
		if err := c.Bind(&in); err != nil {
			return api.BadRequest(c, err.Error())
		}
		out, err := svc.Create(in)
		if err != nil {
			return api.HandleError(c, err)
		}
		return c.JSON(http.StatusCreated, out)
	})

	g.GET("/search", func(c echo.Context) error {
		q := c.QueryParam("q")
		if q == "" {
			return api.BadRequest(c, "query parameter q is required")
		}
		_, limit := api.PageParams(c)
		out, err := svc.Search(q, limit)
		if err != nil {
			return api.HandleError(c, err)
		}
		if out == nil {
			out = []dto.ItemDTO{}
		}
		return c.JSON(http.StatusOK, out)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := api.UintParam(c, "id")
		if err != nil {
			return api.BadRequest(c, "invalid item id")
		}
		if cached, ok := cacheGet(id); ok {
			return c.JSON(http.StatusOK, cached)
		}
		out, err := svc.Get(id)
		if err != nil {
			return api.HandleError(c, err)
		}
		cacheSet(out)
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
			return api.BadRequest(c, "invalid item id")
		}
		var in dto.ItemDTO
		if err := c.Bind(&in); err != nil {
			return api.BadRequest(c, err.Error())
		}
		out, err := svc.Update(id, in)
		if err != nil {
			return api.HandleError(c, err)
		}
		FlushItemCache(id)
		return c.JSON(http.StatusOK, out)
	})

	g.DELETE("/:id", func(c echo.Context) error {
		id, err := api.UintParam(c, "id")
		if err != nil {
			return api.BadRequest(c, "invalid item id")
		}
		if err := svc.Delete(id); err != nil {
			return api.HandleError(c, err)
		}
		FlushItemCache(id)
		return c.NoContent(http.StatusNoContent)
	})
}

// --- item read cache: redis when configured, in-process otherwise ---

func cacheKey(id uint) string {
	return cache.MakeKey("item", fmt.Sprintf("%d", id))
}

func cacheGet(id uint) (*dto.ItemDTO, bool) {
	if rc := config.RedisClient; rc != nil {
		raw, err := rc.Get(config.RedisCtx(), cacheKey(id)).Bytes()
		if err != nil {
			return nil, false
		}
		var out dto.ItemDTO
		if json.Unmarshal(raw, &out) != nil {
			return nil, false
		}
		return &out, true
	}
	v, ok := cache.GetInstance().Get(cacheKey(id))
	if !ok {
		return nil, false
	}
	out, ok := v.(dto.ItemDTO)
	if !ok {
		return nil, false
	}
	return &out, true
}

func cacheSet(item *dto.ItemDTO) {
	if item == nil {
		return
	}
	if rc := config.RedisClient; rc != nil {
		raw, _ := json.Marshal(item)
		rc.Set(config.RedisCtx(), cacheKey(item.ID), raw, cacheTTL)
		return
	}
	cache.GetInstance().Set(cacheKey(item.ID), *item, int64(cacheTTL/time.Second), []string{"items"})
}

// FlushItemCache drops an item's cached payload. Every mutation that can
// change an item (including inventory and order writes) must call this.
func FlushItemCache(id uint) {
	if rc := config.RedisClient; rc != nil {
		rc.Del(config.RedisCtx(), cacheKey(id))
		return
	}
	cache.GetInstance().Delete(cacheKey(id))
}
