package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"inventory.GO/config"
	"inventory.GO/core/errs"
)

// ErrorResponse is the structured error body for business failures.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HandleError maps business errors to HTTP responses. Unknown errors become
// a generic 500 with no internal detail leaked.
func HandleError(c echo.Context, err error) error {
	var ise *errs.InsufficientStockError
	switch {
	case errors.As(err, &ise):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: ise.Error()})
	case errors.Is(err, errs.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidArgument):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_ARGUMENT", Message: err.Error()})
	case errors.Is(err, errs.ErrInvalidState):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_STATE", Message: err.Error()})
	default:
		log.Printf("internal error on %s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Code: "INTERNAL_ERROR", Message: "internal server error"})
	}
}

// BadRequest is the response for malformed payloads and path params.
func BadRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: "INVALID_ARGUMENT", Message: msg})
}

// PageParams reads pageNo/pageSize query params with defaults.
func PageParams(c echo.Context) (pageNo, pageSize int) {
	pageSize = 10
	if config.AppConfig != nil && config.AppConfig.DefaultPageSize > 0 {
		pageSize = config.AppConfig.DefaultPageSize
	}
	if v, err := strconv.Atoi(c.QueryParam("pageNo")); err == nil && v >= 0 {
		pageNo = v
	}
	if v, err := strconv.Atoi(c.QueryParam("pageSize")); err == nil && v > 0 {
		pageSize = v
	}
	return pageNo, pageSize
}

// UintParam parses a numeric path param.
func UintParam(c echo.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}
