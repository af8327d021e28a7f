package handler

import (
	"github.com/labstack/echo/v4"
)

// Meta is the pagination block attached to list responses.
type Meta struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	LastPage int   `json:"last_page"`
}

// NewMeta computes pagination metadata for a list response.
func NewMeta(total int64, page, perPage int) Meta {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return Meta{Total: total, Page: page, LastPage: lastPage}
}

// envelope is the success response shape shared by every endpoint.
type envelope struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

func success(c echo.Context, code int, data interface{}) error {
	return c.JSON(code, envelope{Status: "success", Data: data})
}

func successMessage(c echo.Context, code int, message string, data interface{}) error {
	return c.JSON(code, envelope{Status: "success", Message: message, Data: data})
}

func successList(c echo.Context, code int, data interface{}, meta Meta) error {
	return c.JSON(code, envelope{Status: "success", Data: data, Meta: &meta})
}

// page reads the ?page query parameter, defaulting to 1.
func page(c echo.Context) int {
	p := 1
	if err := echo.QueryParamsBinder(c).Int("page", &p).BindError(); err != nil || p < 1 {
		return 1
	}
	return p
}
