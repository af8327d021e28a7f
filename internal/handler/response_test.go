package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name         string
		total        int64
		page         int
		perPage      int
		wantLastPage int
	}{
		{name: "empty set still has one page", total: 0, page: 1, perPage: 15, wantLastPage: 1},
		{name: "exact multiple", total: 30, page: 1, perPage: 15, wantLastPage: 2},
		{name: "partial last page", total: 31, page: 2, perPage: 15, wantLastPage: 3},
		{name: "single item", total: 1, page: 1, perPage: 10, wantLastPage: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.total, tt.page, tt.perPage)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.wantLastPage, meta.LastPage)
		})
	}
}

func TestPageParam(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "missing defaults to 1", query: "", want: 1},
		{name: "explicit page", query: "page=3", want: 3},
		{name: "zero clamps to 1", query: "page=0", want: 1},
		{name: "negative clamps to 1", query: "page=-2", want: 1},
		{name: "garbage defaults to 1", query: "page=abc", want: 1},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
			c := e.NewContext(req, httptest.NewRecorder())
			assert.Equal(t, tt.want, page(c))
		})
	}
}

func TestPathID(t *testing.T) {
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("12")
	id, err := pathID(c)
	assert.NoError(t, err)
	assert.Equal(t, uint(12), id)

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.SetParamNames("id")
	c.SetParamValues("twelve")
	_, err = pathID(c)
	assert.Error(t, err)
}
