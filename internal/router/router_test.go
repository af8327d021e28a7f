package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/bralash/rants-api/internal/errors"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = ErrorHandler
	return e
}

func TestErrorHandler_CanonicalEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "not found", err: apperrors.ErrNotFound, wantStatus: http.StatusNotFound, wantMessage: "resource not found"},
		{name: "forbidden", err: apperrors.ErrForbidden, wantStatus: http.StatusForbidden, wantMessage: "forbidden"},
		{name: "rate limited", err: apperrors.ErrRateLimited, wantStatus: http.StatusTooManyRequests, wantMessage: "too many requests"},
		{name: "echo 404 passthrough", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantMessage: "Not Found"},
		{name: "plain error hidden", err: assertErr("boom"), wantStatus: http.StatusInternalServerError, wantMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			e.GET("/boom", func(c echo.Context) error {
				return tt.err
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp apperrors.ErrorResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "error", resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

type assertErr string

func (e assertErr) Error() string { return string(e) }

func TestErrorHandler_ValidationFields(t *testing.T) {
	type payload struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
	}

	e := newTestEcho()
	e.POST("/form", func(c echo.Context) error {
		var p payload
		if err := c.Bind(&p); err != nil {
			return err
		}
		if err := c.Validate(&p); err != nil {
			return err
		}
		return c.NoContent(http.StatusOK)
	})

	body := `{"email":"not-an-email","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/form", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp apperrors.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Fields, "Email")
	assert.Contains(t, resp.Fields, "Password")
}

func TestErrorHandler_HeadRequestHasNoBody(t *testing.T) {
	e := newTestEcho()
	e.HEAD("/missing", func(c echo.Context) error {
		return apperrors.ErrNotFound
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}
