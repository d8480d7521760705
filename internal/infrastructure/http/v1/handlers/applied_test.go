package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filterbar/internal/domain/filters"
	"filterbar/internal/i18n"
	"filterbar/internal/infrastructure/http/v1/dto"
	"filterbar/internal/infrastructure/http/v1/middleware"
	"filterbar/internal/registry"
)

func testBundle(t *testing.T) *i18n.Bundle {
	t.Helper()
	b := i18n.DefaultBundle()
	de, err := i18n.NewLocale("de-DE", "02.01.2006", map[string]string{
		"filters.dateRange.onOrBefore": "Am oder vor {date}",
		"filters.dateRange.onOrAfter":  "Am oder nach {date}",
	})
	require.NoError(t, err)
	b.Add(de)
	return b
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg := registry.NewRegistry()
	reg.Register(registry.ListDef{
		Resource: "orders",
		Label:    "Orders",
		Filters: filters.Catalog{
			{
				Key:          "status",
				Label:        "Status",
				OperatorText: "is",
				Kind:         filters.KindSelect,
				Options: []filters.Option{
					filters.PlainOption("open"),
					filters.LabeledOption("closed", "Closed out"),
				},
			},
			{
				Key:    "created",
				Label:  "Created",
				Kind:   filters.KindDateSelector,
				MinKey: "created_min",
				MaxKey: "created_max",
			},
		},
	})

	h := NewAppliedHandler(reg, testBundle(t))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/catalogs/:resource/applied", h.Add)
	r.POST("/catalogs/:resource/applied/remove", h.Remove)
	r.POST("/catalogs/:resource/labels", h.Labels)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, path, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeSet(t *testing.T, w *httptest.ResponseRecorder) dto.FilterSetResponse {
	t.Helper()
	var resp dto.FilterSetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAppliedAdd(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "/catalogs/orders/applied", `{
		"current": [{"key": "status", "value": "open"}],
		"filter": {"key": "status", "value": "closed"}
	}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSet(t, w)

	assert.Equal(t, "orders", resp.Resource)
	require.Len(t, resp.Filters, 2)
	assert.Equal(t, "status-open", resp.Filters[0].ID)
	assert.Equal(t, "status-closed", resp.Filters[1].ID)
	assert.Equal(t, "Status is Closed out", resp.Filters[1].DisplayLabel)
}

func TestAppliedAdd_DuplicateDropped(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "/catalogs/orders/applied", `{
		"current": [{"key": "status", "value": "open"}],
		"filter": {"key": "status", "value": "open"}
	}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSet(t, w)
	assert.Len(t, resp.Filters, 1)
}

func TestAppliedAdd_RejectsUnknownOption(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "/catalogs/orders/applied", `{
		"current": [],
		"filter": {"key": "status", "value": "archived"}
	}`, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_OPTION")
}

func TestAppliedAdd_UnknownResource(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "/catalogs/invoices/applied", `{
		"filter": {"key": "status", "value": "open"}
	}`, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAppliedRemove(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "/catalogs/orders/applied/remove", `{
		"current": [
			{"key": "status", "value": "open"},
			{"key": "created_max", "value": "2020-01-15"}
		],
		"id": "status-open"
	}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSet(t, w)
	require.Len(t, resp.Filters, 1)
	assert.Equal(t, "created_max-2020-01-15", resp.Filters[0].ID)
}

func TestAppliedRemove_AbsentIDIsNoOp(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "/catalogs/orders/applied/remove", `{
		"current": [{"key": "status", "value": "open"}],
		"id": "nothing-here"
	}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSet(t, w)
	assert.Len(t, resp.Filters, 1)
}

func TestAppliedLabels(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, "/catalogs/orders/labels", `{
		"filters": [
			{"key": "status", "value": "closed"},
			{"key": "created_max", "value": "2020-01-15"},
			{"key": "unknown", "value": "raw"}
		]
	}`, nil)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeSet(t, w)

	require.Len(t, resp.Filters, 3)
	assert.Equal(t, "Status is Closed out", resp.Filters[0].DisplayLabel)
	assert.Equal(t, "Created  On or before 1/15/2020", resp.Filters[1].DisplayLabel)
	assert.Equal(t, "raw", resp.Filters[2].DisplayLabel)
	assert.Equal(t, "en-US", resp.Locale)
}

func TestAppliedLabels_LocaleNegotiation(t *testing.T) {
	r := newTestRouter(t)

	body := `{"filters": [{"key": "created_max", "value": "2020-01-15"}]}`

	t.Run("accept-language header", func(t *testing.T) {
		w := doJSON(t, r, "/catalogs/orders/labels", body,
			map[string]string{"Accept-Language": "de-DE, en;q=0.7"})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeSet(t, w)
		assert.Equal(t, "de-DE", resp.Locale)
		assert.Equal(t, "Created  Am oder vor 15.01.2020", resp.Filters[0].DisplayLabel)
	})

	t.Run("query outranks header", func(t *testing.T) {
		w := doJSON(t, r, "/catalogs/orders/labels?locale=de-DE", body,
			map[string]string{"Accept-Language": "en-US"})

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeSet(t, w)
		assert.Equal(t, "de-DE", resp.Locale)
	})
}
