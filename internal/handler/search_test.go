package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmaurer/placedir/internal/service"
)

// ---- GET /search -----------------------------------------------------------

func TestSearch_200(t *testing.T) {
	m := newServerMocks()
	m.ratings.entryRatings = func(_ context.Context) (map[string]float64, error) {
		return map[string]float64{"a": 1.5}, nil
	}
	m.search.search = func(_ context.Context, req service.SearchRequest) (service.SearchResult, error) {
		assert.Equal(t, 0.0, req.Bbox.SouthWest.Lat)
		assert.Equal(t, 10.0, req.Bbox.NorthEast.Lat)
		assert.Equal(t, "cafe", req.Text)
		assert.Equal(t, []string{"solar"}, req.Tags)
		assert.Equal(t, map[string]float64{"a": 1.5}, req.EntryRatings)
		return service.SearchResult{Visible: []string{"a"}, Invisible: []string{}}, nil
	}

	req := httptest.NewRequest(http.MethodGet, "/search?bbox=0,0,10,10&text=cafe&tags=solar", nil)
	rec := httptest.NewRecorder()
	m.handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp service.SearchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"a"}, resp.Visible)
	assert.NotNil(t, resp.Invisible)
}

func TestSearch_CategoriesAbsentVsEmpty(t *testing.T) {
	m := newServerMocks()
	var got []string
	m.search.search = func(_ context.Context, req service.SearchRequest) (service.SearchResult, error) {
		got = req.Categories
		return service.SearchResult{Visible: []string{}, Invisible: []string{}}, nil
	}

	rec := httptest.NewRecorder()
	m.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?bbox=0,0,10,10", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, got, "absent parameter means no category filter")

	rec = httptest.NewRecorder()
	m.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?bbox=0,0,10,10&categories=", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotNil(t, got, "empty parameter filters on the empty set")
	assert.Empty(t, got)

	rec = httptest.NewRecorder()
	m.handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/search?bbox=0,0,10,10&categories=cat1,cat2", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"cat1", "cat2"}, got)
}

func TestSearch_422_BadBbox(t *testing.T) {
	m := newServerMocks()

	for _, bbox := range []string{"", "1,2,3", "a,b,c,d"} {
		req := httptest.NewRequest(http.MethodGet, "/search?bbox="+bbox, nil)
		rec := httptest.NewRecorder()
		m.handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "bbox %q", bbox)
	}
}
