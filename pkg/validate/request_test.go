package validate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/GlebRadaev/digimon/pkg/paginate"
	"github.com/GlebRadaev/digimon/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		ok           bool
		expectedErrs []string
	}{
		{name: "Valid", body: `{"name":"potion","count":1,"price":3.5}`, ok: true},
		{name: "Malformed JSON", body: `{"name":`, expectedErrs: []string{"body"}},
		{name: "Empty body", body: ``, expectedErrs: []string{"body"}},
		{name: "Unknown field", body: `{"name":"potion","count":1,"price":3,"admin":true}`, expectedErrs: []string{"body"}},
		{name: "Failed rules", body: `{"name":"potion","count":0}`, expectedErrs: []string{"count", "price"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst payload
			ok := DecodeRequest(w, r, &dst)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, "potion", dst.Name)
				return
			}
			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			var body utils.Response
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, "validation failed", body.Detail)
			for _, field := range tt.expectedErrs {
				assert.Contains(t, body.Errors, field)
			}
			assert.Len(t, body.Errors, len(tt.expectedErrs))
		})
	}
}

func TestPathIDAndPage(t *testing.T) {
	newRequest := func(target, id string) *http.Request {
		r := httptest.NewRequest(http.MethodGet, target, nil)
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", id)
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	w := httptest.NewRecorder()
	id, ok := PathID(w, newRequest("/items/7", "7"))
	assert.True(t, ok)
	assert.Equal(t, 7, id)

	w = httptest.NewRecorder()
	_, ok = PathID(w, newRequest("/items/abc", "abc"))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = httptest.NewRecorder()
	page, ok := Page(w, httptest.NewRequest(http.MethodGet, "/items?page=3", nil))
	assert.True(t, ok)
	assert.Equal(t, 3, page)

	w = httptest.NewRecorder()
	page, ok = Page(w, httptest.NewRequest(http.MethodGet, "/items", nil))
	assert.True(t, ok)
	assert.Equal(t, 1, page)

	w = httptest.NewRecorder()
	_, ok = Page(w, httptest.NewRequest(http.MethodGet, "/items?page=two", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"page"`)

	w = httptest.NewRecorder()
	page, ok = Page(w, httptest.NewRequest(http.MethodGet, "/items?page=-4", nil))
	assert.True(t, ok)
	assert.Equal(t, 1, page)

	w = httptest.NewRecorder()
	tooFar := strconv.Itoa(paginate.MaxPage + 1)
	_, ok = Page(w, httptest.NewRequest(http.MethodGet, "/items?page="+tooFar, nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"page"`)
}
