package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"crudapi/internal/http/mocks"
	"crudapi/internal/resource"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type gadget struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

var gadgetKind = resource.Kind[gadget]{
	Name:  "gadget",
	Field: "label",
	ID:    func(g gadget) int64 { return g.ID },
	Text:  func(g gadget) string { return g.Label },
	Fields: resource.NewFields[gadget]().
		Register("id", resource.Ordered(func(g gadget) int64 { return g.ID })).
		Register("label", resource.Ordered(func(g gadget) string { return g.Label })),
}

var testGadget = gadget{ID: 3, Label: "Sprocket"}

func newTestMux(t *testing.T) (*http.ServeMux, *mocks.MockResourceService[gadget]) {
	t.Helper()
	ctrl := gomock.NewController(t)
	service := mocks.NewMockResourceService[gadget](ctrl)
	handler := NewResourceHandler[gadget](service, gadgetKind, slog.New(slog.DiscardHandler))
	mux := http.NewServeMux()
	handler.Register(mux, "/api/gadgets")
	return mux, service
}

func serve(mux *http.ServeMux, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, target, reader))
	return w
}

func TestResourceHandler_List(t *testing.T) {
	mux, service := newTestMux(t)

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "success - empty list",
			target: "/api/gadgets",
			setupMock: func() {
				service.EXPECT().GetAll(gomock.Any()).Return([]gadget{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "[]",
		},
		{
			name:   "success - with gadgets",
			target: "/api/gadgets",
			setupMock: func() {
				service.EXPECT().GetAll(gomock.Any()).Return([]gadget{testGadget}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":3,"label":"Sprocket"}]`,
		},
		{
			name:   "field query searches",
			target: "/api/gadgets?label=rock",
			setupMock: func() {
				service.EXPECT().SearchByField(gomock.Any(), "rock").Return([]gadget{testGadget}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":3,"label":"Sprocket"}]`,
		},
		{
			name:   "empty field query still searches",
			target: "/api/gadgets?label=",
			setupMock: func() {
				service.EXPECT().SearchByField(gomock.Any(), "").Return([]gadget{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "[]",
		},
		{
			name:   "search route",
			target: "/api/gadgets/search?label=Spr",
			setupMock: func() {
				service.EXPECT().SearchByField(gomock.Any(), "Spr").Return([]gadget{testGadget}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"id":3,"label":"Sprocket"}]`,
		},
		{
			name:   "server error",
			target: "/api/gadgets",
			setupMock: func() {
				service.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := serve(mux, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestResourceHandler_Lookup(t *testing.T) {
	mux, service := newTestMux(t)

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "found",
			target: "/api/gadgets/lookup?label=Sprocket",
			setupMock: func() {
				service.EXPECT().GetByFieldExact(gomock.Any(), "Sprocket").Return(testGadget, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/api/gadgets/lookup?label=sprocket",
			setupMock: func() {
				service.EXPECT().GetByFieldExact(gomock.Any(), "sprocket").Return(gadget{}, resource.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "missing parameter",
			target:         "/api/gadgets/lookup",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := serve(mux, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestResourceHandler_Sort(t *testing.T) {
	mux, service := newTestMux(t)

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "descending",
			target: "/api/gadgets/sort?sortBy=label&sortOrder=DESC",
			setupMock: func() {
				service.EXPECT().SortBy(gomock.Any(), "label", resource.Desc).Return([]gadget{testGadget}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "anything else is ascending",
			target: "/api/gadgets/sort?sortBy=id&sortOrder=sideways",
			setupMock: func() {
				service.EXPECT().SortBy(gomock.Any(), "id", resource.Asc).Return([]gadget{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown field",
			target: "/api/gadgets/sort?sortBy=colour",
			setupMock: func() {
				service.EXPECT().SortBy(gomock.Any(), "colour", resource.Asc).Return(nil, resource.ErrUnknownField)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := serve(mux, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestResourceHandler_Get(t *testing.T) {
	mux, service := newTestMux(t)

	tests := []struct {
		name           string
		target         string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "success",
			target: "/api/gadgets/3",
			setupMock: func() {
				service.EXPECT().GetByID(gomock.Any(), int64(3)).Return(testGadget, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "not found",
			target: "/api/gadgets/99",
			setupMock: func() {
				service.EXPECT().GetByID(gomock.Any(), int64(99)).Return(gadget{}, resource.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-integer id",
			target:         "/api/gadgets/abc",
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := serve(mux, http.MethodGet, tt.target, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestResourceHandler_Create(t *testing.T) {
	mux, service := newTestMux(t)

	t.Run("created", func(t *testing.T) {
		service.EXPECT().
			Add(gomock.Any(), gadget{Label: "Cog"}).
			Return(gadget{ID: 8, Label: "Cog"}, nil)

		w := serve(mux, http.MethodPost, "/api/gadgets", `{"label":"Cog"}`)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/gadgets/8", w.Header().Get("Location"))
		var got gadget
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, gadget{ID: 8, Label: "Cog"}, got)
	})

	t.Run("invalid body", func(t *testing.T) {
		w := serve(mux, http.MethodPost, "/api/gadgets", `{"label":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("body over limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/gadgets", strings.NewReader(`{"label":"`+strings.Repeat("x", 64)+`"}`))
		r.Body = http.MaxBytesReader(w, r.Body, 16)
		mux.ServeHTTP(w, r)
		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})
}

func TestResourceHandler_Update(t *testing.T) {
	mux, service := newTestMux(t)

	tests := []struct {
		name           string
		target         string
		body           string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "success",
			target: "/api/gadgets/3",
			body:   `{"id":3,"label":"Flywheel"}`,
			setupMock: func() {
				service.EXPECT().GetByID(gomock.Any(), int64(3)).Return(testGadget, nil)
				service.EXPECT().Update(gomock.Any(), gadget{ID: 3, Label: "Flywheel"}).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "id mismatch",
			target:         "/api/gadgets/5",
			body:           `{"id":7,"label":"X"}`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "not found",
			target: "/api/gadgets/42",
			body:   `{"id":42,"label":"X"}`,
			setupMock: func() {
				service.EXPECT().GetByID(gomock.Any(), int64(42)).Return(gadget{}, resource.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid body",
			target:         "/api/gadgets/3",
			body:           `not json`,
			setupMock:      func() {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "store error",
			target: "/api/gadgets/3",
			body:   `{"id":3,"label":"X"}`,
			setupMock: func() {
				service.EXPECT().GetByID(gomock.Any(), int64(3)).Return(testGadget, nil)
				service.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errors.New("locked"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := serve(mux, http.MethodPut, tt.target, tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestResourceHandler_Delete(t *testing.T) {
	mux, service := newTestMux(t)

	tests := []struct {
		name           string
		method         string
		target         string
		setupMock      func()
		expectedStatus int
	}{
		{
			name:   "success",
			method: http.MethodDelete,
			target: "/api/gadgets/3",
			setupMock: func() {
				service.EXPECT().GetByID(gomock.Any(), int64(3)).Return(testGadget, nil)
				service.EXPECT().Delete(gomock.Any(), int64(3)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "not found",
			method: http.MethodDelete,
			target: "/api/gadgets/4",
			setupMock: func() {
				service.EXPECT().GetByID(gomock.Any(), int64(4)).Return(gadget{}, resource.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "delete all",
			method: http.MethodDelete,
			target: "/api/gadgets",
			setupMock: func() {
				service.EXPECT().DeleteAll(gomock.Any()).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "method not allowed",
			method:         http.MethodPatch,
			target:         "/api/gadgets/3",
			setupMock:      func() {},
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			w := serve(mux, tt.method, tt.target, "")

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
