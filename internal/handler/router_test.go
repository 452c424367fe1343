package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"places-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	catalog := new(MockCatalogService)
	catalog.On("Attractions", mock.Anything, mock.Anything).
		Return(models.QueryResult{Places: []models.Place{}, Total: 0}, nil)
	r := NewRouter(NewPlacesHandler(new(MockPlaceSearchService)), NewAttractionsHandler(catalog))

	tests := []struct {
		path   string
		status int
	}{
		{path: "/health", status: http.StatusOK},
		{path: "/api/attractions", status: http.StatusOK},
		{path: "/api/places", status: http.StatusBadRequest},
		{path: "/swagger/doc.json", status: http.StatusOK},
		{path: "/nope", status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		})
	}
}
