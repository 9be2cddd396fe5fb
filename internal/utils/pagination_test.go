package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsFor(query string) PaginationParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/products?"+query, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParams(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  PaginationParams
	}{
		{
			name:  "defaults",
			query: "",
			want:  PaginationParams{Page: 1, Limit: DefaultPageSize, Sort: DefaultSort, Order: "asc"},
		},
		{
			name:  "explicit values",
			query: "page=3&limit=5&sort=price&order=DESC&category=grocery",
			want:  PaginationParams{Page: 3, Limit: 5, Sort: "price", Order: "desc", Category: "grocery"},
		},
		{
			name:  "limit clamped",
			query: "limit=1000",
			want:  PaginationParams{Page: 1, Limit: MaxPageSize, Sort: DefaultSort, Order: "asc"},
		},
		{
			name:  "garbage falls back",
			query: "page=-2&limit=abc&order=sideways",
			want:  PaginationParams{Page: 1, Limit: DefaultPageSize, Sort: DefaultSort, Order: "asc"},
		},
		{
			name:  "q aliases search",
			query: "q=+rice+",
			want:  PaginationParams{Page: 1, Limit: DefaultPageSize, Sort: DefaultSort, Order: "asc", Search: "rice"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paramsFor(tt.query))
		})
	}
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]int{1, 2}, 41, PaginationParams{Page: 2, Limit: 20})
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, int64(41), result.Total)

	empty := CreatePaginationResult([]int{}, 0, PaginationParams{Page: 1, Limit: 20})
	assert.Equal(t, 0, empty.TotalPages)
}

func TestPaginationParams_Offset(t *testing.T) {
	assert.Equal(t, 0, PaginationParams{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 40, PaginationParams{Page: 3, Limit: 20}.Offset())
}
