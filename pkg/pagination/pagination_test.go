package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestFromQueryDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products", nil)

	p := FromQuery(c)

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
	assert.False(t, p.Desc)
	assert.Equal(t, 0, p.Offset())
}

func TestFromQueryClamps(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products?page=3&limit=500&sortBy=price&desc=true", nil)

	p := FromQuery(c)

	assert.Equal(t, 3, p.Page)
	assert.Equal(t, MaxLimit, p.Limit)
	assert.Equal(t, 200, p.Offset())
	assert.Equal(t, "price desc", p.OrderClause(map[string]string{"price": "price"}, "id asc"))
}

func TestOrderClauseRejectsUnknownColumn(t *testing.T) {
	p := Params{Page: 1, Limit: 10, SortBy: "password; drop table users"}
	assert.Equal(t, "created_at desc", p.OrderClause(map[string]string{"title": "title"}, "created_at desc"))
}
