package pagination

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params are the list query parameters shared by every listing endpoint.
type Params struct {
	Page   int
	Limit  int
	SortBy string
	Desc   bool
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OrderClause returns "column asc|desc" when SortBy is in allowed, else fallback.
// allowed maps public field names to column names.
func (p Params) OrderClause(allowed map[string]string, fallback string) string {
	column, ok := allowed[p.SortBy]
	if !ok {
		return fallback
	}
	if p.Desc {
		return column + " desc"
	}
	return column + " asc"
}

func FromQuery(c *gin.Context) Params {
	p := Params{
		Page:   atoiDefault(c.Query("page"), 1),
		Limit:  atoiDefault(c.Query("limit"), DefaultLimit),
		SortBy: strings.TrimSpace(c.Query("sortBy")),
		Desc:   parseBool(c.Query("desc")),
	}
	return p.Normalize()
}

func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// Page is one page of a listing.
type Page[T any] struct {
	Items []T
	Total int64
	Page  int
	Limit int
}

func NewPage[T any](items []T, total int64, p Params) *Page[T] {
	return &Page[T]{Items: items, Total: total, Page: p.Page, Limit: p.Limit}
}
