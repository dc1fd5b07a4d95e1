package postgres

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"pet-shop-api/pkg/pagination"
)

// page counts the filtered query, then applies order, limit and offset.
func page(query *gorm.DB, params pagination.Params, sortable map[string]string, fallback string) (*gorm.DB, int64, error) {
	params = params.Normalize()

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return query.
		Order(params.OrderClause(sortable, fallback)).
		Limit(params.Limit).
		Offset(params.Offset()), total, nil
}

// likePattern escapes LIKE wildcards in s and wraps it for a contains match.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

// mustJSON encodes v for jsonb columns written through update maps,
// where the model serializer does not run.
func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
