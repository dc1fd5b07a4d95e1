package postgres

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"pet-shop-api/internal/domain/order"
	"pet-shop-api/internal/domain/user"
	"pet-shop-api/internal/infrastructure/database/postgres/models"
)

func TestLikePatternEscapesWildcards(t *testing.T) {
	assert.Equal(t, "%dog%", likePattern(" dog "))
	assert.Equal(t, `%50\% off\_now%`, likePattern("50% off_now"))
}

func TestMustJSON(t *testing.T) {
	id := uuid.MustParse("8f0a3c1e-2b7d-4d55-9a3e-0c9f5b7e1a22")
	got := mustJSON([]order.LineItem{{Product: id, Quantity: 2}})
	assert.JSONEq(t, `[{"uuid":"8f0a3c1e-2b7d-4d55-9a3e-0c9f5b7e1a22","quantity":2}]`, got)
}

func TestChartLabel(t *testing.T) {
	at := time.Date(2024, 3, 7, 14, 0, 0, 0, time.UTC)
	assert.Equal(t, "14:00", chartLabel(at, "hour"))
	assert.Equal(t, "2024-03-07", chartLabel(at, "day"))
	assert.Equal(t, "2024-03", chartLabel(at, "month"))
}

func TestUserRoleMapping(t *testing.T) {
	admin := toUserEntity(&models.UserModel{IsAdmin: true})
	customer := toUserEntity(&models.UserModel{IsAdmin: false})

	assert.Equal(t, user.RoleAdmin, admin.Role)
	assert.Equal(t, user.RoleCustomer, customer.Role)
	assert.True(t, toUserModel(admin).IsAdmin)
	assert.False(t, toUserModel(customer).IsAdmin)
}
