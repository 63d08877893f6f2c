package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youthcup_backend/internal/domain/entity"
	"youthcup_backend/internal/feature/checkout/usecase"
	"youthcup_backend/internal/shared/testdb"
)

func TestOrderGorm_FindAll_NewestFirstWithRelations(t *testing.T) {
	db := testdb.Open(t, &entity.User{}, &entity.Product{}, &entity.Order{})
	repo := NewOrderGorm(db)
	ctx := context.Background()

	user := &entity.User{Name: "Ana", Email: "ana@example.com", Password: "x", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(user).Error)
	product := &entity.Product{Name: "Scarf", Description: "Wool", Price: 12.5, Category: "accessories", Quantity: 3}
	require.NoError(t, db.Create(product).Error)

	older := &entity.Order{UserID: user.ID, ProductID: product.ID, Price: 10, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &entity.Order{UserID: user.ID, ProductID: product.ID, Price: 12.5}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	orders, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, newer.ID, orders[0].ID)
	assert.Equal(t, older.ID, orders[1].ID)
	require.NotNil(t, orders[0].User)
	assert.Equal(t, "Ana", orders[0].User.Name)
	require.NotNil(t, orders[0].Product)
	assert.Equal(t, "Scarf", orders[0].Product.Name)
}

func TestOrderGorm_FindUser(t *testing.T) {
	db := testdb.Open(t, &entity.User{})
	repo := NewOrderGorm(db)
	ctx := context.Background()

	user := &entity.User{Name: "Ana", Email: "ana@example.com", Password: "x", Role: entity.RoleCustomer}
	require.NoError(t, db.Create(user).Error)

	got, err := repo.FindUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", got.Email)

	_, err = repo.FindUser(ctx, user.ID+1)
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}
