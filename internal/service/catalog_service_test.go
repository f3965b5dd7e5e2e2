package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
)

func TestCatalogService_ListCategories(t *testing.T) {
	svc := NewCatalogService(&MockCategoryRepository{}, &MockUserRepository{})

	categories, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "euro game", categories[0].Slug)
}

func TestCatalogService_ListUsers(t *testing.T) {
	users := &MockUserRepository{
		FindAllFunc: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{Username: "mallionaire", Name: "haz"}}, nil
		},
	}
	svc := NewCatalogService(&MockCategoryRepository{}, users)

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.User{{Username: "mallionaire", Name: "haz"}}, got)
}

func TestCatalogService_PropagatesErrors(t *testing.T) {
	boom := errors.New("connection refused")
	svc := NewCatalogService(
		&MockCategoryRepository{FindAllFunc: func(ctx context.Context) ([]models.Category, error) { return nil, boom }},
		&MockUserRepository{FindAllFunc: func(ctx context.Context) ([]models.User, error) { return nil, boom }},
	)

	_, err := svc.ListCategories(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = svc.ListUsers(context.Background())
	assert.ErrorIs(t, err, boom)
}
