package service

import (
	"context"

	"github.com/emilythestrangee/game-reviews/backend/internal/models"
	"github.com/emilythestrangee/game-reviews/backend/internal/repository"
)

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	FindAllFunc        func(ctx context.Context, q repository.ReviewQuery) ([]models.ReviewSummary, error)
	FindByIDFunc       func(ctx context.Context, id int) (*models.ReviewDetail, error)
	ExistsFunc         func(ctx context.Context, id int) (bool, error)
	IncrementVotesFunc func(ctx context.Context, id int, inc int) (*models.Review, error)

	calls []string
}

func (m *MockReviewRepository) FindAll(ctx context.Context, q repository.ReviewQuery) ([]models.ReviewSummary, error) {
	m.calls = append(m.calls, "FindAll")
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, q)
	}
	return []models.ReviewSummary{}, nil
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id int) (*models.ReviewDetail, error) {
	m.calls = append(m.calls, "FindByID")
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockReviewRepository) Exists(ctx context.Context, id int) (bool, error) {
	m.calls = append(m.calls, "Exists")
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockReviewRepository) IncrementVotes(ctx context.Context, id int, inc int) (*models.Review, error) {
	m.calls = append(m.calls, "IncrementVotes")
	if m.IncrementVotesFunc != nil {
		return m.IncrementVotesFunc(ctx, id, inc)
	}
	return &models.Review{ReviewID: id, Votes: inc}, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	FindAllFunc func(ctx context.Context) ([]models.Category, error)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []models.Category{{Slug: "euro game"}, {Slug: "dexterity"}}, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	FindAllFunc        func(ctx context.Context) ([]models.User, error)
	UsernameExistsFunc func(ctx context.Context, username string) (bool, error)

	calls []string
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []models.User{}, nil
}

func (m *MockUserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	m.calls = append(m.calls, "UsernameExists")
	if m.UsernameExistsFunc != nil {
		return m.UsernameExistsFunc(ctx, username)
	}
	return true, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	FindByReviewIDFunc func(ctx context.Context, reviewID int) ([]models.Comment, error)
	CreateFunc         func(ctx context.Context, comment *models.Comment) error
	ExistsFunc         func(ctx context.Context, id int) (bool, error)
	DeleteFunc         func(ctx context.Context, id int) error

	calls []string
}

func (m *MockCommentRepository) FindByReviewID(ctx context.Context, reviewID int) ([]models.Comment, error) {
	m.calls = append(m.calls, "FindByReviewID")
	if m.FindByReviewIDFunc != nil {
		return m.FindByReviewIDFunc(ctx, reviewID)
	}
	return []models.Comment{}, nil
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	m.calls = append(m.calls, "Create")
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) Exists(ctx context.Context, id int) (bool, error) {
	m.calls = append(m.calls, "Exists")
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) error {
	m.calls = append(m.calls, "Delete")
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}
