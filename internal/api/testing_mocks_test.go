package api

import (
	"context"

	"github.com/blogworks/post-service/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Initialize() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStore) SavePost(ctx context.Context, post *models.BlogPost) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockStore) GetPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	args := m.Called(ctx, id)
	var post *models.BlogPost
	if args.Get(0) != nil {
		post = args.Get(0).(*models.BlogPost)
	}
	return post, args.Error(1)
}

func (m *MockStore) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
	args := m.Called(ctx)
	var posts []*models.BlogPost
	if args.Get(0) != nil {
		posts = args.Get(0).([]*models.BlogPost)
	}
	return posts, args.Error(1)
}

func (m *MockStore) DeletePost(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
