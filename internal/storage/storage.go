package storage

import (
	"context"

	"github.com/blogworks/post-service/internal/models"
	"github.com/google/uuid"
)

type Store interface {
	Initialize() error
	Close() error

	// Ping verifies database connectivity with a trivial query.
	Ping(ctx context.Context) error

	// Post operations
	SavePost(ctx context.Context, post *models.BlogPost) error
	GetPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error)
	ListPosts(ctx context.Context) ([]*models.BlogPost, error)
	DeletePost(ctx context.Context, id uuid.UUID) error
}
