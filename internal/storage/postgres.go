package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/blogworks/post-service/internal/models"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Initialize() error {
	query := `CREATE TABLE IF NOT EXISTS blogposts (
        id UUID PRIMARY KEY,
        title TEXT NOT NULL,
        description TEXT,
        created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("error executing query %s: %w", query, err)
	}

	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "SELECT 1")
	return err
}

func (s *PostgresStore) SavePost(ctx context.Context, post *models.BlogPost) error {
	// Upsert: the conflict branch never touches id or created_at.
	query := `
        INSERT INTO blogposts (id, title, description, created_at)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO UPDATE SET
            title = EXCLUDED.title,
            description = EXCLUDED.description
    `

	_, err := s.db.ExecContext(ctx, query,
		post.ID,
		post.Title,
		post.Description,
		post.CreatedAt,
	)

	return err
}

func (s *PostgresStore) GetPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	query := `
        SELECT id, title, description, created_at
        FROM blogposts
        WHERE id = $1
    `

	post := &models.BlogPost{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID,
		&post.Title,
		&post.Description,
		&post.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return post, nil
}

func (s *PostgresStore) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
	query := `
        SELECT id, title, description, created_at
        FROM blogposts
        ORDER BY created_at
    `

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		post := &models.BlogPost{}
		err := rows.Scan(
			&post.ID,
			&post.Title,
			&post.Description,
			&post.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (s *PostgresStore) DeletePost(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blogposts WHERE id = $1`, id)
	return err
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
