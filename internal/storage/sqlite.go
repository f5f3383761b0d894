package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogworks/post-service/internal/models"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore mirrors PostgresStore for local development and tests.
type SQLiteStore struct {
	db *sql.DB
}

// Fixed-width so that textual ORDER BY created_at matches chronological
// order; variable-width fractions would sort "00.1" after "00.15".
const sqliteTimeLayout = "2006-01-02 15:04:05.000000000"

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Initialize() error {
	query := `CREATE TABLE IF NOT EXISTS blogposts (
        id TEXT PRIMARY KEY,
        title TEXT NOT NULL,
        description TEXT,
        created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
    )`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("error executing query %s: %w", query, err)
	}

	return nil
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "SELECT 1")
	return err
}

func (s *SQLiteStore) SavePost(ctx context.Context, post *models.BlogPost) error {
	query := `
        INSERT INTO blogposts (id, title, description, created_at)
        VALUES (?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            title = excluded.title,
            description = excluded.description
    `

	_, err := s.db.ExecContext(ctx, query,
		post.ID.String(),
		post.Title,
		post.Description,
		post.CreatedAt.UTC().Format(sqliteTimeLayout),
	)

	return err
}

func (s *SQLiteStore) GetPost(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	query := `
        SELECT id, title, description, created_at
        FROM blogposts
        WHERE id = ?
    `

	var (
		rawID     string
		createdAt string
	)

	post := &models.BlogPost{}
	err := s.db.QueryRowContext(ctx, query, id.String()).Scan(
		&rawID,
		&post.Title,
		&post.Description,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	if post.ID, err = uuid.Parse(rawID); err != nil {
		return nil, err
	}

	if post.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *SQLiteStore) ListPosts(ctx context.Context) ([]*models.BlogPost, error) {
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
		var (
			rawID     string
			createdAt string
		)

		post := &models.BlogPost{}
		err := rows.Scan(
			&rawID,
			&post.Title,
			&post.Description,
			&createdAt,
		)

		if err != nil {
			return nil, err
		}

		if post.ID, err = uuid.Parse(rawID); err != nil {
			return nil, err
		}

		if post.CreatedAt, err = parseSQLiteTime(createdAt); err != nil {
			return nil, err
		}

		posts = append(posts, post)
	}

	return posts, rows.Err()
}

func (s *SQLiteStore) DeletePost(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM blogposts WHERE id = ?`, id.String())
	return err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// parseSQLiteTime handles both the values written by SavePost and the
// CURRENT_TIMESTAMP default format.
func parseSQLiteTime(value string) (time.Time, error) {
	if t, err := time.Parse(sqliteTimeLayout, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
