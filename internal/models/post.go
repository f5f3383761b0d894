package models

import (
	"time"

	"github.com/google/uuid"
)

// NewBlogPost creates a new post with a generated UUID and creation timestamp.
// ID and CreatedAt are never rewritten after this point.
func NewBlogPost(title string, description *string) *BlogPost {
	return &BlogPost{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	}
}

// ToMap returns the serializable form of the post: the id as a string and
// the description left nil when the column is NULL.
func (p *BlogPost) ToMap() map[string]interface{} {
	var description interface{}
	if p.Description != nil {
		description = *p.Description
	}
	return map[string]interface{}{
		"id":          p.ID.String(),
		"title":       p.Title,
		"description": description,
		"created_at":  p.CreatedAt,
	}
}
