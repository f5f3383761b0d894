package api

import (
	"log"
	"net/http"

	"github.com/blogworks/post-service/internal/models"
	"github.com/blogworks/post-service/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	store storage.Store
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ItemRequest is the create/update body. The wire contract uses "name" for
// what the table stores as "title"; the mapping happens here and nowhere
// else. Name is a pointer so an empty string passes validation but a
// missing field does not.
type ItemRequest struct {
	Name        *string `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func NewHandler(store storage.Store) *Handler {
	return &Handler{store: store}
}

// Healthcheck godoc
// @Summary Check server and database health
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} ErrorResponse
// @Router /healthcheck [get]
func (h *Handler) Healthcheck(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		log.Printf("Healthcheck failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Database unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Server and database are running smoothly",
	})
}

// ListItems godoc
// @Summary List all items
// @Tags items
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /items [get]
func (h *Handler) ListItems(c *gin.Context) {
	posts, err := h.store.ListPosts(c.Request.Context())
	if err != nil {
		log.Printf("Error fetching items: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch items"})
		return
	}

	items := make([]map[string]interface{}, 0, len(posts))
	for _, post := range posts {
		items = append(items, post.ToMap())
	}

	c.JSON(http.StatusOK, items)
}

// GetItem godoc
// @Summary Get a single item by ID
// @Tags items
// @Produce json
// @Param id path string true "Item UUID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [get]
func (h *Handler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
		return
	}

	post, err := h.store.GetPost(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error fetching item %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch item"})
		return
	}

	if post == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		return
	}

	c.JSON(http.StatusOK, post.ToMap())
}

// CreateItem godoc
// @Summary Create a new item
// @Tags items
// @Accept json
// @Produce json
// @Param item body ItemRequest true "Item to create"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items [post]
func (h *Handler) CreateItem(c *gin.Context) {
	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item data"})
		return
	}

	post := models.NewBlogPost(*req.Name, req.Description)

	if err := h.store.SavePost(c.Request.Context(), post); err != nil {
		log.Printf("Error creating item: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, MessageResponse{Message: "Item created successfully"})
}

// UpdateItem godoc
// @Summary Update an existing item
// @Tags items
// @Accept json
// @Produce json
// @Param id path string true "Item UUID"
// @Param item body ItemRequest true "New item fields"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [put]
func (h *Handler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item data"})
		return
	}

	post, err := h.store.GetPost(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error fetching item %s for update: %v", id, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update item"})
		return
	}

	if post == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		return
	}

	// Only title and description change; id and created_at stay as stored.
	post.Title = *req.Name
	post.Description = req.Description

	if err := h.store.SavePost(c.Request.Context(), post); err != nil {
		log.Printf("Error updating item %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update item"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Item updated successfully"})
}

// DeleteItem godoc
// @Summary Delete an item by ID
// @Tags items
// @Produce json
// @Param id path string true "Item UUID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /items/{id} [delete]
func (h *Handler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item ID"})
		return
	}

	post, err := h.store.GetPost(c.Request.Context(), id)
	if err != nil {
		log.Printf("Error fetching item %s for deletion: %v", id, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete item"})
		return
	}

	if post == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Item not found"})
		return
	}

	if err := h.store.DeletePost(c.Request.Context(), id); err != nil {
		log.Printf("Error deleting item %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete item"})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Item deleted successfully"})
}
