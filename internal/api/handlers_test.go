package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	_ "github.com/blogworks/post-service/docs"
	"github.com/blogworks/post-service/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(store *MockStore, method, path, body string) *httptest.ResponseRecorder {
	server := NewServer(0, store)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func samplePost() *models.BlogPost {
	description := "World"
	return &models.BlogPost{
		ID:          uuid.New(),
		Title:       "Hello",
		Description: &description,
		CreatedAt:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestHealthcheck_DatabaseUp(t *testing.T) {
	store := new(MockStore)
	store.On("Ping", mock.Anything).Return(nil)

	w := performRequest(store, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "running smoothly")
	store.AssertExpectations(t)
}

func TestHealthcheck_DatabaseDown(t *testing.T) {
	store := new(MockStore)
	store.On("Ping", mock.Anything).Return(errors.New("connection refused"))

	w := performRequest(store, http.MethodGet, "/healthcheck", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	store.AssertExpectations(t)
}

func TestListItems_Empty(t *testing.T) {
	store := new(MockStore)
	store.On("ListPosts", mock.Anything).Return(nil, nil)

	w := performRequest(store, http.MethodGet, "/items", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestListItems_ReturnsPosts(t *testing.T) {
	store := new(MockStore)
	post := samplePost()
	store.On("ListPosts", mock.Anything).Return([]*models.BlogPost{post}, nil)

	w := performRequest(store, http.MethodGet, "/items", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var items []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, post.ID.String(), items[0]["id"])
	assert.Equal(t, "Hello", items[0]["title"])
	assert.Equal(t, "World", items[0]["description"])
}

func TestListItems_StoreError(t *testing.T) {
	store := new(MockStore)
	store.On("ListPosts", mock.Anything).Return(nil, errors.New("query failed"))

	w := performRequest(store, http.MethodGet, "/items", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetItem_InvalidID_DoesNotHitStore(t *testing.T) {
	store := new(MockStore)

	w := performRequest(store, http.MethodGet, "/items/not-a-uuid", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
}

func TestGetItem_NotFound(t *testing.T) {
	store := new(MockStore)
	store.On("GetPost", mock.Anything, mock.Anything).Return(nil, nil)

	w := performRequest(store, http.MethodGet, "/items/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Item not found")
}

func TestGetItem_Found(t *testing.T) {
	store := new(MockStore)
	post := samplePost()
	store.On("GetPost", mock.Anything, post.ID).Return(post, nil)

	w := performRequest(store, http.MethodGet, "/items/"+post.ID.String(), "")

	assert.Equal(t, http.StatusOK, w.Code)

	var item map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, post.ID.String(), item["id"])
	assert.Equal(t, "Hello", item["title"])
	assert.Equal(t, "World", item["description"])
}

func TestGetItem_StoreError(t *testing.T) {
	store := new(MockStore)
	store.On("GetPost", mock.Anything, mock.Anything).Return(nil, errors.New("query failed"))

	w := performRequest(store, http.MethodGet, "/items/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCreateItem_Success(t *testing.T) {
	store := new(MockStore)
	store.On("SavePost", mock.Anything, mock.MatchedBy(func(p *models.BlogPost) bool {
		return p.ID != uuid.Nil && p.Title == "Hello" && p.Description != nil && *p.Description == "World"
	})).Return(nil)

	w := performRequest(store, http.MethodPost, "/items", `{"name":"Hello","description":"World"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Item created successfully")
	store.AssertExpectations(t)
}

func TestCreateItem_EmptyNameAllowed(t *testing.T) {
	store := new(MockStore)
	store.On("SavePost", mock.Anything, mock.MatchedBy(func(p *models.BlogPost) bool {
		return p.Title == ""
	})).Return(nil)

	w := performRequest(store, http.MethodPost, "/items", `{"name":"","description":"World"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateItem_MissingName(t *testing.T) {
	store := new(MockStore)

	w := performRequest(store, http.MethodPost, "/items", `{"description":"World"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "SavePost", mock.Anything, mock.Anything)
}

func TestCreateItem_StoreError(t *testing.T) {
	store := new(MockStore)
	store.On("SavePost", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	w := performRequest(store, http.MethodPost, "/items", `{"name":"Hello"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestUpdateItem_Success(t *testing.T) {
	store := new(MockStore)
	post := samplePost()
	store.On("GetPost", mock.Anything, post.ID).Return(post, nil)
	store.On("SavePost", mock.Anything, mock.MatchedBy(func(p *models.BlogPost) bool {
		return p.ID == post.ID &&
			p.Title == "Hello2" &&
			p.Description != nil && *p.Description == "World2" &&
			p.CreatedAt.Equal(post.CreatedAt)
	})).Return(nil)

	w := performRequest(store, http.MethodPut, "/items/"+post.ID.String(), `{"name":"Hello2","description":"World2"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Item updated successfully")
	store.AssertExpectations(t)
}

func TestUpdateItem_NotFound(t *testing.T) {
	store := new(MockStore)
	store.On("GetPost", mock.Anything, mock.Anything).Return(nil, nil)

	w := performRequest(store, http.MethodPut, "/items/"+uuid.NewString(), `{"name":"Hello"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	store.AssertNotCalled(t, "SavePost", mock.Anything, mock.Anything)
}

func TestUpdateItem_InvalidID(t *testing.T) {
	store := new(MockStore)

	w := performRequest(store, http.MethodPut, "/items/42", `{"name":"Hello"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
}

func TestUpdateItem_MissingName(t *testing.T) {
	store := new(MockStore)

	w := performRequest(store, http.MethodPut, "/items/"+uuid.NewString(), `{"description":"World"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
}

func TestDeleteItem_Success(t *testing.T) {
	store := new(MockStore)
	post := samplePost()
	store.On("GetPost", mock.Anything, post.ID).Return(post, nil)
	store.On("DeletePost", mock.Anything, post.ID).Return(nil)

	w := performRequest(store, http.MethodDelete, "/items/"+post.ID.String(), "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Item deleted successfully")
	store.AssertExpectations(t)
}

func TestDeleteItem_NotFound(t *testing.T) {
	store := new(MockStore)
	store.On("GetPost", mock.Anything, mock.Anything).Return(nil, nil)

	w := performRequest(store, http.MethodDelete, "/items/"+uuid.NewString(), "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	store.AssertNotCalled(t, "DeletePost", mock.Anything, mock.Anything)
}

func TestSwaggerDocs_Served(t *testing.T) {
	store := new(MockStore)

	w := performRequest(store, http.MethodGet, "/swagger/doc.json", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"swagger": "2.0"`)
	assert.Contains(t, w.Body.String(), "/items/{id}")
}

// Deletes take a UUID like every other route.
func TestDeleteItem_IntegerID_Rejected(t *testing.T) {
	store := new(MockStore)

	w := performRequest(store, http.MethodDelete, "/items/42", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	store.AssertNotCalled(t, "GetPost", mock.Anything, mock.Anything)
}
