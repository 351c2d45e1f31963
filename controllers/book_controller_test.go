package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/models"
)

func createBook(t *testing.T, admin *gin.Engine, name string, isbn int64, publisher, category string) models.Book {
	t.Helper()
	resp := doJSON(t, admin, http.MethodPost, "/api/books", map[string]interface{}{
		"name":      name,
		"author":    "Some Author",
		"isbn":      isbn,
		"publisher": publisher,
		"category":  category,
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var book models.Book
	decodeJSON(t, resp, &book)
	return book
}

func TestBookCreateAndGet(t *testing.T) {
	admin, _, _ := setupRouters(t)

	book := createBook(t, admin, "Dune", 9780441013593, "Acme", "scifi")
	assert.NotZero(t, book.ID)
	assert.False(t, book.Borrowed)

	resp := doJSON(t, admin, http.MethodGet, "/api/books/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, admin, http.MethodGet, "/api/books/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBookCreateValidation(t *testing.T) {
	admin, _, _ := setupRouters(t)

	// publisher missing
	resp := doJSON(t, admin, http.MethodPost, "/api/books", map[string]interface{}{
		"name":   "Dune",
		"author": "Frank Herbert",
		"isbn":   9780441013593,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestBookCreateDuplicateISBN(t *testing.T) {
	admin, _, _ := setupRouters(t)

	createBook(t, admin, "Dune", 9780441013593, "Acme", "scifi")
	resp := doJSON(t, admin, http.MethodPost, "/api/books", map[string]interface{}{
		"name":      "Dune, Second Copy",
		"author":    "Frank Herbert",
		"isbn":      9780441013593,
		"publisher": "Ace",
	})
	assert.Equal(t, http.StatusConflict, resp.Code)
}

func TestBookPartialUpdate(t *testing.T) {
	admin, _, _ := setupRouters(t)

	book := createBook(t, admin, "Dune", 9780441013593, "Acme", "")

	resp := doJSON(t, admin, http.MethodPut, "/api/books/1", map[string]interface{}{
		"category": "scifi",
	})
	require.Equal(t, http.StatusOK, resp.Code)

	var updated models.Book
	decodeJSON(t, resp, &updated)
	assert.Equal(t, "scifi", updated.Category)
	assert.Equal(t, book.Name, updated.Name)
	assert.Equal(t, book.ISBN, updated.ISBN)
	assert.Equal(t, book.Publisher, updated.Publisher)

	resp = doJSON(t, admin, http.MethodPut, "/api/books/99", map[string]interface{}{
		"category": "scifi",
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestBookDelete(t *testing.T) {
	admin, _, _ := setupRouters(t)

	createBook(t, admin, "Dune", 9780441013593, "Acme", "")

	resp := doJSON(t, admin, http.MethodDelete, "/api/books/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, admin, http.MethodGet, "/api/books/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, admin, http.MethodDelete, "/api/books/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestPublicCatalogFilter(t *testing.T) {
	admin, public, _ := setupRouters(t)

	createBook(t, admin, "Dune", 1, "Acme", "scifi")
	createBook(t, admin, "Hyperion", 2, "Acme", "scifi")
	createBook(t, admin, "Emma", 3, "Other", "classic")

	resp := doJSON(t, public, http.MethodGet, "/api/public/filter?publisher=Acme", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var out struct {
		Books []models.Book `json:"books"`
	}
	decodeJSON(t, resp, &out)
	names := []string{}
	for _, b := range out.Books {
		names = append(names, b.Name)
	}
	assert.ElementsMatch(t, []string{"Dune", "Hyperion"}, names)

	resp = doJSON(t, public, http.MethodGet, "/api/public/filter?publisher=Acme&category=classic", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeJSON(t, resp, &out)
	assert.Empty(t, out.Books)
}
