package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-backend/models"
)

func TestRegisterUser(t *testing.T) {
	_, public, _ := setupRouters(t)

	resp := doJSON(t, public, http.MethodPost, "/api/public/user", map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	})
	require.Equal(t, http.StatusCreated, resp.Code)

	var user models.User
	decodeJSON(t, resp, &user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, models.UserTypeMember, user.UserType)
	assert.Nil(t, user.BookBorrowed)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	_, public, _ := setupRouters(t)

	body := map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	}
	require.Equal(t, http.StatusCreated, doJSON(t, public, http.MethodPost, "/api/public/user", body).Code)
	assert.Equal(t, http.StatusConflict, doJSON(t, public, http.MethodPost, "/api/public/user", body).Code)
}

func TestRegisterUserMissingFields(t *testing.T) {
	_, public, _ := setupRouters(t)

	resp := doJSON(t, public, http.MethodPost, "/api/public/user", map[string]string{
		"first_name": "Ada",
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestAdminUserListing(t *testing.T) {
	admin, public, _ := setupRouters(t)

	require.Equal(t, http.StatusCreated, doJSON(t, public, http.MethodPost, "/api/public/user", map[string]string{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
	}).Code)

	resp := doJSON(t, admin, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var users []models.User
	decodeJSON(t, resp, &users)
	require.Len(t, users, 1)

	resp = doJSON(t, admin, http.MethodGet, "/api/user/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, admin, http.MethodGet, "/api/user/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
