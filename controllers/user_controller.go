package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"library-backend/services"
)

type UserController struct {
	service *services.LibraryService
}

func NewUserController(service *services.LibraryService) *UserController {
	return &UserController{service: service}
}

// Register creates a user from the public registration form.
func (uc *UserController) Register(c *gin.Context) {
	var input struct {
		FirstName string `json:"first_name" binding:"required"`
		LastName  string `json:"last_name" binding:"required"`
		Email     string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if firstName == "" || lastName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "first_name and last_name cannot be blank"})
		return
	}

	user, err := uc.service.CreateUser(firstName, lastName, strings.TrimSpace(input.Email))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.service.ListUsers()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := uc.service.GetUser(uint(id))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// WithBooks lists every user joined with their borrowed books.
func (uc *UserController) WithBooks(c *gin.Context) {
	result, err := uc.service.UsersWithBooks()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
