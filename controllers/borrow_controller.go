package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/services"
)

type BorrowController struct {
	service *services.LibraryService
}

func NewBorrowController(service *services.LibraryService) *BorrowController {
	return &BorrowController{service: service}
}

// Borrow lends a book to the user identified by email.
func (bc *BorrowController) Borrow(c *gin.Context) {
	var input struct {
		BookID   uint   `json:"book_id" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		NoOfDays int    `json:"no_of_days" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := bc.service.Borrow(input.BookID, input.Email, input.NoOfDays)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Return makes a borrowed book available again.
func (bc *BorrowController) Return(c *gin.Context) {
	var input struct {
		BookID uint `json:"book_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := bc.service.Return(input.BookID)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}
