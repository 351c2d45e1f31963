package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"library-backend/services"
)

type BookController struct {
	service *services.LibraryService
}

func NewBookController(service *services.LibraryService) *BookController {
	return &BookController{service: service}
}

func bookIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid book id"})
		return 0, false
	}
	return uint(id), true
}

func (bc *BookController) List(c *gin.Context) {
	books, err := bc.service.ListBooks()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (bc *BookController) Create(c *gin.Context) {
	var input struct {
		Name         string     `json:"name" binding:"required"`
		Author       string     `json:"author" binding:"required"`
		ISBN         int64      `json:"isbn" binding:"required"`
		Publisher    string     `json:"publisher" binding:"required"`
		Category     string     `json:"category"`
		Borrowed     bool       `json:"borrowed"`
		BorrowedDate *time.Time `json:"borrowed_date"`
		AvailableBy  *time.Time `json:"available_by"`
		BorrowedBy   *uint      `json:"borrowed_by"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := bc.service.CreateBook(services.BookInput{
		Name:         input.Name,
		Author:       input.Author,
		ISBN:         input.ISBN,
		Publisher:    input.Publisher,
		Category:     input.Category,
		Borrowed:     input.Borrowed,
		BorrowedDate: input.BorrowedDate,
		AvailableBy:  input.AvailableBy,
		BorrowedBy:   input.BorrowedBy,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, book)
}

func (bc *BookController) Get(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}

	book, err := bc.service.GetBook(id)
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

// Update applies only the fields present in the request body.
func (bc *BookController) Update(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}

	var input struct {
		Name         *string    `json:"name"`
		Author       *string    `json:"author"`
		ISBN         *int64     `json:"isbn"`
		Publisher    *string    `json:"publisher"`
		Category     *string    `json:"category"`
		Borrowed     *bool      `json:"borrowed"`
		BorrowedDate *time.Time `json:"borrowed_date"`
		AvailableBy  *time.Time `json:"available_by"`
		BorrowedBy   *uint      `json:"borrowed_by"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	book, err := bc.service.UpdateBook(id, services.BookPatch{
		Name:         input.Name,
		Author:       input.Author,
		ISBN:         input.ISBN,
		Publisher:    input.Publisher,
		Category:     input.Category,
		Borrowed:     input.Borrowed,
		BorrowedDate: input.BorrowedDate,
		AvailableBy:  input.AvailableBy,
		BorrowedBy:   input.BorrowedBy,
	})
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, book)
}

func (bc *BookController) Delete(c *gin.Context) {
	id, ok := bookIDParam(c)
	if !ok {
		return
	}

	if err := bc.service.DeleteBook(id); err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "book deleted successfully"})
}

// Borrowed lists every book that is out on loan.
func (bc *BookController) Borrowed(c *gin.Context) {
	books, err := bc.service.ListBorrowed()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// Available lists the books a member can borrow right now.
func (bc *BookController) Available(c *gin.Context) {
	books, err := bc.service.ListAvailable()
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

// Filter narrows the catalog by publisher and/or category; omitted query
// parameters are not filtered.
func (bc *BookController) Filter(c *gin.Context) {
	books, err := bc.service.FilterBooks(c.Query("publisher"), c.Query("category"))
	if err != nil {
		renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"books": books})
}
