package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"library-backend/models"
)

// LibraryService owns all reads and writes against the users and books
// tables. It is constructed once at startup and shared by both API surfaces;
// handlers never touch the database directly.
type LibraryService struct {
	db *gorm.DB
}

func NewLibraryService(db *gorm.DB) *LibraryService {
	return &LibraryService{db: db}
}

// BookInput carries the fields accepted when cataloging a book. The loan
// fields are optional so an administrator can register a book that is already
// out on loan.
type BookInput struct {
	Name         string
	Author       string
	ISBN         int64
	Publisher    string
	Category     string
	Borrowed     bool
	BorrowedDate *time.Time
	AvailableBy  *time.Time
	BorrowedBy   *uint
}

// BookPatch is a partial update: only non-nil fields are applied.
type BookPatch struct {
	Name         *string
	Author       *string
	ISBN         *int64
	Publisher    *string
	Category     *string
	Borrowed     *bool
	BorrowedDate *time.Time
	AvailableBy  *time.Time
	BorrowedBy   *uint
}

// LoanInfo is the projection of a borrowed book shown in the per-user view.
type LoanInfo struct {
	Name         string     `json:"name"`
	ISBN         int64      `json:"isbn"`
	BorrowedDate *time.Time `json:"borrowed_date"`
}

// UserLoans joins a user with the books currently lent to them.
type UserLoans struct {
	ID            uint       `json:"id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	BorrowedBooks []LoanInfo `json:"borrowed_books"`
}

func (s *LibraryService) CreateUser(firstName, lastName, email string) (*models.User, error) {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		UserType:  models.UserTypeMember,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *LibraryService) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *LibraryService) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UsersWithBooks returns every user together with the books lent to them.
func (s *LibraryService) UsersWithBooks() ([]UserLoans, error) {
	var users []models.User
	if err := s.db.Preload("Books").Order("id").Find(&users).Error; err != nil {
		return nil, err
	}

	result := make([]UserLoans, 0, len(users))
	for _, user := range users {
		loans := make([]LoanInfo, 0, len(user.Books))
		for _, book := range user.Books {
			loans = append(loans, LoanInfo{
				Name:         book.Name,
				ISBN:         book.ISBN,
				BorrowedDate: book.BorrowedDate,
			})
		}
		result = append(result, UserLoans{
			ID:            user.ID,
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			Email:         user.Email,
			BorrowedBooks: loans,
		})
	}
	return result, nil
}

func (s *LibraryService) CreateBook(input BookInput) (*models.Book, error) {
	var count int64
	if err := s.db.Model(&models.Book{}).Where("isbn = ?", input.ISBN).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateISBN
	}

	// A pre-set borrower must exist; the loan fields must not dangle.
	if input.BorrowedBy != nil {
		if _, err := s.GetUser(*input.BorrowedBy); err != nil {
			return nil, err
		}
	}

	book := &models.Book{
		Name:         input.Name,
		Author:       input.Author,
		ISBN:         input.ISBN,
		Publisher:    input.Publisher,
		Category:     input.Category,
		Borrowed:     input.Borrowed,
		BorrowedDate: input.BorrowedDate,
		AvailableBy:  input.AvailableBy,
		BorrowedBy:   input.BorrowedBy,
	}
	if err := s.db.Create(book).Error; err != nil {
		return nil, err
	}
	return book, nil
}

func (s *LibraryService) GetBook(id uint) (*models.Book, error) {
	var book models.Book
	if err := s.db.First(&book, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (s *LibraryService) ListBooks() ([]models.Book, error) {
	var books []models.Book
	if err := s.db.Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// UpdateBook applies the supplied fields only.
func (s *LibraryService) UpdateBook(id uint, patch BookPatch) (*models.Book, error) {
	book, err := s.GetBook(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Author != nil {
		updates["author"] = *patch.Author
	}
	if patch.ISBN != nil && *patch.ISBN != book.ISBN {
		var count int64
		if err := s.db.Model(&models.Book{}).
			Where("isbn = ? AND id <> ?", *patch.ISBN, id).
			Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrDuplicateISBN
		}
		updates["isbn"] = *patch.ISBN
	}
	if patch.Publisher != nil {
		updates["publisher"] = *patch.Publisher
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.Borrowed != nil {
		updates["borrowed"] = *patch.Borrowed
	}
	if patch.BorrowedDate != nil {
		updates["borrowed_date"] = *patch.BorrowedDate
	}
	if patch.AvailableBy != nil {
		updates["available_by"] = *patch.AvailableBy
	}
	if patch.BorrowedBy != nil {
		if _, err := s.GetUser(*patch.BorrowedBy); err != nil {
			return nil, err
		}
		updates["borrowed_by"] = *patch.BorrowedBy
	}

	if len(updates) > 0 {
		if err := s.db.Model(book).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.GetBook(id)
}

func (s *LibraryService) DeleteBook(id uint) error {
	res := s.db.Delete(&models.Book{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

// Borrow moves a book from available to borrowed and stamps the loan onto the
// user's display fields. Everything happens in one transaction; a concurrent
// borrower that passed the availability read loses on the guarded update.
func (s *LibraryService) Borrow(bookID uint, email string, days int) (*models.Book, error) {
	var book models.Book
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if book.Borrowed {
			return ErrAlreadyBorrowed
		}

		var user models.User
		if err := tx.First(&user, "email = ?", email).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if days <= 0 {
			return ErrInvalidDuration
		}

		now := time.Now()
		availableBy := now.Add(time.Duration(days) * 24 * time.Hour)

		// Guard against a borrow committed between the read above and this
		// write: first writer wins, everyone else sees zero rows.
		res := tx.Model(&models.Book{}).
			Where("id = ? AND borrowed = ?", bookID, false).
			Updates(map[string]interface{}{
				"borrowed":      true,
				"borrowed_by":   user.ID,
				"borrowed_date": now,
				"available_by":  availableBy,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrAlreadyBorrowed
		}

		if err := tx.Model(&user).Updates(map[string]interface{}{
			"book_borrowed": book.Name,
			"days_to_use":   days,
		}).Error; err != nil {
			return err
		}

		return tx.First(&book, "id = ?", bookID).Error
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Return makes a borrowed book available again, clearing the loan fields on
// the book and the borrower's display fields. Overdue handling, fines and
// renewals are out of scope here.
func (s *LibraryService) Return(bookID uint) (*models.Book, error) {
	var book models.Book
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, "id = ?", bookID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}
		if !book.Borrowed {
			return ErrNotBorrowed
		}

		res := tx.Model(&models.Book{}).
			Where("id = ? AND borrowed = ?", bookID, true).
			Updates(map[string]interface{}{
				"borrowed":      false,
				"borrowed_by":   nil,
				"borrowed_date": nil,
				"available_by":  nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotBorrowed
		}

		// The user's display fields track only the latest loan; clear them
		// only while they still point at this book.
		if book.BorrowedBy != nil {
			if err := tx.Model(&models.User{}).
				Where("id = ? AND book_borrowed = ?", *book.BorrowedBy, book.Name).
				Updates(map[string]interface{}{
					"book_borrowed": nil,
					"days_to_use":   nil,
				}).Error; err != nil {
				return err
			}
		}

		return tx.First(&book, "id = ?", bookID).Error
	})
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (s *LibraryService) ListAvailable() ([]models.Book, error) {
	var books []models.Book
	if err := s.db.Where("borrowed = ?", false).Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

func (s *LibraryService) ListBorrowed() ([]models.Book, error) {
	var books []models.Book
	if err := s.db.Where("borrowed = ?", true).Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// FilterBooks narrows the catalog by the supplied predicates; empty arguments
// are not filtered.
func (s *LibraryService) FilterBooks(publisher, category string) ([]models.Book, error) {
	query := s.db.Model(&models.Book{})
	if publisher != "" {
		query = query.Where("publisher = ?", publisher)
	}
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var books []models.Book
	if err := query.Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// LoansForUser lists the books currently lent to one user.
func (s *LibraryService) LoansForUser(userID uint) ([]models.Book, error) {
	var books []models.Book
	if err := s.db.Where("borrowed_by = ?", userID).Order("id").Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}
