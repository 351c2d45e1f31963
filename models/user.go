package models

// Default user type for registrations; other values are reserved for staff.
const UserTypeMember = 1

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	FirstName    string  `gorm:"size:80;not null" json:"first_name"`
	LastName     string  `gorm:"size:80;not null" json:"last_name"`
	Email        string  `gorm:"size:80;uniqueIndex;not null" json:"email"`
	BookBorrowed *string `gorm:"size:100" json:"book_borrowed"` // title of the most recent loan
	DaysToUse    *int    `json:"days_to_use"`
	UserType     int     `gorm:"default:1" json:"user_type"`

	// Books currently on loan to this user. The book rows are the source of
	// truth for availability; BookBorrowed/DaysToUse only mirror the latest loan.
	Books []Book `gorm:"foreignKey:BorrowedBy" json:"-"`
}
