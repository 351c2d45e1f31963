package models

import "time"

// Book is a catalog entry. Borrowed, BorrowedBy, BorrowedDate and AvailableBy
// always change together inside one transaction: either all four describe an
// active loan or all four are clear.
type Book struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:80;not null" json:"name"`
	Author       string     `gorm:"size:80;not null" json:"author"`
	ISBN         int64      `gorm:"uniqueIndex;not null" json:"isbn"`
	Publisher    string     `gorm:"size:30;not null" json:"publisher"`
	Category     string     `gorm:"size:30" json:"category"`
	Borrowed     bool       `gorm:"default:false" json:"borrowed"`
	BorrowedDate *time.Time `json:"borrowed_date"`
	AvailableBy  *time.Time `json:"available_by"`
	BorrowedBy   *uint      `json:"borrowed_by"`
	Borrower     *User      `gorm:"foreignKey:BorrowedBy" json:"-"`
}
