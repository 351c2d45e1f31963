package services

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrBookNotFound    = errors.New("book not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrDuplicateISBN   = errors.New("isbn already in catalog")
	ErrAlreadyBorrowed = errors.New("book is already borrowed")
	ErrNotBorrowed     = errors.New("book is not borrowed")
	ErrInvalidDuration = errors.New("loan duration must be positive")
)
