package domain

import "time"

// User represents a bot subscriber
type User struct {
	ID         int64
	TelegramID int64
	FirstName  string
	LastName   string
	Username   string
	Language   string
	CreatedAt  time.Time
}

// Profile carries the identity fields the platform reports with every
// inbound update, including its best guess at the user's locale.
type Profile struct {
	TelegramID   int64
	FirstName    string
	LastName     string
	Username     string
	LanguageHint string
}
