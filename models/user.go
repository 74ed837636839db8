// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 COVID-19 India Portal API Authors

package models

// User represents an account entity used for authentication.
// Accounts are seeded out-of-band; this service never creates, updates or
// deletes them.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique login identifier presented at /login.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password as stored in
	// the database. Never serialized and never logged.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "user"
}
