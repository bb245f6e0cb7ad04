package domain

import "strings"

// Session is a pseudo-identity persisted for a logged-in user. It is not a
// security credential: nothing about it is ever verified.
type Session struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// NameFromEmail derives a display name from the local part of an email
// address (the substring before '@'). Addresses without '@' are returned
// unchanged.
func NameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at >= 0 {
		return email[:at]
	}
	return email
}
