package models

import "strings"

type User struct {
	ID       string
	Name     string
	Email    string
	IsActive bool
}

// DisplayName is the name shown in the navigation user control. It falls
// back to the email address when the user has no name.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}
	return u.Email
}
