package types

import (
	"strings"

	"github.com/google/uuid"
)

// UserID represents a canonical Frontegg user identifier (hyphenated UUID form)
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// Email represents an email address that still needs resolution to a UserID
type Email string

// String returns the string representation
func (e Email) String() string {
	return string(e)
}

// TenantID represents a Frontegg tenant identifier
type TenantID string

// String returns the string representation
func (id TenantID) String() string {
	return string(id)
}

// IsEmpty reports whether no tenant scope is set
func (id TenantID) IsEmpty() bool {
	return id == ""
}

// IsUserID reports whether the token is already a canonical user identifier:
// the 36-character hyphenated UUID form, version 1-5, RFC 4122 variant.
// Anything else is treated as an email candidate.
func IsUserID(token string) bool {
	if len(token) != 36 {
		return false
	}
	u, err := uuid.Parse(token)
	if err != nil {
		return false
	}
	v := int(u.Version())
	return v >= 1 && v <= 5 && u.Variant() == uuid.RFC4122
}

// Token is a single raw entry from the configured user list
type Token string

// String returns the string representation
func (t Token) String() string {
	return string(t)
}

// IsUserID reports whether the token is a canonical user identifier
func (t Token) IsUserID() bool {
	return IsUserID(string(t))
}

// UserID returns the token as a UserID. Only meaningful when IsUserID is true.
func (t Token) UserID() UserID {
	return UserID(t)
}

// Email returns the token as an Email address candidate
func (t Token) Email() Email {
	return Email(t)
}

// ParseTokenList splits a comma-separated user list into tokens,
// trimming whitespace and dropping empty entries
func ParseTokenList(raw string) []Token {
	var tokens []Token
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		tokens = append(tokens, Token(part))
	}
	return tokens
}
