package valueobjects

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// usernameRegex limits usernames to letters, digits and @.+-_.
var usernameRegex = regexp.MustCompile(`^[\pL\pN@.+\-_]+$`)

// Username is a unique, NFC-normalized user handle.
type Username struct {
	value string
}

// NewUsername validates and normalizes a raw username. Normalization to NFC
// keeps visually identical handles from occupying distinct unique-index slots.
func NewUsername(value string) (*Username, error) {
	normalized := norm.NFC.String(strings.TrimSpace(value))

	if normalized == "" {
		return nil, fmt.Errorf("username cannot be empty")
	}
	if len(normalized) > 64 {
		return nil, fmt.Errorf("username cannot exceed 64 characters")
	}
	if !usernameRegex.MatchString(normalized) {
		return nil, fmt.Errorf("username may only contain letters, digits and @.+-_")
	}

	return &Username{value: normalized}, nil
}

func (u *Username) String() string {
	return u.value
}

func (u *Username) Equals(other *Username) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.value == other.value
}
