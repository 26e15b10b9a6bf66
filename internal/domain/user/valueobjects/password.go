package valueobjects

import (
	"fmt"
	"unicode"
)

// Password is a plain-text password that satisfied the registration policy.
// It only exists between form validation and hashing; the hash is what gets
// stored on the user aggregate.
type Password struct {
	value string
}

// NewPassword enforces the password policy: 8 to 128 characters, at least one
// letter and at least one digit.
func NewPassword(value string) (*Password, error) {
	if len(value) < 8 || len(value) > 128 {
		return nil, fmt.Errorf("password must be between 8 and 128 characters")
	}

	var hasLetter, hasDigit bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter {
		return nil, fmt.Errorf("password must contain at least one letter")
	}
	if !hasDigit {
		return nil, fmt.Errorf("password must contain at least one digit")
	}

	return &Password{value: value}, nil
}

func (p *Password) String() string {
	return p.value
}
