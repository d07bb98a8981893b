package utils

import "errors"

// ValidatePassword is the single password policy shared by register,
// reset and change flows.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}
