package emailvalidator

import (
	"regexp"

	"github.com/sahilKumar1122/portfolio-api/internal/apperr"
)

// local@domain.tld, no whitespace and exactly one @ in each part
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func IsValidEmailErr(email string) error {
	ok := IsValidEmail(email)
	if !ok {
		return apperr.ErrInvalidEmail
	}
	return nil
}
