// Package inputval validates registration form input.
//
// Validation is pure: given the four raw field values it produces either a
// normalized member record or the list of field errors, with no side effects.
// Duplicate detection is NOT done here; that is the store's job, enforced by
// its unique indexes in the same operation as the insert.
package inputval

import (
	"regexp"

	"github.com/jcollier/memberportal/internal/app/system/normalize"
	"github.com/jcollier/memberportal/internal/domain/models"
)

// Reason classifies why a field failed validation.
type Reason string

const (
	Required      Reason = "required"
	InvalidFormat Reason = "invalid_format"
)

// FieldError describes a single failed field with its user-facing message.
type FieldError struct {
	Field   string
	Reason  Reason
	Message string
}

func (e FieldError) Error() string { return e.Message }

// emailPattern accepts the usual local@domain.tld shape.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// mobileDigits is the required length of a normalized mobile number.
const mobileDigits = 8

// ValidEmail reports whether s (pre- or post-normalization) is a
// plausibly-formed email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(normalize.Email(s))
}

// ValidMobile reports whether s normalizes to exactly 8 digits.
func ValidMobile(s string) bool {
	return len(normalize.Mobile(s)) == mobileDigits
}

// ValidateRegistration checks the four raw form values and returns the
// normalized member record plus any field errors. Field errors are reported
// in form order (name, surname, mobile, email) so the UI can surface them
// consistently. The returned member is only meaningful when errs is empty.
func ValidateRegistration(name, surname, mobile, email string) (models.Member, []FieldError) {
	var errs []FieldError

	m := models.Member{
		Name:    normalize.Name(name),
		Surname: normalize.Name(surname),
		Mobile:  normalize.Mobile(mobile),
		Email:   normalize.Email(email),
	}

	if m.Name == "" {
		errs = append(errs, FieldError{Field: "name", Reason: Required, Message: "Name is required"})
	}
	if m.Surname == "" {
		errs = append(errs, FieldError{Field: "surname", Reason: Required, Message: "Surname is required"})
	}

	switch {
	case normalize.Name(mobile) == "":
		errs = append(errs, FieldError{Field: "mobile", Reason: Required, Message: "Mobile number is required"})
	case len(m.Mobile) != mobileDigits:
		errs = append(errs, FieldError{Field: "mobile", Reason: InvalidFormat, Message: "Invalid mobile number format"})
	}

	switch {
	case m.Email == "":
		errs = append(errs, FieldError{Field: "email", Reason: Required, Message: "Email is required"})
	case !emailPattern.MatchString(m.Email):
		errs = append(errs, FieldError{Field: "email", Reason: InvalidFormat, Message: "Invalid email format"})
	}

	return m, errs
}
