package errs

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConflict is what the store reports when a uniqueness guard fires;
	// the service layer remaps it to the domain error.
	ErrConflict = errors.New("conflict")

	ErrBookLoaned   = errors.New("Book already loaned")
	ErrIsbnExists   = errors.New("ISBN já cadastrado")
	ErrBookHasLoans = errors.New("book has loans")

	ErrEmptyCustomer  = errors.New("customer is required")
	ErrFutureLoanDate = errors.New("loanDate is in the future")
	ErrEmptyFilter    = errors.New("isbn or customer filter is required")
	// legacy wording kept verbatim
	ErrNilLoanID = errors.New("Loan id cant be null.")
)

// IsInvalidArgument reports whether err maps to a caller mistake (HTTP 400).
func IsInvalidArgument(err error) bool {
	for _, e := range []error{
		ErrBookLoaned, ErrIsbnExists,
		ErrEmptyCustomer, ErrFutureLoanDate, ErrEmptyFilter, ErrNilLoanID,
	} {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
