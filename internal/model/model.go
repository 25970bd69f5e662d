package model

import (
	"database/sql/driver"
	"time"

	"github.com/pkg/errors"
)

// Book is a catalog entry. ISBN is unique across the catalog and
// immutable after creation.
type Book struct {
	ID     int64  `json:"id" db:"id"`
	Title  string `json:"title" db:"title"`
	Author string `json:"author" db:"author"`
	Isbn   string `json:"isbn" db:"isbn"`
}

// Loan is one lending of one book to one customer. BookID and LoanDate
// are immutable after creation; Returned only ever flips false -> true.
type Loan struct {
	ID            int64  `json:"id" db:"id"`
	BookID        int64  `json:"bookId" db:"book_id"`
	Customer      string `json:"customer" db:"customer"`
	CustomerEmail string `json:"customerEmail,omitempty" db:"customer_email"`
	LoanDate      Date   `json:"loanDate" db:"loan_date"`
	Returned      bool   `json:"returned" db:"returned"`
}

type CreateLoanRequest struct {
	Isbn          string `json:"isbn" validate:"required"`
	Customer      string `json:"customer" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
	LoanDate      Date   `json:"loanDate"`
}

type CreateLoanResponse struct {
	ID int64 `json:"id"`
}

type UpdateLoanRequest struct {
	Returned      *bool   `json:"returned"`
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
}

type CreateBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
	Isbn   string `json:"isbn" validate:"required"`
}

type UpdateBookRequest struct {
	Title  string `json:"title" validate:"required"`
	Author string `json:"author" validate:"required"`
}

// LoanFilter selects loans whose book ISBN equals Isbn or whose customer
// contains Customer (case-insensitive). Empty fields impose no constraint.
type LoanFilter struct {
	Isbn     string
	Customer string
}

type BookFilter struct {
	Title  string
	Author string
	Isbn   string
}

type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

type LoanPage struct {
	Content       []Loan   `json:"content"`
	TotalElements int64    `json:"totalElements"`
	Pageable      Pageable `json:"pageable"`
}

type BookPage struct {
	Content       []Book   `json:"content"`
	TotalElements int64    `json:"totalElements"`
	Pageable      Pageable `json:"pageable"`
}

// Date is a calendar date (no time-of-day) serialized as "2006-01-02".
type Date struct {
	time.Time
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, errors.Wrap(err, "parse date")
	}
	return Date{Time: t}, nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`null`), nil
	}
	return []byte(`"` + d.Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == `null` || s == `""` {
		*d = Date{}
		return nil
	}
	t, err := time.Parse(`"`+time.DateOnly+`"`, s)
	if err != nil {
		return errors.Wrap(err, "parse date")
	}
	*d = Date{Time: t}
	return nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOf(v)
		return nil
	case nil:
		*d = Date{}
		return nil
	default:
		return errors.Errorf("scan date: unsupported type %T", src)
	}
}

func (d Date) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}
