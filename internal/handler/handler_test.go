package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/edmarfarias/library-api/internal/errs"
	"github.com/edmarfarias/library-api/internal/handler"
	"github.com/edmarfarias/library-api/internal/model"
	"github.com/edmarfarias/library-api/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/edmarfarias/library-api/internal/handler/mocks"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return tm
}

func newTestRouter(t *testing.T) (*echo.Echo, *service_mocks.MockLoanService, *service_mocks.MockBookService) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	loanSvc := service_mocks.NewMockLoanService(c)
	bookSvc := service_mocks.NewMockBookService(c)
	h := handler.New(loanSvc, bookSvc, zap.NewExample().Named("test"))

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/loans", h.CreateLoan)
	e.GET("/loans", h.FindLoans)
	e.GET("/loans/:id", h.GetLoan)
	e.PATCH("/loans/:id", h.UpdateLoan)
	e.GET("/books/:id/loans", h.LoansByBook)
	e.POST("/books", h.CreateBook)
	e.GET("/books", h.ListBooks)
	e.GET("/books/:id", h.GetBook)
	e.PUT("/books/:id", h.UpdateBook)
	e.DELETE("/books/:id", h.DeleteBook)
	return e, loanSvc, bookSvc
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, reader)
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)
	return w
}

func TestHandler_CreateLoan(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	tests := []struct {
		name         string
		body         string
		mockBehavior func(loanSvc *service_mocks.MockLoanService)
		response     response
	}{
		{
			name: "ok",
			body: `{"isbn":"1234","customer":"Camila","loanDate":"2024-06-01"}`,
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {
				loanSvc.EXPECT().
					CreateLoan(context.Background(), model.CreateLoanRequest{
						Isbn:     "1234",
						Customer: "Camila",
						LoanDate: model.Date{Time: mustTime(t, "2024-06-01")},
					}).
					Return(model.Loan{
						ID:       1,
						BookID:   1,
						Customer: "Camila",
						LoanDate: model.Date{Time: mustTime(t, "2024-06-01")},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1}`,
			},
		},
		{
			name: "book already loaned",
			body: `{"isbn":"1234","customer":"Ana","loanDate":"2024-06-02"}`,
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {
				loanSvc.EXPECT().
					CreateLoan(context.Background(), gomock.Any()).
					Return(model.Loan{}, errs.ErrBookLoaned)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Book already loaned"}`,
			},
		},
		{
			name: "unknown isbn",
			body: `{"isbn":"9999","customer":"Camila"}`,
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {
				loanSvc.EXPECT().
					CreateLoan(context.Background(), gomock.Any()).
					Return(model.Loan{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "missing customer rejected by validator",
			body:         `{"isbn":"1234"}`,
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name:         "malformed email rejected by validator",
			body:         `{"isbn":"1234","customer":"Camila","customerEmail":"not-an-email"}`,
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "internal error",
			body: `{"isbn":"1234","customer":"Camila"}`,
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {
				loanSvc.EXPECT().
					CreateLoan(context.Background(), gomock.Any()).
					Return(model.Loan{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, loanSvc, _ := newTestRouter(t)
			tt.mockBehavior(loanSvc)

			w := doJSON(e, http.MethodPost, "/loans", tt.body)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_GetLoan(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	tests := []struct {
		name         string
		target       string
		mockBehavior func(loanSvc *service_mocks.MockLoanService)
		response     response
	}{
		{
			name:   "ok",
			target: "/loans/1",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {
				loanSvc.EXPECT().
					GetLoan(context.Background(), int64(1)).
					Return(model.Loan{
						ID:            1,
						BookID:        1,
						Customer:      "Camila",
						CustomerEmail: "camila@example.com",
						LoanDate:      model.Date{Time: mustTime(t, "2024-06-01")},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"bookId":1,"customer":"Camila","customerEmail":"camila@example.com","loanDate":"2024-06-01","returned":false}`,
			},
		},
		{
			name:   "not found",
			target: "/loans/42",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {
				loanSvc.EXPECT().
					GetLoan(context.Background(), int64(42)).
					Return(model.Loan{}, errs.ErrNotFound)
			},
			response: response{
				expectedCode: http.StatusNotFound,
				expectedBody: `{"message":"not found"}`,
			},
		},
		{
			name:         "invalid id",
			target:       "/loans/abc",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"id is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, loanSvc, _ := newTestRouter(t)
			tt.mockBehavior(loanSvc)

			w := doJSON(e, http.MethodGet, tt.target, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_UpdateLoan(t *testing.T) {
	t.Parallel()

	returned := model.Loan{
		ID:       1,
		BookID:   1,
		Customer: "Camila",
		LoanDate: model.Date{Time: mustTime(t, "2024-06-01")},
		Returned: true,
	}

	t.Run("returned true goes through MarkReturned", func(t *testing.T) {
		t.Parallel()
		e, loanSvc, _ := newTestRouter(t)
		loanSvc.EXPECT().
			MarkReturned(context.Background(), int64(1)).
			Return(returned, nil)

		w := doJSON(e, http.MethodPatch, "/loans/1", `{"returned":true}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"id":1,"bookId":1,"customer":"Camila","loanDate":"2024-06-01","returned":true}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("email change goes through UpdateLoan", func(t *testing.T) {
		t.Parallel()
		e, loanSvc, _ := newTestRouter(t)
		updated := returned
		updated.Returned = false
		updated.CustomerEmail = "camila@example.com"
		loanSvc.EXPECT().
			UpdateLoan(context.Background(), model.Loan{ID: 1, CustomerEmail: "camila@example.com"}).
			Return(updated, nil)

		w := doJSON(e, http.MethodPatch, "/loans/1", `{"customerEmail":"camila@example.com"}`)

		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown loan", func(t *testing.T) {
		t.Parallel()
		e, loanSvc, _ := newTestRouter(t)
		loanSvc.EXPECT().
			MarkReturned(context.Background(), int64(42)).
			Return(model.Loan{}, errs.ErrNotFound)

		w := doJSON(e, http.MethodPatch, "/loans/42", `{"returned":true}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, `{"message":"not found"}`, strings.Trim(w.Body.String(), "\n"))
	})
}

func TestHandler_FindLoans(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	tests := []struct {
		name         string
		target       string
		mockBehavior func(loanSvc *service_mocks.MockLoanService)
		response     response
	}{
		{
			name:   "isbn and customer",
			target: "/loans?isbn=1234&customer=Xyz&page=0&size=10",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {
				loanSvc.EXPECT().
					FindLoans(context.Background(), model.LoanFilter{Isbn: "1234", Customer: "Xyz"}, 0, 10).
					Return(model.LoanPage{
						Content: []model.Loan{
							{
								ID:       1,
								BookID:   1,
								Customer: "Camila",
								LoanDate: model.Date{Time: mustTime(t, "2024-06-01")},
							},
						},
						TotalElements: 1,
						Pageable:      model.Pageable{PageNumber: 0, PageSize: 10},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"content":[{"id":1,"bookId":1,"customer":"Camila","loanDate":"2024-06-01","returned":false}],"totalElements":1,"pageable":{"pageNumber":0,"pageSize":10}}`,
			},
		},
		{
			name:   "both filters empty",
			target: "/loans?page=0&size=10",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {
				loanSvc.EXPECT().
					FindLoans(context.Background(), model.LoanFilter{}, 0, 10).
					Return(model.LoanPage{}, errs.ErrEmptyFilter)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"isbn or customer filter is required"}`,
			},
		},
		{
			name:         "zero size",
			target:       "/loans?isbn=1234&size=0",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"size is invalid"}`,
			},
		},
		{
			name:         "negative page",
			target:       "/loans?isbn=1234&page=-1",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
		{
			name:         "size above cap",
			target:       "/loans?isbn=1234&size=1001",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"size is invalid"}`,
			},
		},
		{
			name:         "page above cap",
			target:       "/loans?isbn=1234&page=9223372036854775807",
			mockBehavior: func(loanSvc *service_mocks.MockLoanService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"page is invalid"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, loanSvc, _ := newTestRouter(t)
			tt.mockBehavior(loanSvc)

			w := doJSON(e, http.MethodGet, tt.target, "")

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_LoansByBook(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		e, loanSvc, _ := newTestRouter(t)
		loanSvc.EXPECT().
			LoansByBook(context.Background(), int64(1), 0, 20).
			Return(model.LoanPage{
				Content: []model.Loan{
					{ID: 2, BookID: 1, Customer: "Ana", LoanDate: model.Date{Time: mustTime(t, "2024-06-03")}, Returned: false},
					{ID: 1, BookID: 1, Customer: "Camila", LoanDate: model.Date{Time: mustTime(t, "2024-06-01")}, Returned: true},
				},
				TotalElements: 2,
				Pageable:      model.Pageable{PageNumber: 0, PageSize: 20},
			}, nil)

		w := doJSON(e, http.MethodGet, "/books/1/loans", "")

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t,
			`{"content":[{"id":2,"bookId":1,"customer":"Ana","loanDate":"2024-06-03","returned":false},{"id":1,"bookId":1,"customer":"Camila","loanDate":"2024-06-01","returned":true}],"totalElements":2,"pageable":{"pageNumber":0,"pageSize":20}}`,
			strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("unknown book", func(t *testing.T) {
		t.Parallel()
		e, loanSvc, _ := newTestRouter(t)
		loanSvc.EXPECT().
			LoansByBook(context.Background(), int64(99), 0, 20).
			Return(model.LoanPage{}, errs.ErrNotFound)

		w := doJSON(e, http.MethodGet, "/books/99/loans", "")

		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
