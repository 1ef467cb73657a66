package gateway

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/school-library-go/library/features/command/approveloan"
	"github.com/AntonStoeckl/school-library-go/library/features/command/handoverbook"
	"github.com/AntonStoeckl/school-library-go/library/features/command/rejectloan"
	"github.com/AntonStoeckl/school-library-go/library/features/command/requestloan"
	"github.com/AntonStoeckl/school-library-go/library/features/command/returnloan"
	"github.com/AntonStoeckl/school-library-go/library/features/query/loans"
	"github.com/AntonStoeckl/school-library-go/library/features/query/studentloans"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

func (s *Server) requestLoan(c echo.Context) error {
	studentID, err := accountID(c)
	if err != nil {
		return err
	}

	var req requestLoanRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	loanID, err := newID(req.ID)
	if err != nil {
		return err
	}

	bookID, err := uuid.Parse(req.BookID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "book_id must be a uuid")
	}

	result, err := s.handlers.RequestLoan.Handle(
		c.Request().Context(),
		requestloan.BuildCommand(loanID, bookID, studentID, s.now()),
	)
	if err != nil {
		return err
	}

	return created(c, result.Idempotent, "loan requested", loanID)
}

func (s *Server) myLoans(c echo.Context) error {
	studentID, err := accountID(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.StudentLoans.Handle(c.Request().Context(), studentloans.BuildQuery(studentID, s.now()))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// listLoans filters by ?status=, overdue included. Without it every loan is listed.
func (s *Server) listLoans(c echo.Context) error {
	status := core.LoanStatusNone

	if raw := c.QueryParam("status"); raw != "" {
		parsed, valid := core.ParseLoanStatus(raw)
		if !valid {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown loan status "+raw)
		}

		status = parsed
	}

	result, err := s.handlers.Loans.Handle(c.Request().Context(), loans.BuildQuery(status, s.now()))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) approveLoan(c echo.Context) error {
	return s.decideLoan(c, "loan approved", func(loanID, adminID uuid.UUID) error {
		_, err := s.handlers.ApproveLoan.Handle(c.Request().Context(), approveloan.BuildCommand(loanID, adminID, s.now()))
		return err
	})
}

func (s *Server) rejectLoan(c echo.Context) error {
	return s.decideLoan(c, "loan rejected", func(loanID, adminID uuid.UUID) error {
		_, err := s.handlers.RejectLoan.Handle(c.Request().Context(), rejectloan.BuildCommand(loanID, adminID, s.now()))
		return err
	})
}

func (s *Server) handOverBook(c echo.Context) error {
	return s.decideLoan(c, "book handed over", func(loanID, adminID uuid.UUID) error {
		_, err := s.handlers.HandOverBook.Handle(c.Request().Context(), handoverbook.BuildCommand(loanID, adminID, s.now()))
		return err
	})
}

func (s *Server) returnLoan(c echo.Context) error {
	return s.decideLoan(c, "book returned", func(loanID, adminID uuid.UUID) error {
		_, err := s.handlers.ReturnLoan.Handle(c.Request().Context(), returnloan.BuildCommand(loanID, adminID, s.now()))
		return err
	})
}

// decideLoan runs an admin transition on the loan in the path.
func (s *Server) decideLoan(c echo.Context, msg string, handle func(loanID, adminID uuid.UUID) error) error {
	loanID, err := pathID(c)
	if err != nil {
		return err
	}

	adminID, err := accountID(c)
	if err != nil {
		return err
	}

	if err = handle(loanID, adminID); err != nil {
		return err
	}

	return ok(c, msg)
}
