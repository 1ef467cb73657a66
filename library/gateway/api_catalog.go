package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/school-library-go/library/features/command/addbook"
	"github.com/AntonStoeckl/school-library-go/library/features/command/removebook"
	"github.com/AntonStoeckl/school-library-go/library/features/command/updatebook"
	"github.com/AntonStoeckl/school-library-go/library/features/query/bookdetails"
	"github.com/AntonStoeckl/school-library-go/library/features/query/books"
	"github.com/AntonStoeckl/school-library-go/library/features/query/dashboard"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const defaultTotalCopies = 1

func (s *Server) listBooks(c echo.Context) error {
	result, err := s.handlers.Books.Handle(c.Request().Context(), books.BuildQuery(c.QueryParam("category_id")))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) getBook(c echo.Context) error {
	bookID, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.BookDetails.Handle(c.Request().Context(), bookdetails.BuildQuery(bookID))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) addBook(c echo.Context) error {
	var req addBookRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	bookID, err := newID(req.ID)
	if err != nil {
		return err
	}

	totalCopies := defaultTotalCopies
	if req.TotalCopies != nil {
		totalCopies = *req.TotalCopies
	}

	details := core.BookDetails{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		CategoryID:      req.CategoryID,
	}

	result, err := s.handlers.AddBook.Handle(
		c.Request().Context(),
		addbook.BuildCommand(bookID, details, totalCopies, s.now()),
	)
	if err != nil {
		return err
	}

	return created(c, result.Idempotent, "book added", bookID)
}

func (s *Server) updateBook(c echo.Context) error {
	bookID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateBookRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	changes := updatebook.Changes{
		ISBN:            req.ISBN,
		Title:           req.Title,
		Author:          req.Author,
		Publisher:       req.Publisher,
		PublicationYear: req.PublicationYear,
		CategoryID:      req.CategoryID,
		TotalCopies:     req.TotalCopies,
	}

	if _, err = s.handlers.UpdateBook.Handle(
		c.Request().Context(),
		updatebook.BuildCommand(bookID, changes, s.now()),
	); err != nil {
		return err
	}

	return ok(c, "book updated")
}

func (s *Server) removeBook(c echo.Context) error {
	bookID, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err = s.handlers.RemoveBook.Handle(c.Request().Context(), removebook.BuildCommand(bookID, s.now())); err != nil {
		return err
	}

	return ok(c, "book removed")
}

func (s *Server) dashboard(c echo.Context) error {
	result, err := s.handlers.Dashboard.Handle(c.Request().Context(), dashboard.BuildQuery(s.now()))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}
