package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/school-library-go/library/features/command/addcategory"
	"github.com/AntonStoeckl/school-library-go/library/features/command/addgradelevel"
	"github.com/AntonStoeckl/school-library-go/library/features/command/removecategory"
	"github.com/AntonStoeckl/school-library-go/library/features/command/renamecategory"
	"github.com/AntonStoeckl/school-library-go/library/features/query/categories"
	"github.com/AntonStoeckl/school-library-go/library/features/query/gradelevels"
)

func (s *Server) listCategories(c echo.Context) error {
	result, err := s.handlers.Categories.Handle(c.Request().Context(), categories.BuildQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) listGradeLevels(c echo.Context) error {
	result, err := s.handlers.GradeLevels.Handle(c.Request().Context(), gradelevels.BuildQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) addCategory(c echo.Context) error {
	var req nameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	categoryID, err := newID(req.ID)
	if err != nil {
		return err
	}

	result, err := s.handlers.AddCategory.Handle(
		c.Request().Context(),
		addcategory.BuildCommand(categoryID, req.Name, s.now()),
	)
	if err != nil {
		return err
	}

	return created(c, result.Idempotent, "category added", categoryID)
}

func (s *Server) renameCategory(c echo.Context) error {
	categoryID, err := pathID(c)
	if err != nil {
		return err
	}

	var req nameRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err = s.handlers.RenameCategory.Handle(
		c.Request().Context(),
		renamecategory.BuildCommand(categoryID, req.Name, s.now()),
	); err != nil {
		return err
	}

	return ok(c, "category renamed")
}

func (s *Server) removeCategory(c echo.Context) error {
	categoryID, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err = s.handlers.RemoveCategory.Handle(
		c.Request().Context(),
		removecategory.BuildCommand(categoryID, s.now()),
	); err != nil {
		return err
	}

	return ok(c, "category removed")
}

func (s *Server) addGradeLevel(c echo.Context) error {
	var req nameRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	gradeLevelID, err := newID(req.ID)
	if err != nil {
		return err
	}

	result, err := s.handlers.AddGradeLevel.Handle(
		c.Request().Context(),
		addgradelevel.BuildCommand(gradeLevelID, req.Name, s.now()),
	)
	if err != nil {
		return err
	}

	return created(c, result.Idempotent, "grade level added", gradeLevelID)
}
