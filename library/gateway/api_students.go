package gateway

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/school-library-go/library/features/command/changemembership"
	"github.com/AntonStoeckl/school-library-go/library/features/command/removestudent"
	"github.com/AntonStoeckl/school-library-go/library/features/command/updatestudent"
	"github.com/AntonStoeckl/school-library-go/library/features/query/studentloans"
	"github.com/AntonStoeckl/school-library-go/library/features/query/students"
)

func (s *Server) listStudents(c echo.Context) error {
	result, err := s.handlers.Students.Handle(c.Request().Context(), students.BuildQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) updateStudent(c echo.Context) error {
	studentID, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateStudentRequest
	if err = bindAndValidate(c, &req); err != nil {
		return err
	}

	changes := updatestudent.Changes{
		Email:        req.Email,
		FirstName:    req.FirstName,
		MiddleName:   req.MiddleName,
		LastName:     req.LastName,
		GradeLevelID: req.GradeLevelID,
	}

	if req.Password != nil {
		hash, hashErr := HashPassword(*req.Password)
		if hashErr != nil {
			return hashErr
		}

		changes.PasswordHash = &hash
	}

	if _, err = s.handlers.UpdateStudent.Handle(
		c.Request().Context(),
		updatestudent.BuildCommand(studentID, changes, s.now()),
	); err != nil {
		return err
	}

	return ok(c, "student updated")
}

func (s *Server) removeStudent(c echo.Context) error {
	studentID, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err = s.handlers.RemoveStudent.Handle(c.Request().Context(), removestudent.BuildCommand(studentID, s.now())); err != nil {
		return err
	}

	return ok(c, "student removed")
}

func (s *Server) studentLoans(c echo.Context) error {
	studentID, err := pathID(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.StudentLoans.Handle(c.Request().Context(), studentloans.BuildQuery(studentID, s.now()))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) activateMembership(c echo.Context) error {
	return s.changeMembership(c, true, "membership activated")
}

func (s *Server) deactivateMembership(c echo.Context) error {
	return s.changeMembership(c, false, "membership deactivated")
}

func (s *Server) changeMembership(c echo.Context, activate bool, msg string) error {
	studentID, err := pathID(c)
	if err != nil {
		return err
	}

	adminID, err := accountID(c)
	if err != nil {
		return err
	}

	if _, err = s.handlers.ChangeMembership.Handle(
		c.Request().Context(),
		changemembership.BuildCommand(studentID, adminID, activate, s.now()),
	); err != nil {
		return err
	}

	return ok(c, msg)
}
