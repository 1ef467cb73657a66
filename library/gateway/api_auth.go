package gateway

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AntonStoeckl/school-library-go/eventstore"
	"github.com/AntonStoeckl/school-library-go/library/features/command/registeradmin"
	"github.com/AntonStoeckl/school-library-go/library/features/command/registerstudent"
	"github.com/AntonStoeckl/school-library-go/library/features/query/credentials"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
)

const tokenTypeBearer = "Bearer"

func (s *Server) registerStudent(c echo.Context) error {
	var req registerStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return s.addStudent(c, req, "registration successful")
}

func (s *Server) createStudent(c echo.Context) error {
	var req registerStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return s.addStudent(c, req, "student created")
}

func (s *Server) addStudent(c echo.Context, req registerStudentRequest, msg string) error {
	studentID, err := newID(req.ID)
	if err != nil {
		return err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	profile := core.StudentProfile{
		Email: req.Email,
		PersonName: core.PersonName{
			FirstName:  req.FirstName,
			MiddleName: req.MiddleName,
			LastName:   req.LastName,
		},
		GradeLevelID: req.GradeLevelID,
		PasswordHash: hash,
	}

	result, err := s.handlers.RegisterStudent.Handle(
		c.Request().Context(),
		registerstudent.BuildCommand(studentID, profile, s.now()),
	)
	if err != nil {
		return err
	}

	return created(c, result.Idempotent, msg, studentID)
}

func (s *Server) loginStudent(c echo.Context) error {
	return s.login(c, credentials.AccountStudent, RoleStudent)
}

func (s *Server) loginAdmin(c echo.Context) error {
	return s.login(c, credentials.AccountAdmin, RoleAdmin)
}

// login answers the same 401 for an unknown email and a wrong password.
func (s *Server) login(c echo.Context, kind credentials.AccountKind, role string) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := eventstore.WithStrongConsistency(c.Request().Context())

	account, err := s.handlers.Credentials.Handle(ctx, credentials.BuildQuery(kind, req.Email))
	if errors.Is(err, core.ErrNotFound) {
		return errInvalidCredentials
	}

	if err != nil {
		return err
	}

	if !passwordMatches(account.PasswordHash, req.Password) {
		return errInvalidCredentials
	}

	token, err := s.tokens.Issue(account.AccountID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(s.tokens.TTL().Seconds()),
	})
}

func (s *Server) registerAdmin(c echo.Context) error {
	var req registerAdminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	adminID, err := newID(req.ID)
	if err != nil {
		return err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return err
	}

	name := core.PersonName{FirstName: req.FirstName, LastName: req.LastName}

	result, err := s.handlers.RegisterAdmin.Handle(
		c.Request().Context(),
		registeradmin.BuildCommand(adminID, req.Email, name, req.Role, hash, s.now()),
	)
	if err != nil {
		return err
	}

	return created(c, result.Idempotent, "admin created", adminID)
}
