package gateway_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/library/gateway"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
	"github.com/AntonStoeckl/school-library-go/testutil/observability/testdoubles"
)

func Test_Server_A_Rejected_Request_Frees_The_Copy_For_The_Next_Student(t *testing.T) {
	// arrange
	f := givenServer(t)
	admin := f.adminToken(t)
	bookID := f.givenBook(t, admin, "978-0-13-468599-1", 1)
	_, tokenA := f.givenStudent(t, "a@school.example")
	_, tokenB := f.givenStudent(t, "b@school.example")

	// act
	requestedA := f.do(t, http.MethodPost, "/api/loans", tokenA, map[string]any{"book_id": bookID})
	blockedB := f.do(t, http.MethodPost, "/api/loans", tokenB, map[string]any{"book_id": bookID})
	rejected := f.do(t, http.MethodPost, "/api/admin/loans/"+requestedA.body["id"].(string)+"/reject", admin, nil)
	requestedB := f.do(t, http.MethodPost, "/api/loans", tokenB, map[string]any{"book_id": bookID})
	book := f.do(t, http.MethodGet, "/api/books/"+bookID, tokenB, nil)

	// assert
	require.Equal(t, http.StatusCreated, requestedA.status, requestedA.body)
	assert.Equal(t, http.StatusConflict, blockedB.status)
	assert.Equal(t, "no copies available", blockedB.body["message"])
	assert.Equal(t, http.StatusOK, rejected.status, rejected.body)
	assert.Equal(t, http.StatusCreated, requestedB.status, requestedB.body)
	require.Equal(t, http.StatusOK, book.status)
	assert.InDelta(t, 0, book.body["available_copies"], 0)
	assert.InDelta(t, 1, book.body["total_copies"], 0)
}

func Test_Server_Loan_Lifecycle(t *testing.T) {
	// arrange
	f := givenServer(t)
	admin := f.adminToken(t)
	bookID := f.givenBook(t, admin, "978-0-13-468599-1", 2)
	_, student := f.givenStudent(t, "a@school.example")

	requested := f.do(t, http.MethodPost, "/api/loans", student, map[string]any{"book_id": bookID})
	require.Equal(t, http.StatusCreated, requested.status, requested.body)
	loanPath := "/api/admin/loans/" + requested.body["id"].(string)

	// act
	approved := f.do(t, http.MethodPost, loanPath+"/approve", admin, nil)
	approvedAgain := f.do(t, http.MethodPost, loanPath+"/approve", admin, nil)
	handedOver := f.do(t, http.MethodPost, loanPath+"/handover", admin, nil)
	borrowed := f.do(t, http.MethodGet, "/api/admin/loans?status=borrowed", admin, nil)
	returned := f.do(t, http.MethodPost, loanPath+"/return", admin, nil)
	mine := f.do(t, http.MethodGet, "/api/loans/me", student, nil)

	// assert
	assert.Equal(t, http.StatusOK, approved.status, approved.body)
	assert.Equal(t, http.StatusConflict, approvedAgain.status)
	assert.Equal(t, http.StatusOK, handedOver.status, handedOver.body)
	require.InDelta(t, 1, borrowed.body["count"], 0)
	assert.Equal(t, f.adminID, borrowed.body["loans"].([]any)[0].(map[string]any)["admin_id"])
	assert.Equal(t, http.StatusOK, returned.status, returned.body)
	require.Equal(t, http.StatusOK, mine.status)
	loans := mine.body["loans"].([]any)
	require.Len(t, loans, 1)
	assert.Equal(t, "returned", loans[0].(map[string]any)["status"])
	assert.True(t, f.logger.HasMessage("INFO", "http"))
}

func Test_Server_Access_Control(t *testing.T) {
	// arrange
	f := givenServer(t)
	admin := f.adminToken(t)
	_, student := f.givenStudent(t, "a@school.example")

	testCases := []struct {
		description string
		method      string
		path        string
		token       string
		wantStatus  int
	}{
		{description: "health is public", method: http.MethodGet, path: "/health", wantStatus: http.StatusOK},
		{description: "books without token", method: http.MethodGet, path: "/api/books", wantStatus: http.StatusUnauthorized},
		{description: "books with a forged token", method: http.MethodGet, path: "/api/books", token: "not.a.jwt", wantStatus: http.StatusUnauthorized},
		{description: "books as student", method: http.MethodGet, path: "/api/books", token: student, wantStatus: http.StatusOK},
		{description: "books as admin", method: http.MethodGet, path: "/api/books", token: admin, wantStatus: http.StatusOK},
		{description: "dashboard as student", method: http.MethodGet, path: "/api/admin/dashboard", token: student, wantStatus: http.StatusForbidden},
		{description: "dashboard as admin", method: http.MethodGet, path: "/api/admin/dashboard", token: admin, wantStatus: http.StatusOK},
		{description: "own loans as admin", method: http.MethodGet, path: "/api/loans/me", token: admin, wantStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			res := f.do(t, tc.method, tc.path, tc.token, nil)

			// assert
			assert.Equal(t, tc.wantStatus, res.status, res.body)
		})
	}
}

func Test_Server_Rejects_Invalid_Input(t *testing.T) {
	// arrange
	f := givenServer(t)
	admin := f.adminToken(t)

	testCases := []struct {
		description string
		method      string
		path        string
		body        any
		wantStatus  int
	}{
		{
			description: "book without title",
			method:      http.MethodPost,
			path:        "/api/admin/books",
			body:        map[string]any{"isbn": "978-0-13-468599-1", "author": "Vlad Khononov"},
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "negative copies",
			method:      http.MethodPost,
			path:        "/api/admin/books",
			body:        map[string]any{"isbn": "978-0-13-468599-1", "title": "T", "author": "A", "total_copies": -1},
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "book with blank isbn",
			method:      http.MethodPost,
			path:        "/api/admin/books",
			body:        map[string]any{"isbn": "   ", "title": "T", "author": "A"},
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "category with blank name",
			method:      http.MethodPost,
			path:        "/api/admin/categories",
			body:        map[string]any{"name": "  "},
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "loan filter with unknown status",
			method:      http.MethodGet,
			path:        "/api/admin/loans?status=lost",
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "path id that is no uuid",
			method:      http.MethodDelete,
			path:        "/api/admin/books/42",
			wantStatus:  http.StatusBadRequest,
		},
		{
			description: "unknown book",
			method:      http.MethodDelete,
			path:        "/api/admin/books/" + helper.GivenUniqueID(t).String(),
			wantStatus:  http.StatusNotFound,
		},
		{
			description: "student with malformed email",
			method:      http.MethodPost,
			path:        "/api/admin/students",
			body:        map[string]any{"email": "nope", "password": "secret1", "first_name": "J", "last_name": "D"},
			wantStatus:  http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			// act
			res := f.do(t, tc.method, tc.path, admin, tc.body)

			// assert
			assert.Equal(t, tc.wantStatus, res.status, res.body)
			assert.NotEmpty(t, res.body["message"])
		})
	}
}

func Test_Server_Login_Fails_Alike_For_Unknown_Email_And_Wrong_Password(t *testing.T) {
	// arrange
	f := givenServer(t)
	f.givenStudent(t, "a@school.example")

	// act
	wrongPassword := f.do(t, http.MethodPost, "/api/auth/students/login", "",
		map[string]any{"email": "a@school.example", "password": "guess"})
	unknownEmail := f.do(t, http.MethodPost, "/api/auth/students/login", "",
		map[string]any{"email": "nobody@school.example", "password": "guess"})
	adminAsStudent := f.do(t, http.MethodPost, "/api/auth/students/login", "",
		map[string]any{"email": adminEmail, "password": adminPassword})

	// assert
	for _, res := range []response{wrongPassword, unknownEmail, adminAsStudent} {
		assert.Equal(t, http.StatusUnauthorized, res.status)
		assert.Equal(t, "invalid email or password", res.body["message"])
	}
}

func Test_Server_Create_With_Client_ID_Is_Idempotent(t *testing.T) {
	// arrange
	f := givenServer(t)
	admin := f.adminToken(t)
	categoryID := helper.GivenUniqueID(t).String()
	body := map[string]any{"id": categoryID, "name": "Science"}

	// act
	first := f.do(t, http.MethodPost, "/api/admin/categories", admin, body)
	second := f.do(t, http.MethodPost, "/api/admin/categories", admin, body)
	listed := f.do(t, http.MethodGet, "/api/categories", admin, nil)

	// assert
	assert.Equal(t, http.StatusCreated, first.status, first.body)
	assert.Equal(t, http.StatusOK, second.status, second.body)
	assert.Equal(t, categoryID, second.body["id"])
	assert.InDelta(t, 1, listed.body["count"], 0)
}

func Test_Server_Registering_A_Taken_Email_Conflicts(t *testing.T) {
	// arrange
	f := givenServer(t)
	f.givenStudent(t, "a@school.example")

	// act
	res := f.do(t, http.MethodPost, "/api/auth/students/register", "", map[string]any{
		"email":      "A@School.example",
		"password":   "student-secret",
		"first_name": "John",
		"last_name":  "Doe",
	})

	// assert
	assert.Equal(t, http.StatusConflict, res.status)
	assert.Equal(t, "email is already registered", res.body["message"])
}

func Test_Server_Student_Logs_In_With_Changed_Email(t *testing.T) {
	// arrange
	f := givenServer(t)
	admin := f.adminToken(t)
	studentID, _ := f.givenStudent(t, "old@school.example")

	// act
	updated := f.do(t, http.MethodPut, "/api/admin/students/"+studentID, admin,
		map[string]any{"email": "New@School.example"})
	newEmail := f.do(t, http.MethodPost, "/api/auth/students/login", "",
		map[string]any{"email": "new@school.example", "password": "student-secret"})
	oldEmail := f.do(t, http.MethodPost, "/api/auth/students/login", "",
		map[string]any{"email": "old@school.example", "password": "student-secret"})

	// assert
	assert.Equal(t, http.StatusOK, updated.status, updated.body)
	assert.Equal(t, http.StatusOK, newEmail.status, newEmail.body)
	assert.NotEmpty(t, newEmail.body["access_token"])
	assert.Equal(t, http.StatusUnauthorized, oldEmail.status)
}

func Test_NewServer_Requires_Logger_And_Secret(t *testing.T) {
	// arrange
	handlers := gateway.Handlers{}

	// act
	_, errNoLogger := gateway.NewServer(handlers, gateway.Config{JWTSecret: []byte(testSecret)})
	_, errNoSecret := gateway.NewServer(handlers, gateway.Config{Logger: testdoubles.NewLoggerSpy().Logger})

	// assert
	assert.ErrorIs(t, errNoLogger, gateway.ErrNilLogger)
	assert.ErrorIs(t, errNoSecret, gateway.ErrMissingSecret)
}
