package gateway_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/school-library-go/eventstore/memengine"
	"github.com/AntonStoeckl/school-library-go/library/features/command/registeradmin"
	"github.com/AntonStoeckl/school-library-go/library/gateway"
	"github.com/AntonStoeckl/school-library-go/library/shared/core"
	"github.com/AntonStoeckl/school-library-go/testutil/helper"
	"github.com/AntonStoeckl/school-library-go/testutil/observability/testdoubles"
)

const (
	adminEmail    = "admin@school.example"
	adminPassword = "admin-secret"
	testSecret    = "test-secret"
)

type fixture struct {
	server  *gateway.Server
	es      *memengine.EventStore
	logger  *testdoubles.LoggerSpy
	adminID string
}

type response struct {
	status int
	body   map[string]any
}

func givenServer(t *testing.T, options ...func(*gateway.Config)) fixture {
	t.Helper()

	es := memengine.NewEventStore()
	logger := testdoubles.NewLoggerSpy()
	handlers := gateway.NewHandlers(es, gateway.HandlerOptions{})

	cfg := gateway.Config{
		JWTSecret: []byte(testSecret),
		Logger:    logger.Logger,
	}
	for _, option := range options {
		option(&cfg)
	}

	server, err := gateway.NewServer(handlers, cfg)
	require.NoError(t, err)

	adminID := helper.GivenUniqueID(t)
	hash, err := gateway.HashPassword(adminPassword)
	require.NoError(t, err)

	_, err = handlers.RegisterAdmin.Handle(context.Background(), registeradmin.BuildCommand(
		adminID,
		adminEmail,
		core.PersonName{FirstName: "Ada", LastName: "Admin"},
		"",
		hash,
		time.Now(),
	))
	require.NoError(t, err)

	return fixture{server: server, es: es, logger: logger, adminID: adminID.String()}
}

func (f fixture) do(t *testing.T, method, path, token string, body any) response {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	decoded := make(map[string]any)
	if rec.Body.Len() > 0 {
		require.NoError(t, jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(rec.Body.Bytes(), &decoded))
	}

	return response{status: rec.Code, body: decoded}
}

func (f fixture) adminToken(t *testing.T) string {
	t.Helper()

	return f.login(t, "/api/auth/admins/login", adminEmail, adminPassword)
}

// givenStudent registers and logs in a student, returning id and token.
func (f fixture) givenStudent(t *testing.T, email string) (string, string) {
	t.Helper()

	res := f.do(t, http.MethodPost, "/api/auth/students/register", "", map[string]any{
		"email":      email,
		"password":   "student-secret",
		"first_name": "Jane",
		"last_name":  "Doe",
	})
	require.Equal(t, http.StatusCreated, res.status, res.body)

	return res.body["id"].(string), f.login(t, "/api/auth/students/login", email, "student-secret")
}

func (f fixture) login(t *testing.T, path, email, password string) string {
	t.Helper()

	res := f.do(t, http.MethodPost, path, "", map[string]any{"email": email, "password": password})
	require.Equal(t, http.StatusOK, res.status, res.body)
	require.Equal(t, "Bearer", res.body["token_type"])

	return res.body["access_token"].(string)
}

func (f fixture) givenBook(t *testing.T, adminToken string, isbn string, totalCopies int) string {
	t.Helper()

	res := f.do(t, http.MethodPost, "/api/admin/books", adminToken, map[string]any{
		"isbn":         isbn,
		"title":        "Learning Domain-Driven Design",
		"author":       "Vlad Khononov",
		"total_copies": totalCopies,
	})
	require.Equal(t, http.StatusCreated, res.status, res.body)

	return res.body["id"].(string)
}
