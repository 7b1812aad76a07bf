// Package testutils provides an in-process API test suite: the full Fiber
// app wired over the in-memory unit of work, so handler tests exercise
// routing, auth and serialization without a database.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/finpulse/finpulse/internal/fixtures/memuow"
	"github.com/finpulse/finpulse/pkg/app"
	"github.com/finpulse/finpulse/pkg/config"
	"github.com/finpulse/finpulse/webapi"
	"github.com/finpulse/finpulse/webapi/common"
)

// APITestSuite runs the real route tree against an in-memory store. Each
// test gets a fresh store via SetupTest.
type APITestSuite struct {
	suite.Suite
	Uow *memuow.UoW
	App *fiber.App
	Cfg *config.App
}

// SetupTest rebuilds the app on an empty store.
func (s *APITestSuite) SetupTest() {
	s.Uow = memuow.New()
	s.Cfg = &config.App{
		Env: "test",
		Jwt: config.Jwt{Secret: "test-secret", Expiry: time.Hour},
		RateLimit: config.RateLimit{
			MaxRequests: 1000,
			Window:      time.Minute,
		},
	}
	a := app.New(&app.Deps{
		Uow:    s.Uow,
		Logger: slog.New(slog.DiscardHandler),
	}, s.Cfg)
	s.App = webapi.SetupApp(a)
}

// MakeRequest runs one request through the app and returns the response.
func (s *APITestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeResponse reads the standard response envelope from resp.
func (s *APITestSuite) DecodeResponse(resp *http.Response) common.Response {
	defer resp.Body.Close() //nolint: errcheck
	var response common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&response))
	return response
}

// SignupUser registers a fresh random user through POST /auth/signup and
// returns its id and credentials.
func (s *APITestSuite) SignupUser() (uuid.UUID, string, string) {
	suffix := uuid.New().String()[:8]
	username := "testuser_" + suffix
	email := fmt.Sprintf("test_%s@example.com", suffix)

	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":"password123"}`, username, email)
	resp := s.MakeRequest("POST", "/auth/signup", body, "")
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	response := s.DecodeResponse(resp)
	data, ok := response.Data.(map[string]any)
	s.Require().True(ok, "signup response data should be an object")
	idStr, ok := data["id"].(string)
	s.Require().True(ok, "signup response should carry the user id")
	id, err := uuid.Parse(idStr)
	s.Require().NoError(err)
	return id, email, "password123"
}

// LoginUser logs in with the given identity and returns the bearer token.
func (s *APITestSuite) LoginUser(identity, password string) string {
	body := fmt.Sprintf(`{"identity":%q,"password":%q}`, identity, password)
	resp := s.MakeRequest("POST", "/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	response := s.DecodeResponse(resp)
	data, ok := response.Data.(map[string]any)
	s.Require().True(ok)
	token, ok := data["token"].(string)
	s.Require().True(ok)
	s.Require().NotEmpty(token)
	return token
}

// AuthenticatedUser signs up and logs in one user, returning id and token.
func (s *APITestSuite) AuthenticatedUser() (uuid.UUID, string) {
	id, email, password := s.SignupUser()
	return id, s.LoginUser(email, password)
}
