package auth_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/finpulse/finpulse/webapi/testutils"
)

type AuthTestSuite struct {
	testutils.APITestSuite
}

func (s *AuthTestSuite) TestSignup_Success() {
	resp := s.MakeRequest("POST", "/auth/signup",
		`{"username":"testuser","email":"test@example.com","password":"password123"}`, "")
	s.Equal(fiber.StatusCreated, resp.StatusCode)

	response := s.DecodeResponse(resp)
	data := response.Data.(map[string]any)
	s.NotEmpty(data["id"])
	s.Equal("testuser", data["username"])
	s.NotContains(data, "password")
}

func (s *AuthTestSuite) TestSignup_InvalidEmail() {
	resp := s.MakeRequest("POST", "/auth/signup",
		`{"username":"testuser","email":"not-an-email","password":"password123"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestSignup_ShortPassword() {
	resp := s.MakeRequest("POST", "/auth/signup",
		`{"username":"testuser","email":"test@example.com","password":"short"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin_BadRequest() {
	resp := s.MakeRequest("POST", "/auth/login", `{"identity":123}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin_UnknownIdentity() {
	resp := s.MakeRequest("POST", "/auth/login",
		`{"identity":"nonexistent@example.com","password":"password123"}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin_WrongPassword() {
	_, email, _ := s.SignupUser()
	body := fmt.Sprintf(`{"identity":%q,"password":"wrongpassword"}`, email)
	resp := s.MakeRequest("POST", "/auth/login", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthTestSuite) TestLogin_Success() {
	_, email, password := s.SignupUser()
	token := s.LoginUser(email, password)
	s.NotEmpty(token)
}

func (s *AuthTestSuite) TestLogin_ByUsername() {
	resp := s.MakeRequest("POST", "/auth/signup",
		`{"username":"loginbyname","email":"byname@example.com","password":"password123"}`, "")
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint: errcheck

	token := s.LoginUser("loginbyname", "password123")
	s.NotEmpty(token)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
