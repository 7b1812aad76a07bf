// Package auth exposes signup and login endpoints.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authsvc "github.com/finpulse/finpulse/pkg/service/auth"
	usersvc "github.com/finpulse/finpulse/pkg/service/user"
	"github.com/finpulse/finpulse/webapi/common"
)

// SignupInput is the registration payload.
type SignupInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput carries the identity (username or email) and password.
type LoginInput struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Routes mounts /auth/signup and /auth/login.
func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service) {
	app.Post("/auth/signup", Signup(userSvc))
	app.Post("/auth/login", Login(authSvc))
}

// Signup registers a new user.
func Signup(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignupInput](c)
		if input == nil {
			return err
		}
		u, err := userSvc.CreateUser(c.Context(), input.Username, input.Email, input.Password)
		if err != nil {
			if errors.Is(err, usersvc.ErrInvalidEmail) {
				return common.ProblemDetailsJSON(c, "Invalid email", err, fiber.StatusBadRequest)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User created", u)
	}
}

// Login authenticates and returns a signed token.
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		u, token, err := authSvc.Login(c.Context(), input.Identity, input.Password)
		if err != nil {
			if errors.Is(err, authsvc.ErrInvalidCredentials) {
				return common.ProblemDetailsJSON(c, "Invalid identity or password", nil,
					"Identity or password is incorrect", fiber.StatusUnauthorized)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", fiber.Map{
			"token": token,
			"user":  u,
		})
	}
}
