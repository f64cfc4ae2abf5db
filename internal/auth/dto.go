package auth

import "github.com/Acon1tum/hris-test-sub000/internal/core/common/validation"

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	return validation.NewValidator().
		Require("email", d.Email).
		Require("password", d.Password).
		Validate()
}

type RegisterDTO struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (d RegisterDTO) Validate() error {
	return validation.NewValidator().
		Require("email", d.Email).
		Email("email", d.Email).
		Require("password", d.Password).
		MinLength("password", d.Password, 8).
		Require("first_name", d.FirstName).
		MaxLength("first_name", d.FirstName, 100).
		Require("last_name", d.LastName).
		MaxLength("last_name", d.LastName, 100).
		Validate()
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (d RefreshTokenDTO) Validate() error {
	return validation.NewValidator().
		Require("refresh_token", d.RefreshToken).
		Validate()
}
