package entity

import (
	"github.com/golang-jwt/jwt/v5"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleHRAdmin  Role = "HR_ADMIN"
)

type Department struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID           string      `json:"id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	FirstName    string      `json:"firstName"`
	LastName     string      `json:"lastName"`
	Role         Role        `json:"role"`
	Department   *Department `json:"department,omitempty"`
}

type Claims struct {
	jwt.RegisteredClaims

	UserID  string `json:"id"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
	TokenID string `json:"token_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Tokens struct {
	AccessToken string `json:"accessToken"`
}

type LoginResponse struct {
	User   *User  `json:"user"`
	Tokens Tokens `json:"tokens"`
}
