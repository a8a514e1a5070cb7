// Package models contains the client-side record types and the response
// shapes of the campus API. Payloads are decoded into these structs at the
// transport boundary; nothing downstream touches raw JSON.
package models

import "github.com/golang-jwt/jwt/v5"

// User is the identity record of the signed-in user. It lives in memory for
// the lifetime of the session and is rebuilt from the login response, or from
// stored token claims on restart.
type User struct {
	ID        string
	Email     string
	FullName  string
	AvatarURL *string
}

// TokenClaims are the claims campusctl expects inside an access token.
// Standard registered claims cover expiry and subject.
type TokenClaims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	jwt.RegisteredClaims
}

// LoginResponse mirrors the success body of POST /auth/login.
type LoginResponse struct {
	Message     string  `json:"message"`
	AccessToken string  `json:"access_token"`
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	FullName    string  `json:"full_name"`
	AvatarURL   *string `json:"avatar_url"`
}

// SignupResponse mirrors the success body of POST /auth/signup.
type SignupResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}
