package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Profile represents an identity record (PostgreSQL). Admins create and
// assign content; non-admin profiles only ever see items assigned to them.
type Profile struct {
	ID           string    `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex"` // Ensure email is unique across all profiles
	FullName     string    `json:"full_name,omitempty"`
	IsAdmin      bool      `json:"is_admin" gorm:"default:false"`
	CompanyLogo  string    `json:"company_logo,omitempty"`
	PasswordHash string    `json:"-"`                                         // Store hashed password, ignore for JSON serialization
	FirebaseUID  string    `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // Link to Firebase User UID
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SignInRequest defines the request body for email/password sign-in.
// The recaptcha token proves the request came from an interactive client.
type SignInRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required"`
	RecaptchaToken string `json:"recaptcha_token" validate:"required"`
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	jwt.RegisteredClaims
}
