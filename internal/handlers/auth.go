package handlers

import (
	"errors"
	"net/http"
	"time"

	"firebase.google.com/go/v4/auth"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stagelink/approval/backend/internal/middleware"
	"github.com/stagelink/approval/backend/internal/models"
	"github.com/stagelink/approval/backend/internal/repositories"
	"github.com/stagelink/approval/backend/pkg/recaptcha"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	profileRepository repositories.ProfileRepository
	firebaseAuth      *auth.Client
	recaptchaVerifier *recaptcha.Verifier
	jwtSecret         string
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(profileRepo repositories.ProfileRepository, firebaseAuthClient *auth.Client, verifier *recaptcha.Verifier, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		profileRepository: profileRepo,
		firebaseAuth:      firebaseAuthClient,
		recaptchaVerifier: verifier,
		jwtSecret:         jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signin", h.SignIn)
	g.POST("/signout", h.SignOut)
	g.POST("/firebase-login", h.FirebaseLogin)
}

// SignIn handles email/password authentication. The anti-automation proof
// token is verified server-side before credentials are even looked at.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.recaptchaVerifier.Verify(c.Request().Context(), req.RecaptchaToken, "login"); err != nil {
		if errors.Is(err, recaptcha.ErrVerificationFailed) {
			return echo.NewHTTPError(http.StatusUnauthorized, "reCAPTCHA verification failed. Please try again.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not verify reCAPTCHA token")
	}

	profile, err := h.profileRepository.GetProfileByEmail(req.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.generateJWT(profile)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "profile": profile})
}

// SignOut acknowledges a sign-out. Sessions are stateless JWTs; the client
// discards the token and this endpoint confirms the cleared session.
func (h *AuthHandler) SignOut(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"session": nil})
}

// FirebaseLogin handles Firebase ID token verification and issues a local JWT
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req models.FirebaseLoginRequest

	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify Firebase ID token
	token, err := h.firebaseAuth.VerifyIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	firebaseUID := token.UID
	email, _ := token.Claims["email"].(string)
	name, _ := token.Claims["name"].(string)

	// Try to find profile by Firebase UID, then by email
	profile, err := h.profileRepository.GetProfileByFirebaseUID(firebaseUID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			profile, err = h.profileRepository.GetProfileByEmail(email)
			if err != nil {
				if err == gorm.ErrRecordNotFound {
					// New client profile; admin accounts are never auto-created
					newProfile := &models.Profile{
						Email:       email,
						FullName:    name,
						FirebaseUID: firebaseUID,
					}
					if err := h.profileRepository.CreateProfile(newProfile); err != nil {
						return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create profile")
					}
					profile = newProfile
				} else {
					return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
				}
			} else {
				// Profile found by email, link the Firebase UID
				profile.FirebaseUID = firebaseUID
				if err := h.profileRepository.UpdateProfile(profile); err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "Failed to link Firebase UID")
				}
			}
		} else {
			return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
		}
	} else if name != "" && profile.FullName != name {
		profile.FullName = name
		if err := h.profileRepository.UpdateProfile(profile); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update profile details")
		}
	}

	localJWT, err := h.generateJWT(profile)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate local JWT")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": localJWT, "profile": profile})
}

// Session returns the authenticated viewer's profile
func (h *AuthHandler) Session(c echo.Context) error {
	claims, ok := c.Get(middleware.ProfileClaimsKey).(*models.JwtCustomClaims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication claims")
	}

	profile, err := h.profileRepository.GetProfileByID(claims.ProfileID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, profile)
}

// generateJWT generates a JWT token for a given profile
func (h *AuthHandler) generateJWT(profile *models.Profile) (string, error) {
	claims := &models.JwtCustomClaims{
		ProfileID: profile.ID,
		Email:     profile.Email,
		IsAdmin:   profile.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)), // Token expires in 72 hours
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return "", err
	}
	return t, nil
}
