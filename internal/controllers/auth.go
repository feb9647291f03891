package controllers

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adamanr/leave_service/internal/entity"
	"github.com/adamanr/leave_service/internal/store"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const TokenSize = 16

type AuthController struct {
	deps *Dependens
}

func NewAuthController(deps *Dependens) *AuthController {
	return &AuthController{
		deps: deps,
	}
}

// Login verifies the credentials and issues a session token bound to the
// user's id, email and role.
func (c *AuthController) Login(ctx context.Context, req *entity.LoginRequest) (*entity.User, string, error) {
	user, err := c.deps.Store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.deps.Logger.Warn("user with this email not found", slog.String("email", req.Email))
			return nil, "", ErrInvalidCredentials
		}

		c.deps.Logger.Error("Error querying user", slog.String("error", err.Error()))
		return nil, "", err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.deps.Logger.Warn("Invalid password", slog.String("email", req.Email))
		return nil, "", ErrInvalidCredentials
	}

	token, err := c.createToken(user)
	if err != nil {
		return nil, "", err
	}

	if err = c.deps.Sessions.Save(ctx, token, c.deps.Config.Redis.AccessTokenTTL); err != nil {
		c.deps.Logger.Error("Error saving session", slog.String("error", err.Error()))
		return nil, "", err
	}

	return user, token, nil
}

func (c *AuthController) createToken(user *entity.User) (string, error) {
	tokenID, err := generateTokenID(c.deps.Logger)
	if err != nil {
		c.deps.Logger.Error("Error generating token ID", slog.String("error", err.Error()))
		return "", err
	}

	claims := entity.Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		TokenID: tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.deps.Config.Redis.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenStr, err := token.SignedString([]byte(c.deps.Config.Server.JWTSecret))
	if err != nil {
		c.deps.Logger.Error("Error signing token", slog.String("error", err.Error()))
		return "", err
	}

	return tokenStr, nil
}

func generateTokenID(logger *slog.Logger) (string, error) {
	b := make([]byte, TokenSize)
	if _, err := rand.Read(b); err != nil {
		logger.Error("Error generating token ID", slog.String("error", err.Error()))
		return "", err
	}

	return hex.EncodeToString(b), nil
}

// CheckUserToken validates the Authorization header and returns the decoded
// claims. Revoked tokens fail before the signature is even checked.
func (c *AuthController) CheckUserToken(ctx context.Context, authHeader string) (*entity.Claims, error) {
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenStr == authHeader || tokenStr == "" {
		c.deps.Logger.Warn("Invalid bearer token")
		return nil, fmt.Errorf("%w: invalid bearer token", ErrUnauthenticated)
	}

	if err := c.deps.Sessions.Validate(ctx, tokenStr); err != nil {
		c.deps.Logger.Warn("Token revoked")
		return nil, fmt.Errorf("%w: token revoked", ErrUnauthenticated)
	}

	token, err := jwt.ParseWithClaims(tokenStr, &entity.Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(c.deps.Config.Server.JWTSecret), nil
	})
	if err != nil {
		c.deps.Logger.Warn("Error parsing token", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
	}

	if claims, ok := token.Claims.(*entity.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("%w: invalid token", ErrUnauthenticated)
}

// Logout revokes the session behind the Authorization header.
func (c *AuthController) Logout(ctx context.Context, authHeader string) error {
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	if err := c.deps.Sessions.Revoke(ctx, tokenStr); err != nil {
		c.deps.Logger.Error("Error revoking session", slog.String("error", err.Error()))
		return err
	}

	return nil
}
