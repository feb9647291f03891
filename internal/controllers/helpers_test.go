package controllers

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/adamanr/leave_service/internal/config"
	"github.com/adamanr/leave_service/internal/entity"
	"github.com/adamanr/leave_service/internal/session"
	"github.com/adamanr/leave_service/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "demo123"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.JWTSecret = "test-secret"
	cfg.Redis.AccessTokenTTL = time.Hour
	return cfg
}

func testPasswordHash(t *testing.T) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	return string(hash)
}

func testUsers(t *testing.T) []entity.User {
	t.Helper()

	hash := testPasswordHash(t)
	it := entity.Department{ID: "1", Name: "IT"}

	return []entity.User{
		{ID: "1", Email: "anna@firma.pl", PasswordHash: hash, FirstName: "Anna", LastName: "Kowalska", Role: entity.RoleEmployee, Department: &it},
		{ID: "2", Email: "tomek@firma.pl", PasswordHash: hash, FirstName: "Tomek", LastName: "Nowak", Role: entity.RoleManager, Department: &it},
		{ID: "3", Email: "kasia@firma.pl", PasswordHash: hash, FirstName: "Kasia", LastName: "Lewandowska", Role: entity.RoleHRAdmin},
	}
}

func newTestDeps(t *testing.T, users []entity.User, requests []entity.LeaveRequest, balances []entity.LeaveBalance) *Dependens {
	t.Helper()

	return &Dependens{
		Store:    store.NewMemory(users, requests, balances),
		Sessions: session.NewMemory(),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:   testConfig(),
	}
}

func claimsFor(user entity.User) *entity.Claims {
	return &entity.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	}
}

func pendingRequest(id, userID string) entity.LeaveRequest {
	return entity.LeaveRequest{
		ID:          id,
		UserID:      userID,
		Type:        entity.TypeVacation,
		StartDate:   entity.NewDate(2026, time.March, 16),
		EndDate:     entity.NewDate(2026, time.March, 20),
		WorkingDays: 5,
		Status:      entity.StatusPending,
		CreatedAt:   time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
	}
}
