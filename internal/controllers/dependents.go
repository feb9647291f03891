package controllers

import (
	"log/slog"

	"github.com/adamanr/leave_service/internal/config"
	"github.com/adamanr/leave_service/internal/session"
	"github.com/adamanr/leave_service/internal/store"
)

type Controllers struct {
	AuthController  *AuthController
	LeaveController *LeaveController
}

type Dependens struct {
	Store    store.Store
	Sessions session.Sessions
	Logger   *slog.Logger
	Config   *config.Config
}
