package controllers

import (
	"github.com/adamanr/leave_service/internal/entity"
)

type Action string

const (
	ActionViewAllRequests Action = "requests:view_all"
	ActionDecideRequest   Action = "requests:decide"
	ActionViewSummary     Action = "reports:summary"
)

var policy = map[entity.Role]map[Action]bool{
	entity.RoleEmployee: {},
	entity.RoleManager: {
		ActionViewAllRequests: true,
		ActionDecideRequest:   true,
	},
	entity.RoleHRAdmin: {
		ActionViewAllRequests: true,
		ActionDecideRequest:   true,
		ActionViewSummary:     true,
	},
}

// Can is the single permission check every operation goes through. Unknown
// roles are denied everything.
func Can(role entity.Role, action Action) bool {
	return policy[role][action]
}
