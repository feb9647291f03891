package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/adamanr/leave_service/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveController_ListRequests(t *testing.T) {
	requests := []entity.LeaveRequest{
		pendingRequest("req-1", "1"),
		pendingRequest("req-2", "2"),
		pendingRequest("req-3", "1"),
	}

	tests := []struct {
		name    string
		user    int
		wantIDs []string
	}{
		{name: "employee sees only own requests", user: 0, wantIDs: []string{"req-1", "req-3"}},
		{name: "manager sees all requests", user: 1, wantIDs: []string{"req-1", "req-2", "req-3"}},
		{name: "hr admin sees all requests", user: 2, wantIDs: []string{"req-1", "req-2", "req-3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := testUsers(t)
			deps := newTestDeps(t, users, requests, nil)
			c := NewLeaveController(deps)

			got, err := c.ListRequests(context.Background(), claimsFor(users[tt.user]))
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for i := range got {
				ids = append(ids, got[i].ID)
			}

			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestLeaveController_CreateRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     entity.CreateLeaveRequest
		wantErr error
	}{
		{
			name: "valid full week",
			req: entity.CreateLeaveRequest{
				Type:        entity.TypeVacation,
				StartDate:   entity.NewDate(2026, time.March, 16),
				EndDate:     entity.NewDate(2026, time.March, 20),
				WorkingDays: 5,
				Reason:      "Wyjazd",
			},
		},
		{
			name: "working days mismatch",
			req: entity.CreateLeaveRequest{
				Type:        entity.TypeVacation,
				StartDate:   entity.NewDate(2026, time.March, 16),
				EndDate:     entity.NewDate(2026, time.March, 20),
				WorkingDays: 7,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "weekend only range",
			req: entity.CreateLeaveRequest{
				Type:        entity.TypeSickLeave,
				StartDate:   entity.NewDate(2026, time.March, 14),
				EndDate:     entity.NewDate(2026, time.March, 15),
				WorkingDays: 0,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "inverted range",
			req: entity.CreateLeaveRequest{
				Type:        entity.TypeVacation,
				StartDate:   entity.NewDate(2026, time.March, 20),
				EndDate:     entity.NewDate(2026, time.March, 16),
				WorkingDays: 5,
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "unknown leave type",
			req: entity.CreateLeaveRequest{
				Type:        "SABBATICAL",
				StartDate:   entity.NewDate(2026, time.March, 16),
				EndDate:     entity.NewDate(2026, time.March, 20),
				WorkingDays: 5,
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := testUsers(t)
			deps := newTestDeps(t, users, nil, nil)
			c := NewLeaveController(deps)

			got, err := c.CreateRequest(context.Background(), claimsFor(users[0]), &tt.req)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "1", got.UserID)
			assert.Equal(t, entity.StatusPending, got.Status)
			assert.Equal(t, 5, got.WorkingDays)
			assert.Equal(t, entity.RequesterName{FirstName: "Anna", LastName: "Kowalska"}, got.Requester)
			assert.False(t, got.CreatedAt.IsZero())
		})
	}
}

func TestLeaveController_CreateRequest_ChargesBalance(t *testing.T) {
	year := time.Now().Year()
	users := testUsers(t)
	balances := []entity.LeaveBalance{
		{UserID: "1", Year: year, TotalDays: 26, UsedDays: 6},
	}

	deps := newTestDeps(t, users, nil, balances)
	c := NewLeaveController(deps)

	req := entity.CreateLeaveRequest{
		Type:        entity.TypeVacation,
		StartDate:   entity.NewDate(2026, time.March, 16),
		EndDate:     entity.NewDate(2026, time.March, 23),
		WorkingDays: 6,
	}

	_, err := c.CreateRequest(context.Background(), claimsFor(users[0]), &req)
	require.NoError(t, err)

	balance, err := c.GetBalance(context.Background(), claimsFor(users[0]))
	require.NoError(t, err)
	assert.Equal(t, 26, balance.TotalDays)
	assert.Equal(t, 12, balance.UsedDays)
	assert.Equal(t, 14, balance.Remaining)

	// No balance record for the manager: creation still succeeds and the
	// default entitlement stays untouched.
	_, err = c.CreateRequest(context.Background(), claimsFor(users[1]), &req)
	require.NoError(t, err)

	managerBalance, err := c.GetBalance(context.Background(), claimsFor(users[1]))
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultTotalDays, managerBalance.TotalDays)
	assert.Equal(t, 0, managerBalance.UsedDays)
	assert.Equal(t, entity.DefaultTotalDays, managerBalance.Remaining)
}

func TestLeaveController_DecideRequest(t *testing.T) {
	tests := []struct {
		name       string
		user       int
		id         string
		action     string
		wantStatus entity.LeaveStatus
		wantErr    error
	}{
		{name: "manager approve", user: 1, id: "req-1", action: "approve", wantStatus: entity.StatusManagerApproved},
		{name: "hr admin approve", user: 2, id: "req-1", action: "approve", wantStatus: entity.StatusHRApproved},
		{name: "manager reject", user: 1, id: "req-1", action: "reject", wantStatus: entity.StatusRejected},
		{name: "hr admin reject", user: 2, id: "req-1", action: "reject", wantStatus: entity.StatusRejected},
		{name: "employee forbidden", user: 0, id: "req-1", action: "approve", wantErr: ErrForbidden},
		{name: "unknown request", user: 1, id: "req-404", action: "approve", wantErr: ErrNotFound},
		{name: "unknown action", user: 1, id: "req-1", action: "escalate", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := testUsers(t)
			requests := []entity.LeaveRequest{pendingRequest("req-1", "1")}
			deps := newTestDeps(t, users, requests, nil)
			c := NewLeaveController(deps)

			got, err := c.DecideRequest(context.Background(), claimsFor(users[tt.user]), tt.id, tt.action)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				// The stored request keeps its status on a failed decision.
				all, listErr := deps.Store.ListRequests(context.Background())
				require.NoError(t, listErr)
				assert.Equal(t, entity.StatusPending, all[0].Status)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestLeaveController_DecideRequest_OverwritesTerminalStatus(t *testing.T) {
	users := testUsers(t)
	requests := []entity.LeaveRequest{pendingRequest("req-1", "1")}
	deps := newTestDeps(t, users, requests, nil)
	c := NewLeaveController(deps)

	got, err := c.DecideRequest(context.Background(), claimsFor(users[1]), "req-1", "reject")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)

	got, err = c.DecideRequest(context.Background(), claimsFor(users[2]), "req-1", "approve")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusHRApproved, got.Status)
}

func TestLeaveController_GetSummary(t *testing.T) {
	users := testUsers(t)

	requests := []entity.LeaveRequest{
		pendingRequest("req-1", "1"),
		pendingRequest("req-2", "1"),
		pendingRequest("req-3", "2"),
		pendingRequest("req-4", "2"),
		pendingRequest("req-5", "3"),
	}
	requests[1].Status = entity.StatusManagerApproved
	requests[2].Status = entity.StatusHRApproved
	requests[3].Status = entity.StatusRejected
	requests[3].Type = entity.TypeSickLeave
	requests[4].Type = entity.TypeRemoteWork

	deps := newTestDeps(t, users, requests, nil)
	c := NewLeaveController(deps)

	for _, user := range []int{0, 1} {
		_, err := c.GetSummary(context.Background(), claimsFor(users[user]))
		assert.ErrorIs(t, err, ErrForbidden)
	}

	summary, err := c.GetSummary(context.Background(), claimsFor(users[2]))
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalRequests)
	assert.Equal(t, 2, summary.ByStatus.Pending)
	assert.Equal(t, 2, summary.ByStatus.Approved)
	assert.Equal(t, 1, summary.ByStatus.Rejected)
	assert.Equal(t, 3, summary.ByType.Vacation)
	assert.Equal(t, 1, summary.ByType.Sick)
}
