package controllers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/adamanr/leave_service/internal/entity"
	"github.com/adamanr/leave_service/internal/store"
	"github.com/google/uuid"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

type LeaveController struct {
	deps *Dependens
}

func NewLeaveController(deps *Dependens) *LeaveController {
	return &LeaveController{
		deps: deps,
	}
}

// ListRequests returns the requests the actor may see: employees get their
// own, every other role gets the full set.
func (c *LeaveController) ListRequests(ctx context.Context, claims *entity.Claims) ([]entity.LeaveRequest, error) {
	if !Can(claims.Role, ActionViewAllRequests) {
		return c.deps.Store.ListRequestsByUser(ctx, claims.UserID)
	}

	return c.deps.Store.ListRequests(ctx)
}

// CreateRequest validates and files a new PENDING request and charges the
// actor's balance for the current plan year. The submitted working-day count
// must match the server's own Mon-Fri count of the range.
func (c *LeaveController) CreateRequest(ctx context.Context, claims *entity.Claims, req *entity.CreateLeaveRequest) (*entity.LeaveRequest, error) {
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown leave type %q", ErrInvalidInput, req.Type)
	}

	if req.EndDate.Before(req.StartDate.Time) {
		return nil, fmt.Errorf("%w: endDate before startDate", ErrInvalidInput)
	}

	days := entity.WorkingDays(req.StartDate, req.EndDate)
	if days == 0 {
		return nil, fmt.Errorf("%w: no working days in range", ErrInvalidInput)
	}

	if req.WorkingDays != days {
		c.deps.Logger.Warn("Working days mismatch",
			slog.Int("submitted", req.WorkingDays), slog.Int("computed", days))
		return nil, fmt.Errorf("%w: workingDays must be %d for this range", ErrInvalidInput, days)
	}

	request := &entity.LeaveRequest{
		ID:          "req-" + uuid.NewString(),
		UserID:      claims.UserID,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		WorkingDays: days,
		Reason:      req.Reason,
		Status:      entity.StatusPending,
		CreatedAt:   time.Now().UTC(),
		Requester:   c.requesterName(ctx, claims),
	}

	if err := c.deps.Store.CreateRequest(ctx, request); err != nil {
		c.deps.Logger.Error("Error creating request", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Leave request created",
		slog.String("id", request.ID),
		slog.String("user_id", request.UserID),
		slog.Int("working_days", request.WorkingDays),
	)

	return request, nil
}

// requesterName snapshots the actor's real name. Falls back to the email
// local-part when the profile cannot be loaded.
func (c *LeaveController) requesterName(ctx context.Context, claims *entity.Claims) entity.RequesterName {
	user, err := c.deps.Store.GetUserByID(ctx, claims.UserID)
	if err != nil {
		c.deps.Logger.Warn("Requester profile not found", slog.String("user_id", claims.UserID))
		return entity.RequesterName{FirstName: strings.SplitN(claims.Email, "@", 2)[0]}
	}

	return entity.RequesterName{FirstName: user.FirstName, LastName: user.LastName}
}

// DecideRequest applies an approve/reject decision. Approve resolves to
// HR_APPROVED for HR admins and MANAGER_APPROVED for managers; reject always
// resolves to REJECTED. A terminal status may be overwritten by a later
// decision.
func (c *LeaveController) DecideRequest(ctx context.Context, claims *entity.Claims, id, action string) (*entity.LeaveRequest, error) {
	if !Can(claims.Role, ActionDecideRequest) {
		c.deps.Logger.Warn("Decision forbidden",
			slog.String("role", string(claims.Role)), slog.String("request_id", id))
		return nil, ErrForbidden
	}

	var status entity.LeaveStatus
	switch action {
	case ActionApprove:
		if claims.Role == entity.RoleHRAdmin {
			status = entity.StatusHRApproved
		} else {
			status = entity.StatusManagerApproved
		}
	case ActionReject:
		status = entity.StatusRejected
	default:
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, action)
	}

	updated, err := c.deps.Store.UpdateRequestStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}

		c.deps.Logger.Error("Error updating request", slog.String("error", err.Error()))
		return nil, err
	}

	c.deps.Logger.Info("Leave request decided",
		slog.String("id", id),
		slog.String("status", string(status)),
		slog.String("decided_by", claims.UserID),
	)

	return updated, nil
}

// GetBalance reports the actor's entitlement for the current plan year. Users
// without a balance record get the default entitlement. Remaining is not
// clamped and may go negative.
func (c *LeaveController) GetBalance(ctx context.Context, claims *entity.Claims) (*entity.BalanceResponse, error) {
	year := time.Now().Year()

	balance, err := c.deps.Store.GetBalance(ctx, claims.UserID, year)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &entity.BalanceResponse{
				TotalDays: entity.DefaultTotalDays,
				UsedDays:  0,
				Remaining: entity.DefaultTotalDays,
			}, nil
		}

		c.deps.Logger.Error("Error querying balance", slog.String("error", err.Error()))
		return nil, err
	}

	return &entity.BalanceResponse{
		TotalDays: balance.TotalDays,
		UsedDays:  balance.UsedDays,
		Remaining: balance.TotalDays - balance.UsedDays,
	}, nil
}

// GetSummary aggregates request counts for HR. APPROVED is the union of the
// two approved statuses. Only vacation and sick leave are broken out by type.
func (c *LeaveController) GetSummary(ctx context.Context, claims *entity.Claims) (*entity.Summary, error) {
	if !Can(claims.Role, ActionViewSummary) {
		c.deps.Logger.Warn("Summary forbidden", slog.String("role", string(claims.Role)))
		return nil, ErrForbidden
	}

	requests, err := c.deps.Store.ListRequests(ctx)
	if err != nil {
		c.deps.Logger.Error("Error querying requests", slog.String("error", err.Error()))
		return nil, err
	}

	summary := &entity.Summary{TotalRequests: len(requests)}
	for i := range requests {
		switch requests[i].Status {
		case entity.StatusPending:
			summary.ByStatus.Pending++
		case entity.StatusManagerApproved, entity.StatusHRApproved:
			summary.ByStatus.Approved++
		case entity.StatusRejected:
			summary.ByStatus.Rejected++
		}

		switch requests[i].Type {
		case entity.TypeVacation:
			summary.ByType.Vacation++
		case entity.TypeSickLeave:
			summary.ByType.Sick++
		}
	}

	return summary, nil
}
