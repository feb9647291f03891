package store

import (
	"context"
	"errors"

	"github.com/adamanr/leave_service/internal/entity"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Store is the persistence boundary for users, leave requests and balances.
// CreateRequest also charges the owner's balance for the request's plan year
// inside the same mutation, so racing writers cannot split the two updates.
type Store interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByID(ctx context.Context, id string) (*entity.User, error)

	ListRequests(ctx context.Context) ([]entity.LeaveRequest, error)
	ListRequestsByUser(ctx context.Context, userID string) ([]entity.LeaveRequest, error)
	CreateRequest(ctx context.Context, req *entity.LeaveRequest) error
	UpdateRequestStatus(ctx context.Context, id string, status entity.LeaveStatus) (*entity.LeaveRequest, error)

	GetBalance(ctx context.Context, userID string, year int) (*entity.LeaveBalance, error)
}
