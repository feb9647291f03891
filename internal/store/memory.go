package store

import (
	"context"
	"sync"

	"github.com/adamanr/leave_service/internal/entity"
)

// Memory keeps all records in process memory. Mutations are serialized by a
// single lock, which is the whole concurrency story for the demo driver.
type Memory struct {
	mu       sync.RWMutex
	users    []entity.User
	requests []entity.LeaveRequest
	balances []entity.LeaveBalance
}

var _ Store = (*Memory)(nil)

func NewMemory(users []entity.User, requests []entity.LeaveRequest, balances []entity.LeaveBalance) *Memory {
	return &Memory{
		users:    users,
		requests: requests,
		balances: balances,
	}
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}

	return nil, ErrNotFound
}

func (m *Memory) GetUserByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}

	return nil, ErrNotFound
}

func (m *Memory) ListRequests(_ context.Context) ([]entity.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.LeaveRequest, len(m.requests))
	copy(out, m.requests)

	return out, nil
}

func (m *Memory) ListRequestsByUser(_ context.Context, userID string) ([]entity.LeaveRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]entity.LeaveRequest, 0)
	for i := range m.requests {
		if m.requests[i].UserID == userID {
			out = append(out, m.requests[i])
		}
	}

	return out, nil
}

func (m *Memory) CreateRequest(_ context.Context, req *entity.LeaveRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, *req)

	year := req.CreatedAt.Year()
	for i := range m.balances {
		if m.balances[i].UserID == req.UserID && m.balances[i].Year == year {
			m.balances[i].UsedDays += req.WorkingDays
			break
		}
	}

	return nil
}

func (m *Memory) UpdateRequestStatus(_ context.Context, id string, status entity.LeaveStatus) (*entity.LeaveRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.requests {
		if m.requests[i].ID == id {
			m.requests[i].Status = status
			updated := m.requests[i]
			return &updated, nil
		}
	}

	return nil, ErrNotFound
}

func (m *Memory) GetBalance(_ context.Context, userID string, year int) (*entity.LeaveBalance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := range m.balances {
		if m.balances[i].UserID == userID && m.balances[i].Year == year {
			b := m.balances[i]
			return &b, nil
		}
	}

	return nil, ErrNotFound
}
