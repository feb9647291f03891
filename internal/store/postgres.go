package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adamanr/leave_service/internal/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx.Conn the Postgres store needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Postgres struct {
	db     DB
	logger *slog.Logger
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db DB, logger *slog.Logger) *Postgres {
	return &Postgres{db: db, logger: logger}
}

const userColumns = `id, email, password, first_name, last_name, role, department_id, department_name`

func (p *Postgres) scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	var deptID, deptName *string

	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Role, &deptID, &deptName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		p.logger.Error("Error scanning user", slog.String("error", err.Error()))
		return nil, err
	}

	if deptID != nil && deptName != nil {
		u.Department = &entity.Department{ID: *deptID, Name: *deptName}
	}

	return &u, nil
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	row := p.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return p.scanUser(row)
}

func (p *Postgres) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	row := p.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return p.scanUser(row)
}

const requestColumns = `id, user_id, type, start_date, end_date, working_days, reason, status, created_at, requester_first_name, requester_last_name`

func scanRequests(rows pgx.Rows) ([]entity.LeaveRequest, error) {
	defer rows.Close()

	out := make([]entity.LeaveRequest, 0)
	for rows.Next() {
		var r entity.LeaveRequest
		if err := rows.Scan(&r.ID, &r.UserID, &r.Type, &r.StartDate, &r.EndDate, &r.WorkingDays,
			&r.Reason, &r.Status, &r.CreatedAt, &r.Requester.FirstName, &r.Requester.LastName); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		out = append(out, r)
	}

	return out, rows.Err()
}

func (p *Postgres) ListRequests(ctx context.Context) ([]entity.LeaveRequest, error) {
	rows, err := p.db.Query(ctx, `SELECT `+requestColumns+` FROM leave_requests ORDER BY created_at, id`)
	if err != nil {
		p.logger.Error("Error querying requests", slog.String("error", err.Error()))
		return nil, err
	}

	return scanRequests(rows)
}

func (p *Postgres) ListRequestsByUser(ctx context.Context, userID string) ([]entity.LeaveRequest, error) {
	rows, err := p.db.Query(ctx, `SELECT `+requestColumns+` FROM leave_requests WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		p.logger.Error("Error querying requests", slog.String("error", err.Error()))
		return nil, err
	}

	return scanRequests(rows)
}

func (p *Postgres) CreateRequest(ctx context.Context, req *entity.LeaveRequest) error {
	tx, err := p.db.Begin(ctx)
	if err != nil {
		p.logger.Error("Error beginning transaction", slog.String("error", err.Error()))
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `INSERT INTO leave_requests (` + requestColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if _, err = tx.Exec(ctx, query,
		req.ID, req.UserID, req.Type, req.StartDate, req.EndDate, req.WorkingDays,
		req.Reason, req.Status, req.CreatedAt, req.Requester.FirstName, req.Requester.LastName,
	); err != nil {
		p.logger.Error("Error inserting request", slog.String("error", err.Error()))
		return err
	}

	// No balance row for the plan year is a silent no-op, as on the demo
	// driver.
	if _, err = tx.Exec(ctx,
		`UPDATE leave_balances SET used_days = used_days + $1 WHERE user_id = $2 AND year = $3`,
		req.WorkingDays, req.UserID, req.CreatedAt.Year(),
	); err != nil {
		p.logger.Error("Error charging balance", slog.String("error", err.Error()))
		return err
	}

	return tx.Commit(ctx)
}

func (p *Postgres) UpdateRequestStatus(ctx context.Context, id string, status entity.LeaveStatus) (*entity.LeaveRequest, error) {
	query := `UPDATE leave_requests SET status = $1 WHERE id = $2
              RETURNING ` + requestColumns

	rows, err := p.db.Query(ctx, query, status, id)
	if err != nil {
		p.logger.Error("Error updating request status", slog.String("error", err.Error()))
		return nil, err
	}

	updated, err := scanRequests(rows)
	if err != nil {
		return nil, err
	}

	if len(updated) == 0 {
		return nil, ErrNotFound
	}

	return &updated[0], nil
}

func (p *Postgres) GetBalance(ctx context.Context, userID string, year int) (*entity.LeaveBalance, error) {
	var b entity.LeaveBalance

	err := p.db.QueryRow(ctx,
		`SELECT user_id, year, total_days, used_days FROM leave_balances WHERE user_id = $1 AND year = $2`,
		userID, year,
	).Scan(&b.UserID, &b.Year, &b.TotalDays, &b.UsedDays)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		p.logger.Error("Error querying balance", slog.String("error", err.Error()))
		return nil, err
	}

	return &b, nil
}
