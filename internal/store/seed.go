package store

import (
	"time"

	"github.com/adamanr/leave_service/internal/entity"
	"golang.org/x/crypto/bcrypt"
)

// DemoSeed returns the demo data set the service ships with: three users (one
// per role), one already-approved request and one balance record for its
// owner. Passwords are all "demo123".
func DemoSeed() (users []entity.User, requests []entity.LeaveRequest, balances []entity.LeaveBalance, err error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, nil, err
	}

	it := entity.Department{ID: "1", Name: "IT"}
	hr := entity.Department{ID: "2", Name: "HR"}

	users = []entity.User{
		{
			ID:           "1",
			Email:        "anna@firma.pl",
			PasswordHash: string(hash),
			FirstName:    "Anna",
			LastName:     "Kowalska",
			Role:         entity.RoleEmployee,
			Department:   &it,
		},
		{
			ID:           "2",
			Email:        "tomek@firma.pl",
			PasswordHash: string(hash),
			FirstName:    "Tomek",
			LastName:     "Nowak",
			Role:         entity.RoleManager,
			Department:   &it,
		},
		{
			ID:           "3",
			Email:        "kasia@firma.pl",
			PasswordHash: string(hash),
			FirstName:    "Kasia",
			LastName:     "Lewandowska",
			Role:         entity.RoleHRAdmin,
			Department:   &hr,
		},
	}

	requests = []entity.LeaveRequest{
		{
			ID:          "req-1",
			UserID:      "1",
			Type:        entity.TypeVacation,
			StartDate:   entity.NewDate(2026, time.March, 15),
			EndDate:     entity.NewDate(2026, time.March, 20),
			WorkingDays: 6,
			Reason:      "Wyjazd na narty",
			Status:      entity.StatusHRApproved,
			CreatedAt:   time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
			Requester:   entity.RequesterName{FirstName: "Anna", LastName: "Kowalska"},
		},
	}

	balances = []entity.LeaveBalance{
		{UserID: "1", Year: 2026, TotalDays: 26, UsedDays: 6},
	}

	return users, requests, balances, nil
}
