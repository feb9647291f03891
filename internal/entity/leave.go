package entity

import (
	"database/sql/driver"
	"fmt"
	"time"
)

type LeaveType string

const (
	TypeVacation   LeaveType = "VACATION"
	TypeSickLeave  LeaveType = "SICK_LEAVE"
	TypeRemoteWork LeaveType = "REMOTE_WORK"
	TypeParental   LeaveType = "PARENTAL"
	TypeTraining   LeaveType = "TRAINING"
	TypeOther      LeaveType = "OTHER"
)

func (t LeaveType) IsValid() bool {
	switch t {
	case TypeVacation, TypeSickLeave, TypeRemoteWork, TypeParental, TypeTraining, TypeOther:
		return true
	}

	return false
}

type LeaveStatus string

const (
	StatusPending         LeaveStatus = "PENDING"
	StatusManagerApproved LeaveStatus = "MANAGER_APPROVED"
	StatusHRApproved      LeaveStatus = "HR_APPROVED"
	StatusRejected        LeaveStatus = "REJECTED"
)

const DateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD on the wire.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}

	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date %s, expected YYYY-MM-DD", s)
	}

	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return err
		}

		*d = parsed
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// RequesterName is the denormalized name snapshot attached to a request.
type RequesterName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type LeaveRequest struct {
	ID          string        `json:"id"`
	UserID      string        `json:"userId"`
	Type        LeaveType     `json:"type"`
	StartDate   Date          `json:"startDate"`
	EndDate     Date          `json:"endDate"`
	WorkingDays int           `json:"workingDays"`
	Reason      string        `json:"reason,omitempty"`
	Status      LeaveStatus   `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	Requester   RequesterName `json:"user"`
}

type CreateLeaveRequest struct {
	Type        LeaveType `json:"type"`
	StartDate   Date      `json:"startDate"`
	EndDate     Date      `json:"endDate"`
	WorkingDays int       `json:"workingDays"`
	Reason      string    `json:"reason"`
}

// DefaultTotalDays is the entitlement reported when a user has no balance
// record for the plan year.
const DefaultTotalDays = 26

type LeaveBalance struct {
	UserID    string `json:"userId"`
	Year      int    `json:"year"`
	TotalDays int    `json:"totalDays"`
	UsedDays  int    `json:"usedDays"`
}

type BalanceResponse struct {
	TotalDays int `json:"totalDays"`
	UsedDays  int `json:"usedDays"`
	Remaining int `json:"remaining"`
}

type StatusCounts struct {
	Pending  int `json:"PENDING"`
	Approved int `json:"APPROVED"`
	Rejected int `json:"REJECTED"`
}

type TypeCounts struct {
	Vacation int `json:"VACATION"`
	Sick     int `json:"SICK"`
}

type Summary struct {
	TotalRequests int          `json:"totalRequests"`
	ByStatus      StatusCounts `json:"byStatus"`
	ByType        TypeCounts   `json:"byType"`
}

// WorkingDays counts the Mon-Fri calendar days in the inclusive [start, end]
// range. An inverted range counts zero days.
func WorkingDays(start, end Date) int {
	if end.Before(start.Time) {
		return 0
	}

	days := 0
	for d := start.Time; !d.After(end.Time); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			days++
		}
	}

	return days
}
