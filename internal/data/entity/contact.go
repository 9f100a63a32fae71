package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a lead submitted through the public contact form.
type Contact struct {
	BaseSimple
	ProjectID *uuid.UUID `db:"project_id"`
	Name      string     `db:"name"`
	Email     string     `db:"email"`
	Phone     string     `db:"phone"`
	Subject   string     `db:"subject"`
	Message   string     `db:"message"`
	Read      bool       `db:"read"`

	ProjectTitle *string `db:"project_title"`
}

type LeadPeriod string

const (
	PeriodToday     LeadPeriod = "today"
	PeriodYesterday LeadPeriod = "yesterday"
	PeriodWeek      LeadPeriod = "week"
	PeriodMonth     LeadPeriod = "month"
	PeriodAll       LeadPeriod = "all"
)

// TimeRange is a half-open [From, To) window; nil bounds are open.
type TimeRange struct {
	From *time.Time
	To   *time.Time
}

// LeadWindows holds the period boundaries used by stats.
type LeadWindows struct {
	TodayStart     time.Time
	YesterdayStart time.Time
	WeekStart      time.Time
	MonthStart     time.Time
}

// TomorrowStart is the exclusive upper bound of the today bucket.
func (w LeadWindows) TomorrowStart() time.Time {
	return w.TodayStart.AddDate(0, 0, 1)
}

type LeadStats struct {
	Today     int64 `db:"today"`
	Yesterday int64 `db:"yesterday"`
	LastWeek  int64 `db:"last_week"`
	LastMonth int64 `db:"last_month"`
	Total     int64 `db:"total"`
	Unread    int64 `db:"unread"`
}

type ProjectEnquiry struct {
	BaseSimple
	ProjectID  uuid.UUID  `db:"project_id"`
	IdentityID *uuid.UUID `db:"identity_id"`
	Name       string     `db:"name"`
	Mobile     string     `db:"mobile"`
	Subject    string     `db:"subject"`
	Message    string     `db:"message"`
}
