package lead

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"
)

// Mode is the Call Now / Schedule toggle of the form.
type Mode string

const (
	ModeCall     Mode = "call"
	ModeSchedule Mode = "schedule"
)

// DateLayout is the format of the calendar date field.
const DateLayout = "2006-01-02"

// DefaultDialCode is preselected in the country code select.
const DefaultDialCode = "+1"

var (
	// ErrNotReady means a required field for the active mode is empty.
	ErrNotReady = errors.New("lead form is missing required fields")

	// ErrPastDate means the picked demo date is before today.
	ErrPastDate = errors.New("scheduled date is in the past")
)

// Form is the raw state of the lead-capture form as the visitor left it.
type Form struct {
	FirstName   string      `json:"first_name"`
	DialCode    string      `json:"dial_code"`
	Phone       string      `json:"phone"`
	CompanyName string      `json:"company_name"`
	CompanySize CompanySize `json:"company_size"`
	Consent     bool        `json:"consent"`
	Mode        Mode        `json:"mode"`
	Date        string      `json:"date"`
	Time        TimeOfDay   `json:"time"`
	Timezone    string      `json:"timezone"`
}

// NewForm returns a blank form in Call Now mode.
func NewForm() Form {
	return Form{
		DialCode: DefaultDialCode,
		Mode:     ModeCall,
		Time:     TimeOfDay{Period: AM},
	}
}

// Scheduling reports whether the form is in Schedule mode.
func (f Form) Scheduling() bool {
	return f.Mode == ModeSchedule
}

// Normalize trims text fields and sanitizes the phone and time inputs.
func (f Form) Normalize() Form {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.CompanyName = strings.TrimSpace(f.CompanyName)
	f.Phone = sanitizePhone(f.Phone)
	f.DialCode = sanitizeDialCode(f.DialCode)
	f.CompanySize = CompanySize(strings.TrimSpace(string(f.CompanySize)))
	f.Date = strings.TrimSpace(f.Date)
	f.Timezone = strings.TrimSpace(f.Timezone)
	f.Time = f.Time.Normalize()
	if f.Mode != ModeSchedule {
		f.Mode = ModeCall
	}
	return f
}

// Ready reports whether every required field for the active mode is filled.
func (f Form) Ready() bool {
	if f.FirstName == "" || f.Phone == "" || f.CompanyName == "" || f.CompanySize == "" || !f.Consent {
		return false
	}
	if f.Scheduling() {
		return f.Date != "" && f.Time.Complete()
	}
	return true
}

// FullPhone joins the dial code and the local digits into a dialable number.
// A phone typed with its own leading "+" is taken as already international.
func (f Form) FullPhone() string {
	digits := onlyDigits(f.Phone)
	if digits == "" {
		return ""
	}
	if strings.HasPrefix(strings.TrimSpace(f.Phone), "+") {
		return "+" + digits
	}
	return "+" + onlyDigits(f.DialCode) + strings.TrimLeft(digits, "0")
}

// Location resolves the visitor's IANA zone, falling back to UTC.
func (f Form) Location() *time.Location {
	if f.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ScheduledTime combines the picked date, the 24-hour clock and the visitor's zone.
func (f Form) ScheduledTime() (time.Time, error) {
	loc := f.Location()
	day, err := time.ParseInLocation(DateLayout, f.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", f.Date, err)
	}
	hour, minute, err := f.Time.Clock24()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc), nil
}

// Build turns a ready form into the request sent to the call service.
// now is used to reject schedule dates before today in the visitor's zone.
func (f Form) Build(now time.Time) (LeadRequest, error) {
	if !f.Ready() {
		return LeadRequest{}, ErrNotReady
	}

	req := LeadRequest{
		Name:        f.FirstName,
		Phone:       f.FullPhone(),
		CompanyName: f.CompanyName,
		CompanySize: f.CompanySize,
		CallType:    CallNow,
	}
	if !f.Scheduling() {
		return req, nil
	}

	at, err := f.ScheduledTime()
	if err != nil {
		return LeadRequest{}, err
	}
	loc := f.Location()
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	if at.Before(today) {
		return LeadRequest{}, ErrPastDate
	}

	req.CallType = CallSchedule
	req.ScheduledAt = at.Format(time.RFC3339)
	req.Timezone = loc.String()
	return req, nil
}

// DisplayDate renders the picked date as "Monday, October 20".
func (f Form) DisplayDate() string {
	day, err := time.Parse(DateLayout, f.Date)
	if err != nil {
		return f.Date
	}
	return day.Format("Monday, January 2")
}

func sanitizePhone(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == ' ', r == '-', r == '(', r == ')':
			b.WriteRune(r)
		case r == '+' && i == 0:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func sanitizeDialCode(raw string) string {
	digits := onlyDigits(raw)
	if digits == "" {
		return DefaultDialCode
	}
	return "+" + digits
}

func onlyDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}
