package lead

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is the AM/PM half of a 12-hour clock reading.
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// ParsePeriod accepts "am"/"pm" in any case. Anything else is AM.
func ParsePeriod(s string) Period {
	if strings.EqualFold(strings.TrimSpace(s), string(PM)) {
		return PM
	}
	return AM
}

// Toggle flips AM and PM.
func (p Period) Toggle() Period {
	if p == PM {
		return AM
	}
	return PM
}

// TimeOfDay is the segmented hour/minute/period input of the schedule form.
type TimeOfDay struct {
	Hour   string `json:"hour"`
	Minute string `json:"minute"`
	Period Period `json:"period"`
}

// SanitizeHour keeps at most two digits and caps the value at 12.
func SanitizeHour(raw string) string {
	return clampDigits(raw, 12)
}

// SanitizeMinute keeps at most two digits and caps the value at 59.
func SanitizeMinute(raw string) string {
	return clampDigits(raw, 59)
}

func clampDigits(raw string, max int) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, raw)
	if digits == "" {
		return ""
	}
	if len(digits) > 2 {
		digits = digits[:2]
	}
	if n, _ := strconv.Atoi(digits); n > max {
		return strconv.Itoa(max)
	}
	return digits
}

// PadOnBlur left-pads a single-digit value to two characters.
func PadOnBlur(v string) string {
	if v == "" {
		return ""
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return v
	}
	if n >= 0 && n <= 9 {
		return fmt.Sprintf("%02d", n)
	}
	return v
}

// Normalize applies the same sanitation the form inputs apply on change and blur.
func (t TimeOfDay) Normalize() TimeOfDay {
	return TimeOfDay{
		Hour:   PadOnBlur(SanitizeHour(t.Hour)),
		Minute: PadOnBlur(SanitizeMinute(t.Minute)),
		Period: ParsePeriod(string(t.Period)),
	}
}

// Complete reports whether both hour and minute are set.
func (t TimeOfDay) Complete() bool {
	return t.Hour != "" && t.Minute != ""
}

// Clock24 converts the reading to 24-hour wall-clock hour and minute.
// 12 AM is midnight; PM adds twelve hours below 12.
func (t TimeOfDay) Clock24() (hour, minute int, err error) {
	hour, err = strconv.Atoi(t.Hour)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid hour %q: %w", t.Hour, err)
	}
	minute, err = strconv.Atoi(t.Minute)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid minute %q: %w", t.Minute, err)
	}
	if hour < 0 || hour > 12 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %s out of range", t)
	}

	switch {
	case t.Period == AM && hour == 12:
		hour = 0
	case t.Period == PM && hour < 12:
		hour += 12
	}
	return hour, minute, nil
}

// String renders "HH:MM AM", or "" while incomplete.
func (t TimeOfDay) String() string {
	if !t.Complete() {
		return ""
	}
	p := t.Period
	if p == "" {
		p = AM
	}
	return fmt.Sprintf("%s:%s %s", t.Hour, t.Minute, p)
}
