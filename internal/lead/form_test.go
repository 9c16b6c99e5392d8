package lead

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyCallForm() Form {
	return Form{
		FirstName:   "Steven",
		DialCode:    "+1",
		Phone:       "(555) 000-1234",
		CompanyName: "Acme Inc.",
		CompanySize: Size11To50,
		Consent:     true,
		Mode:        ModeCall,
	}
}

func readyScheduleForm() Form {
	f := readyCallForm()
	f.Mode = ModeSchedule
	f.Date = "2026-10-20"
	f.Time = TimeOfDay{Hour: "09", Minute: "30", Period: PM}
	f.Timezone = "Europe/London"
	return f
}

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

func TestFormReady(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Form)
		want   bool
	}{
		{"complete call form", func(f *Form) {}, true},
		{"missing name", func(f *Form) { f.FirstName = "" }, false},
		{"missing phone", func(f *Form) { f.Phone = "" }, false},
		{"missing company", func(f *Form) { f.CompanyName = "" }, false},
		{"missing size", func(f *Form) { f.CompanySize = "" }, false},
		{"no consent", func(f *Form) { f.Consent = false }, false},
		{"schedule without date", func(f *Form) { f.Mode = ModeSchedule; f.Time = TimeOfDay{"09", "30", AM} }, false},
		{"schedule without minute", func(f *Form) { f.Mode = ModeSchedule; f.Date = "2026-10-20"; f.Time = TimeOfDay{"09", "", AM} }, false},
		{"schedule complete", func(f *Form) { f.Mode = ModeSchedule; f.Date = "2026-10-20"; f.Time = TimeOfDay{"09", "30", AM} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := readyCallForm()
			tt.mutate(&f)
			assert.Equal(t, tt.want, f.Ready())
		})
	}
}

func TestFormNormalize(t *testing.T) {
	f := Form{
		FirstName:   "  Steven ",
		DialCode:    "44",
		Phone:       " +44 (20) 7946-0958 ext",
		CompanyName: " Acme ",
		Mode:        "bogus",
		Time:        TimeOfDay{Hour: "7", Minute: "75", Period: "pm"},
	}.Normalize()

	assert.Equal(t, "Steven", f.FirstName)
	assert.Equal(t, "Acme", f.CompanyName)
	assert.Equal(t, "+44", f.DialCode)
	assert.Equal(t, "+44 (20) 7946-0958", f.Phone)
	assert.Equal(t, ModeCall, f.Mode)
	assert.Equal(t, TimeOfDay{Hour: "07", Minute: "59", Period: PM}, f.Time)
}

func TestFormFullPhone(t *testing.T) {
	tests := []struct {
		name     string
		dialCode string
		phone    string
		want     string
	}{
		{"us number", "+1", "(555) 000-1234", "+15550001234"},
		{"uk trunk zero dropped", "+44", "07946 095858", "+447946095858"},
		{"already international", "+1", "+44 7946 095858", "+447946095858"},
		{"empty phone", "+1", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Form{DialCode: tt.dialCode, Phone: tt.phone}
			assert.Equal(t, tt.want, f.FullPhone())
		})
	}
}

func TestFormBuild_CallNow(t *testing.T) {
	req, err := readyCallForm().Normalize().Build(fixedNow)
	require.NoError(t, err)

	assert.Equal(t, LeadRequest{
		Name:        "Steven",
		Phone:       "+15550001234",
		CompanyName: "Acme Inc.",
		CompanySize: Size11To50,
		CallType:    CallNow,
	}, req)
	assert.NoError(t, req.Validate())
}

func TestFormBuild_Schedule(t *testing.T) {
	req, err := readyScheduleForm().Normalize().Build(fixedNow)
	require.NoError(t, err)

	assert.Equal(t, CallSchedule, req.CallType)
	assert.Equal(t, "Europe/London", req.Timezone)
	assert.Equal(t, "2026-10-20T21:30:00+01:00", req.ScheduledAt)

	at, err := time.Parse(time.RFC3339, req.ScheduledAt)
	require.NoError(t, err)
	assert.Equal(t, 21, at.Hour())
	assert.Equal(t, 30, at.Minute())
	assert.NoError(t, req.Validate())
}

func TestFormBuild_MidnightAM(t *testing.T) {
	f := readyScheduleForm()
	f.Time = TimeOfDay{Hour: "12", Minute: "00", Period: AM}
	f.Timezone = ""

	req, err := f.Normalize().Build(fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-20T00:00:00Z", req.ScheduledAt)
	assert.Equal(t, "UTC", req.Timezone)
}

func TestFormBuild_Errors(t *testing.T) {
	t.Run("not ready", func(t *testing.T) {
		f := readyCallForm()
		f.Consent = false
		_, err := f.Build(fixedNow)
		assert.ErrorIs(t, err, ErrNotReady)
	})

	t.Run("past date", func(t *testing.T) {
		f := readyScheduleForm()
		f.Date = "2026-10-15"
		_, err := f.Build(fixedNow)
		assert.ErrorIs(t, err, ErrPastDate)
	})

	t.Run("today is allowed", func(t *testing.T) {
		f := readyScheduleForm()
		f.Date = "2026-10-16"
		_, err := f.Build(fixedNow)
		assert.NoError(t, err)
	})

	t.Run("malformed date", func(t *testing.T) {
		f := readyScheduleForm()
		f.Date = "20/10/2026"
		_, err := f.Build(fixedNow)
		assert.Error(t, err)
	})
}

func TestFormDisplayDate(t *testing.T) {
	assert.Equal(t, "Tuesday, October 20", readyScheduleForm().DisplayDate())
}

func TestLeadRequestValidate(t *testing.T) {
	base := LeadRequest{
		Name:        "Steven",
		Phone:       "+15550001234",
		CompanyName: "Acme",
		CompanySize: Size100Plus,
		CallType:    CallNow,
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base.Validate())
	})

	t.Run("unknown size and bad phone", func(t *testing.T) {
		r := base
		r.CompanySize = "12-13"
		r.Phone = "555"
		err := r.Validate()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "oneof", verr.Fields["CompanySize"])
		assert.Equal(t, "e164", verr.Fields["Phone"])
	})

	t.Run("schedule requires time and zone", func(t *testing.T) {
		r := base
		r.CallType = CallSchedule
		err := r.Validate()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "ScheduledAt")
		assert.Contains(t, verr.Fields, "Timezone")
	})

	t.Run("call now must not carry a schedule", func(t *testing.T) {
		r := base
		r.ScheduledAt = "2026-10-20T21:30:00Z"
		err := r.Validate()

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "excluded_if", verr.Fields["ScheduledAt"])
	})
}

func TestCompanySize(t *testing.T) {
	assert.True(t, Size20To50.Valid())
	assert.False(t, CompanySize("1000+").Valid())
	assert.Equal(t, "51-99 employees", Size51To99.Label())
	assert.Len(t, CompanySizes, 6)
}
