package lead

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CallType selects between an immediate call and a scheduled demo.
type CallType string

const (
	CallNow      CallType = "NOW"
	CallSchedule CallType = "SCHEDULE"
)

// LeadRequest is the payload POSTed to the call service. It is built fresh for
// every submission and never stored.
type LeadRequest struct {
	Name        string      `json:"name" validate:"required,max=100"`
	Phone       string      `json:"phone" validate:"required,e164"`
	CompanyName string      `json:"company_name" validate:"required,max=200"`
	CompanySize CompanySize `json:"company_size" validate:"required,oneof=0-5 5-9 11-50 20-50 51-99 100+"`
	CallType    CallType    `json:"call_type" validate:"required,oneof=NOW SCHEDULE"`
	ScheduledAt string      `json:"scheduled_at,omitempty" validate:"required_if=CallType SCHEDULE,excluded_if=CallType NOW"`
	Timezone    string      `json:"timezone,omitempty" validate:"required_if=CallType SCHEDULE,excluded_if=CallType NOW"`
}

var validate = validator.New()

// ValidationError lists the fields that failed and the rule each one broke.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lead request invalid: %v", e.Fields)
}

// Validate checks the request against its struct rules.
func (r LeadRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate lead request: %w", err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &ValidationError{Fields: fields}
}
