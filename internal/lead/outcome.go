package lead

// State is the lifecycle position of a submission.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateFailed  State = "failed"
)

// Kind tells which success panel a successful submission shows.
type Kind string

const (
	KindCall     Kind = "call"
	KindSchedule Kind = "schedule"
)

// Panel is the part of the CTA card that is rendered.
type Panel string

const (
	PanelForm            Panel = "form"
	PanelCallSuccess     Panel = "call-success"
	PanelScheduleSuccess Panel = "schedule-success"
	PanelError           Panel = "error"
)

// FallbackMessage is shown when the call service fails without saying why.
const FallbackMessage = "We couldn't reach our call service. Please try again."

// RateLimitedMessage is shown when a visitor submits too often.
const RateLimitedMessage = "Too many requests, please try again in a minute."

// Outcome is the result of the last submission: Idle, Loading, Success or Failed.
type Outcome struct {
	State   State  `json:"state"`
	Kind    Kind   `json:"kind,omitempty"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	Message string `json:"message,omitempty"`
	ID      string `json:"submission_id,omitempty"`
}

func Idle() Outcome {
	return Outcome{State: StateIdle}
}

func Loading() Outcome {
	return Outcome{State: StateLoading}
}

// CallSucceeded carries the exact phone string that was submitted.
func CallSucceeded(id, name, phone string) Outcome {
	return Outcome{State: StateSuccess, Kind: KindCall, ID: id, Name: name, Phone: phone}
}

// ScheduleSucceeded carries the display date and "HH:MM AM" time.
func ScheduleSucceeded(id, name, date, clock string) Outcome {
	return Outcome{State: StateSuccess, Kind: KindSchedule, ID: id, Name: name, Date: date, Time: clock}
}

// Failed carries the message shown in the error panel.
func Failed(message string) Outcome {
	if message == "" {
		message = FallbackMessage
	}
	return Outcome{State: StateFailed, Message: message}
}

// InFlight reports whether a request is running.
func (o Outcome) InFlight() bool {
	return o.State == StateLoading
}

// Panel selects the single panel to render. Result panels are never shown
// while a request is in flight.
func (o Outcome) Panel() Panel {
	switch o.State {
	case StateSuccess:
		if o.Kind == KindSchedule {
			return PanelScheduleSuccess
		}
		return PanelCallSuccess
	case StateFailed:
		return PanelError
	default:
		return PanelForm
	}
}
