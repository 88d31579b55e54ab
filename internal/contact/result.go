package contact

// Outcome tags a submission result.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomeValidationFailure
	OutcomeTransmissionFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeValidationFailure:
		return "validation_failure"
	case OutcomeTransmissionFailure:
		return "transmission_failure"
	default:
		return "unknown"
	}
}

// User-facing notification texts.
const (
	MessageSuccess           = "Message sent successfully! We will get back to you soon."
	MessageValidationFailure = "Please fill in all required fields"
	MessageTransmission      = "Failed to send message. Please try again later."
)

// Result is the outcome of one Submit call. Err is nil on success and is a
// *ValidationError or *TransmissionError otherwise.
type Result struct {
	Outcome Outcome
	Err     error
}

// OK reports success.
func (r Result) OK() bool {
	return r.Outcome == OutcomeSuccess
}

// Message returns the toast text for the outcome. Transmission failures are
// not categorized further for the user.
func (r Result) Message() string {
	switch r.Outcome {
	case OutcomeSuccess:
		return MessageSuccess
	case OutcomeValidationFailure:
		return MessageValidationFailure
	default:
		return MessageTransmission
	}
}
