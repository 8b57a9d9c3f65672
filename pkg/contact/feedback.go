package contact

// DefaultSuccessMessage is shown after a valid submission.
const DefaultSuccessMessage = "Thank you for reaching out. Our team will reply within one business day."

// Status is the visual state of the feedback region. It doubles as the CSS
// class applied to the region.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Role returns the ARIA role announced for the status.
func (s Status) Role() string {
	if s == StatusSuccess {
		return "status"
	}
	return "alert"
}

// Feedback is what the page shows after a submission attempt.
type Feedback struct {
	Status Status
	Text   string
	// Focus is the field that should receive keyboard focus, "" on success.
	Focus Field
}

// NewFeedback builds the feedback for res. successText falls back to
// DefaultSuccessMessage when empty.
func NewFeedback(res Result, successText string) Feedback {
	if !res.Valid() {
		return Feedback{
			Status: StatusError,
			Text:   res.Joined(),
			Focus:  res.FirstInvalid,
		}
	}

	if successText == "" {
		successText = DefaultSuccessMessage
	}
	return Feedback{
		Status: StatusSuccess,
		Text:   successText,
	}
}

// Role returns the ARIA role of the feedback region.
func (f Feedback) Role() string {
	return f.Status.Role()
}

// IsZero reports whether no submission has been made yet.
func (f Feedback) IsZero() bool {
	return f.Status == "" && f.Text == ""
}

// ResetForm reports whether the form should be cleared, which happens only
// after a successful submission.
func (f Feedback) ResetForm() bool {
	return f.Status == StatusSuccess
}
