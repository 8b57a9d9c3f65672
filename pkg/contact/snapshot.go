package contact

import "github.com/dmitrymomot/venuesite/pkg/sanitizer"

// Snapshot is the set of form values captured at submission time.
type Snapshot struct {
	FullName string `form:"fullName" json:"fullName"`
	Email    string `form:"email" json:"email"`
	Phone    string `form:"phone" json:"phone"`
	RoomType string `form:"roomType" json:"roomType"`
	Message  string `form:"message" json:"message"`
	Consent  bool   `form:"consent" json:"consent"`
}

// Normalize returns a copy with surrounding whitespace removed from the free
// text fields. RoomType is a select value and is kept as submitted.
func (s Snapshot) Normalize() Snapshot {
	return Snapshot{
		FullName: sanitizer.Trim(s.FullName),
		Email:    sanitizer.Trim(s.Email),
		Phone:    sanitizer.Trim(s.Phone),
		RoomType: s.RoomType,
		Message:  sanitizer.Trim(s.Message),
		Consent:  s.Consent,
	}
}

// Value returns the submitted value of a text field, used to re-populate the
// form after a failed submission. Consent and unknown fields return "".
func (s Snapshot) Value(f Field) string {
	switch f {
	case FieldFullName:
		return s.FullName
	case FieldEmail:
		return s.Email
	case FieldPhone:
		return s.Phone
	case FieldRoomType:
		return s.RoomType
	case FieldMessage:
		return s.Message
	default:
		return ""
	}
}
