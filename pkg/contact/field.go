package contact

// Field identifies a form control. Values match the DOM ids of the controls
// so a Field can be used directly as a focus target.
type Field string

const (
	FieldFullName Field = "fullName"
	FieldEmail    Field = "email"
	FieldPhone    Field = "phone"
	FieldRoomType Field = "roomType"
	FieldMessage  Field = "message"
	FieldConsent  Field = "consent"
)

// Fields lists every form field in the order the form presents them.
var Fields = []Field{
	FieldFullName,
	FieldEmail,
	FieldPhone,
	FieldRoomType,
	FieldMessage,
	FieldConsent,
}

func (f Field) String() string {
	return string(f)
}
