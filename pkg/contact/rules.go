package contact

import (
	"regexp"

	"github.com/dmitrymomot/venuesite/pkg/validator"
)

// Minimum lengths in UTF-16 code units after trimming.
const (
	MinFullNameLength = 3
	MinMessageLength  = 20
)

// User-facing messages, one per rule.
const (
	MsgFullNameRequired = "Please share your full name."
	MsgFullNameTooShort = "Full name must be at least 3 characters."
	MsgEmailInvalid     = "Enter a valid email address."
	MsgPhoneInvalid     = "Phone number should contain only digits and punctuation."
	MsgRoomTypeRequired = "Please select a preferred room type."
	MsgMessageRequired  = "Let us know the purpose of your stay."
	MsgMessageTooShort  = "Message should be at least 20 characters."
	MsgConsentRequired  = "Consent is required to process your enquiry."
)

// jsSpace is the body of a character class matching browser whitespace.
const jsSpace = `\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}`

var (
	// local-part@domain.tld with word, dot and dash characters and a 2+ letter TLD.
	emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[A-Za-z]{2,}$`)
	// optional +, optional parenthesised country code, then digits and - . /
	// or whitespace separators. Whitespace is the browser's set, which adds
	// NBSP, the Unicode space separators and U+FEFF to the ASCII ones.
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{1,4}[)]?[-` + jsSpace + `./0-9]*$`)
)

// Rules returns the contact form rule table for s in evaluation order.
// Order decides which field is focused first; every rule is always evaluated.
// Values are used as given, call Normalize first to trim them.
func Rules(s Snapshot) []validator.Rule {
	return []validator.Rule{
		rule(MsgFullNameRequired,
			validator.RequiredString(FieldFullName.String(), s.FullName)),
		rule(MsgFullNameTooShort,
			validator.When(s.FullName != "",
				validator.MinLenString(FieldFullName.String(), s.FullName, MinFullNameLength))),
		rule(MsgEmailInvalid,
			validator.When(s.Email != "",
				validator.MatchesPattern(FieldEmail.String(), s.Email, emailPattern, "email address"))),
		rule(MsgPhoneInvalid,
			validator.When(s.Phone != "",
				validator.MatchesPattern(FieldPhone.String(), s.Phone, phonePattern, "phone number"))),
		rule(MsgRoomTypeRequired,
			validator.NonEmptyString(FieldRoomType.String(), s.RoomType)),
		rule(MsgMessageRequired,
			validator.RequiredString(FieldMessage.String(), s.Message)),
		rule(MsgMessageTooShort,
			validator.When(s.Message != "",
				validator.MinLenString(FieldMessage.String(), s.Message, MinMessageLength))),
		rule(MsgConsentRequired,
			validator.Checked(FieldConsent.String(), s.Consent)),
	}
}

func rule(message string, r validator.Rule) validator.Rule {
	return validator.WithMessage(r, message)
}
