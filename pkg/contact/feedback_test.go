package contact_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/venuesite/pkg/contact"
)

func TestNewFeedback(t *testing.T) {
	t.Parallel()

	t.Run("success uses status role and default text", func(t *testing.T) {
		t.Parallel()

		fb := contact.NewFeedback(contact.Validate(validSnapshot()), "")
		assert.Equal(t, contact.StatusSuccess, fb.Status)
		assert.Equal(t, "status", fb.Role())
		assert.Equal(t, contact.DefaultSuccessMessage, fb.Text)
		assert.Equal(t, contact.Field(""), fb.Focus)
		assert.True(t, fb.ResetForm())
		assert.False(t, fb.IsZero())
	})

	t.Run("success with custom text", func(t *testing.T) {
		t.Parallel()

		fb := contact.NewFeedback(contact.Validate(validSnapshot()), "See you soon.")
		assert.Equal(t, "See you soon.", fb.Text)
	})

	t.Run("failure joins messages and focuses first invalid field", func(t *testing.T) {
		t.Parallel()

		s := validSnapshot()
		s.Email = "nope"
		s.Consent = false

		fb := contact.NewFeedback(contact.Validate(s), "ignored")
		assert.Equal(t, contact.StatusError, fb.Status)
		assert.Equal(t, "alert", fb.Role())
		assert.Equal(t, contact.MsgEmailInvalid+" "+contact.MsgConsentRequired, fb.Text)
		assert.Equal(t, contact.FieldEmail, fb.Focus)
		assert.False(t, fb.ResetForm())
	})

	t.Run("zero feedback before any submission", func(t *testing.T) {
		t.Parallel()

		assert.True(t, contact.Feedback{}.IsZero())
	})
}

func TestStatusRole(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "status", contact.StatusSuccess.Role())
	assert.Equal(t, "alert", contact.StatusError.Role())
}
