package invitations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeEmails(t *testing.T) {
	t.Run("RemovesDuplicatesKeepingOrder", func(t *testing.T) {
		distinct := DedupeEmails([]string{"a@x.com", "b@x.com", "a@x.com", "c@x.com", "b@x.com"})
		assert.Equal(t, []string{"a@x.com", "b@x.com", "c@x.com"}, distinct)
	})

	t.Run("TrimsWhitespaceAndDropsEmpty", func(t *testing.T) {
		distinct := DedupeEmails([]string{"  a@x.com ", "", "   ", "a@x.com"})
		assert.Equal(t, []string{"a@x.com"}, distinct)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		assert.Empty(t, DedupeEmails(nil))
	})
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last@example.co.th", "user+tag@mail.org"}
	for _, addr := range valid {
		assert.True(t, IsValidEmail(addr), addr)
	}

	invalid := []string{"bad-email", "no-at.example.com", "@missing-local.com", "spaces in@mail.com", ""}
	for _, addr := range invalid {
		assert.False(t, IsValidEmail(addr), addr)
	}
}
