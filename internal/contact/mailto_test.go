package contact

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailtoURI(t *testing.T) {
	msg := Message{Name: "Ada Lovelace", Email: "ada@example.com", Message: "Hi & welcome\n1+1=2"}

	t.Run("Should percent-encode subject and body", func(t *testing.T) {
		uri, err := MailtoURI("adnivog02@gmail.com", msg)
		require.NoError(t, err)
		assert.Equal(t,
			"mailto:adnivog02@gmail.com?subject=New%20message%20from%20Ada%20Lovelace"+
				"&body=Name%3A%20Ada%20Lovelace%0AEmail%3A%20ada%40example.com%0A%0AMessage%3A%0AHi%20%26%20welcome%0A1%2B1%3D2",
			uri)
	})

	t.Run("Should round-trip through a url parser", func(t *testing.T) {
		uri, err := MailtoURI("me@example.com", msg)
		require.NoError(t, err)
		u, err := url.Parse(uri)
		require.NoError(t, err)
		assert.Equal(t, "mailto", u.Scheme)
		assert.Equal(t, "me@example.com", u.Opaque)
		assert.Equal(t, msg.Subject(), u.Query().Get("subject"))
		assert.Equal(t, msg.Body(), u.Query().Get("body"))
	})

	t.Run("Should refuse an empty recipient", func(t *testing.T) {
		_, err := MailtoURI("  ", msg)
		assert.ErrorIs(t, err, ErrNoRecipient)
	})
}
