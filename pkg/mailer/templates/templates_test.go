package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderWelcome(t *testing.T) {
	data := NewEmailData("Social", "", "https://help.test", "Ann", "ann@x.com")

	subject, text, html, err := Render(Welcome, data)
	require.NoError(t, err)
	assert.Equal(t, "Welcome to Social, Ann", subject)
	assert.Contains(t, text, "ann@x.com")
	assert.Contains(t, text, "https://help.test")
	assert.Contains(t, html, "<strong>ann@x.com</strong>")
}

func TestRenderAccountDeleted(t *testing.T) {
	data := NewEmailData("Social", "Social Inc", "", "Ann", "ann@x.com")

	subject, text, _, err := Render(AccountDeleted, data)
	require.NoError(t, err)
	assert.Equal(t, "Your Social account was deleted", subject)
	assert.Contains(t, text, "Hi Ann")
	assert.Contains(t, text, "Social Inc")
	assert.NotContains(t, text, " at ")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := Render("nope", nil)
	assert.Error(t, err)
}
