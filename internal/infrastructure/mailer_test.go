package infrastructure

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifier_ProviderSelection(t *testing.T) {
	assert.IsType(t, &ResendNotifier{}, NewNotifier("resend", "key", "noreply@example.com"))
	assert.IsType(t, &SendgridNotifier{}, NewNotifier("sendgrid", "key", "noreply@example.com"))
	assert.IsType(t, &logNotifier{}, NewNotifier("", "key", "noreply@example.com"))
	assert.IsType(t, &logNotifier{}, NewNotifier("smoke-signals", "key", "noreply@example.com"))
}

func TestLogNotifier_NeverFails(t *testing.T) {
	n := &logNotifier{}
	assert.NoError(t, n.Send(context.Background(), "ada@example.com", "subject", "body"))
}
