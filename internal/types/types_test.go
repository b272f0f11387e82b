package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMode_String(t *testing.T) {
	assert.Equal(t, "NORMAL", ModeNormal.String())
	assert.Equal(t, "MOVE", ModeMove.String())
	assert.Equal(t, "DIALOG", ModeOverlay.String())
	assert.Equal(t, "UNKNOWN", Mode(42).String())
}

func TestToast_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	toast := NewToast(ToastWarning, "move rejected", now, DefaultToastTTL)

	assert.False(t, toast.Expired(now))
	assert.False(t, toast.Expired(now.Add(DefaultToastTTL-time.Millisecond)))
	assert.True(t, toast.Expired(now.Add(DefaultToastTTL)))
}
