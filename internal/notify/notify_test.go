package notify_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tishe/storefront/internal/notify"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	notify.Log{Logger: logger}.Notify("Ring added to cart")

	assert.Contains(t, buf.String(), "Ring added to cart")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		notify.Nop{}.Notify("anything")
	})
}
