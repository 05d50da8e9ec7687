package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserAgent(t *testing.T) {
	t.Run("empty user agent returns unknown device", func(t *testing.T) {
		assert.Equal(t, "Unknown Device", ParseUserAgent(""))
	})

	t.Run("chrome on desktop includes browser and OS", func(t *testing.T) {
		ua := "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
		label := ParseUserAgent(ua)
		assert.Contains(t, label, "Chrome")
		assert.Contains(t, label, "on")
		assert.NotContains(t, label, "  ")
	})

	t.Run("garbage input still yields a label", func(t *testing.T) {
		assert.NotEmpty(t, ParseUserAgent("not-a-real-agent"))
	})
}
