package money

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		d, err := Parse("8.50")
		require.NoError(t, err)
		assert.True(t, d.Equal(decimal.RequireFromString("8.5")))
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := Parse("eight fifty")
		assert.True(t, errors.Is(err, ErrInvalidAmount))
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := Parse("")
		assert.True(t, errors.Is(err, ErrInvalidAmount))
	})
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "18.23", Format(decimal.RequireFromString("18.225")))
	assert.Equal(t, "10.00", Format(decimal.RequireFromString("10")))
	assert.Equal(t, "0.10", Format(decimal.RequireFromString("0.1")))
}

func TestParseUnix(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		sec, err := ParseUnix("1735689600")
		require.NoError(t, err)
		assert.Equal(t, int64(1735689600), sec)
	})

	t.Run("Malformed", func(t *testing.T) {
		_, err := ParseUnix("yesterday")
		assert.True(t, errors.Is(err, ErrInvalidTimestamp))
	})
}

func TestFormatUnix(t *testing.T) {
	ts := time.Unix(1735689600, 0)
	assert.Equal(t, "1735689600", FormatUnix(ts))
}
