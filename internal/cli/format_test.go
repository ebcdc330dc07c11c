package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTasks(t *testing.T) {
	assert.Equal(t, "50", FormatTasks(50))
	assert.Equal(t, "12.5", FormatTasks(12.5))
	assert.Equal(t, "1,234", FormatTasks(1234))
	assert.Equal(t, "0.33", FormatTasks(1.0/3))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "50%", FormatPercent(0.5))
	assert.Equal(t, "100%", FormatPercent(1))
	assert.Equal(t, "0%", FormatPercent(0))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, "2026-02-28", FormatDate(d))

	_, err = ParseDate("28/02/2026")
	assert.ErrorContains(t, err, "want YYYY-MM-DD")
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "1 day", FormatDays(1))
	assert.Equal(t, "9 days", FormatDays(9))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long…", Truncate("longer name", 5))
	assert.Equal(t, "", Truncate("x", 0))
}
