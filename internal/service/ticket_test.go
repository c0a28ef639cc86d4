package service

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewTicketFormat(t *testing.T) {
	now := time.Now()
	ticket := NewTicket(now)

	require.Regexp(t, `^TKT-[A-Z0-9]+-[A-Z0-9]{4}$`, ticket)

	parts := strings.Split(ticket, "-")
	require.Len(t, parts, 3)

	encoded, err := strconv.ParseInt(strings.ToLower(parts[1]), 36, 64)
	require.NoError(t, err)
	require.Equal(t, now.UnixMilli(), encoded)
}

func TestNewTicketRandomSuffixVaries(t *testing.T) {
	now := time.Now()
	seen := map[string]bool{}
	for i := 0; i < 32; i++ {
		seen[NewTicket(now)] = true
	}
	// Same millisecond, so any variation comes from the random suffix.
	require.Greater(t, len(seen), 1)
}
