package service

import (
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	ticketPrefix       = "TKT"
	ticketAlphabet     = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ticketRandomLength = 4
)

// NewTicket builds a human-readable correlation token of the form
// TKT-<base36 timestamp>-<4 random base36 characters>, upper-cased. Tickets
// are a correlation aid for operators, not a primary key; no uniqueness check
// is performed because the timestamp component makes collisions negligible.
func NewTicket(now time.Time) string {
	encoded := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	return fmt.Sprintf("%s-%s-%s", ticketPrefix, encoded, randomToken(ticketRandomLength))
}

func randomToken(length int) string {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms; keep the ticket
		// usable anyway with time-derived bytes.
		nano := time.Now().UnixNano()
		for i := range buf {
			buf[i] = byte(nano >> (uint(i) * 8))
		}
	}

	out := make([]byte, length)
	for i, b := range buf {
		out[i] = ticketAlphabet[int(b)%len(ticketAlphabet)]
	}
	return string(out)
}
