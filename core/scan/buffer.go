package scan

import (
	"time"
	"unicode/utf8"
)

// KeyEnter is the key name that flushes the buffer.
const KeyEnter = "Enter"

// KeyBuffer assembles keystrokes from a scanner acting as a keyboard into codes.
// Printable single-character keys accumulate; Enter flushes and resets. A pause longer
// than the inactivity timeout discards a stale partial code. A burst that grows past
// the maximum length is dropped whole: later keys are ignored and the next Enter
// yields nothing.
type KeyBuffer struct {
	buf      []rune
	last     time.Time
	overflow bool
	timeout  time.Duration
	maxLen   int
	now      func() time.Time
}

// NewKeyBuffer creates a buffer. A zero timeout or maxLen disables that limit.
func NewKeyBuffer(timeout time.Duration, maxLen int) *KeyBuffer {
	return &KeyBuffer{
		timeout: timeout,
		maxLen:  maxLen,
		now:     time.Now,
	}
}

// Feed handles a single key event. It returns the trimmed code and true when Enter
// flushed a non-empty, fresh buffer that stayed within the maximum length.
func (b *KeyBuffer) Feed(key string) (string, bool) {
	now := b.now()
	if b.stale(now) {
		b.Reset()
	}

	if key == KeyEnter || key == "\n" || key == "\r" {
		overflow := b.overflow
		code, ok := Normalize(string(b.buf))
		b.Reset()
		if overflow {
			return "", false
		}
		return code, ok
	}

	if utf8.RuneCountInString(key) != 1 {
		// Modifier and navigation keys (Shift, Tab, ArrowUp...) carry no data.
		return "", false
	}

	b.last = now
	if b.overflow {
		return "", false
	}
	if b.maxLen > 0 && len(b.buf) >= b.maxLen {
		b.overflow = true
		b.buf = b.buf[:0]
		return "", false
	}

	r, _ := utf8.DecodeRuneInString(key)
	b.buf = append(b.buf, r)
	return "", false
}

// Overflowed reports whether the current burst exceeded the maximum length.
func (b *KeyBuffer) Overflowed() bool {
	return b.overflow
}

func (b *KeyBuffer) stale(now time.Time) bool {
	if b.timeout <= 0 || (len(b.buf) == 0 && !b.overflow) {
		return false
	}
	return now.Sub(b.last) > b.timeout
}

// Pending returns the characters accumulated so far.
func (b *KeyBuffer) Pending() string {
	return string(b.buf)
}

// Reset clears the buffer.
func (b *KeyBuffer) Reset() {
	b.buf = b.buf[:0]
	b.last = time.Time{}
	b.overflow = false
}
