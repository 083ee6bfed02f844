package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Seed derives a non-negative selection seed from a date using
// HMAC(salt, YYYY-MM-DD). Everyone with the same salt gets the same
// target word on a given day.
func Seed(date time.Time, salt string) int64 {
	dk := DateKey(date)
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(dk))
	sum := h.Sum(nil)
	// first 8 bytes as uint64, high bit cleared to stay non-negative
	n := binary.BigEndian.Uint64(sum[:8])
	return int64(n &^ (1 << 63))
}
