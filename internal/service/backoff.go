package service

import "time"

// BackoffSchedule computes the delay before the nth retry attempt:
// base * growth^(n-1). With the defaults (30s base, 4x growth) the sequence
// is 30s, 120s, 480s. The 4x factor is intentionally steeper than the usual
// 2x: callers with tighter SLAs should lower max retries rather than expect
// frequent re-attempts.
type BackoffSchedule struct {
	Base   time.Duration
	Growth int
}

// DefaultBackoff is the production schedule.
var DefaultBackoff = BackoffSchedule{Base: 30 * time.Second, Growth: 4}

// Delay returns the backoff before attempt n (1-based). Attempts below 1
// are treated as the first attempt.
func (b BackoffSchedule) Delay(n int) time.Duration {
	if n < 1 {
		n = 1
	}
	d := b.Base
	for i := 1; i < n; i++ {
		d *= time.Duration(b.Growth)
	}
	return d
}
