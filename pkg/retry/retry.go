package retry

import (
	"time"
)

// Do runs fn up to attempts times, sleeping delay between failures, and
// returns the last error if every attempt fails. Intended for absorbing
// transient read contention around short database checks, not for storage
// writes.
func Do(attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i < attempts-1 {
			time.Sleep(delay)
		}
	}
	return err
}
