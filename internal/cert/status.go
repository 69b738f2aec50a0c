// Package cert holds the certificate status decision logic.
package cert

import (
	"time"

	"go_certify/internal/model"
)

// IsExpired reports whether a certificate with the given expiry date is
// expired at the given instant. A certificate with no expiry date (or an
// unparseable one) is never considered expired on that basis.
func IsExpired(expiryDate string, now time.Time) bool {
	if expiryDate == "" {
		return false
	}
	expiry, err := time.Parse(model.DateLayout, expiryDate)
	if err != nil {
		return false
	}
	// Expired means the expiry date is strictly before "now".
	return expiry.Before(now)
}

// Status derives the externally visible certificate status:
// 1. expiry date present and in the past -> expired
// 2. not expired but deactivated        -> inactive
// 3. otherwise                          -> valid
func Status(expiryDate string, isActive bool, now time.Time) string {
	if IsExpired(expiryDate, now) {
		return model.StatusExpired
	}
	if !isActive {
		return model.StatusInactive
	}
	return model.StatusValid
}
