package cert

import (
	"testing"
	"time"

	"go_certify/internal/model"
)

func TestStatus(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	yesterday := "2025-06-14"
	tomorrow := "2025-06-16"

	tests := []struct {
		name       string
		expiryDate string
		isActive   bool
		want       string
	}{
		{
			name:       "expired yesterday while active",
			expiryDate: yesterday,
			isActive:   true,
			want:       model.StatusExpired,
		},
		{
			name:       "expires tomorrow while active",
			expiryDate: tomorrow,
			isActive:   true,
			want:       model.StatusValid,
		},
		{
			name:       "expires tomorrow but deactivated",
			expiryDate: tomorrow,
			isActive:   false,
			want:       model.StatusInactive,
		},
		{
			name:       "no expiry date while active",
			expiryDate: "",
			isActive:   true,
			want:       model.StatusValid,
		},
		{
			name:       "expired wins over deactivated",
			expiryDate: yesterday,
			isActive:   false,
			want:       model.StatusExpired,
		},
		{
			name:       "unparseable expiry never expires",
			expiryDate: "not-a-date",
			isActive:   true,
			want:       model.StatusValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Status(tt.expiryDate, tt.isActive, now); got != tt.want {
				t.Errorf("Status(%q, %v) = %q, want %q", tt.expiryDate, tt.isActive, got, tt.want)
			}
		})
	}
}

func TestIsExpired(t *testing.T) {
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	if !IsExpired("2025-06-14", now) {
		t.Error("a past expiry date must report expired")
	}
	if IsExpired("2025-06-16", now) {
		t.Error("a future expiry date must not report expired")
	}
	if IsExpired("", now) {
		t.Error("an absent expiry date must never report expired")
	}
}
