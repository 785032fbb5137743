package main

import (
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "45 seconds"},
		{1 * time.Second, "1 second"},
		{2*time.Minute + 1*time.Second, "2 minutes, 1 second"},
		{1*time.Hour + 1*time.Minute + 30*time.Second, "1 hour, 1 minute, 30 seconds"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.d); got != tt.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Error("plural(1) should be empty")
	}
	if plural(0) != "s" || plural(2) != "s" {
		t.Error("plural(0) and plural(2) should be \"s\"")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	if got := getEnvDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("getEnvDuration = %v, want 90s", got)
	}
	t.Setenv("TEST_DURATION", "bogus")
	if got := getEnvDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("Invalid value: getEnvDuration = %v, want fallback 1m", got)
	}
	if got := getEnvDuration("TEST_DURATION_UNSET", 2*time.Hour); got != 2*time.Hour {
		t.Errorf("Unset value: getEnvDuration = %v, want fallback 2h", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := getEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}
	t.Setenv("TEST_INT", "bogus")
	if got := getEnvInt("TEST_INT", 7); got != 7 {
		t.Errorf("Invalid value: getEnvInt = %d, want fallback 7", got)
	}
	if got := getEnvInt("TEST_INT_UNSET", 9); got != 9 {
		t.Errorf("Unset value: getEnvInt = %d, want fallback 9", got)
	}
}
