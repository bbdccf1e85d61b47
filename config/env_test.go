package config

import (
	"testing"
	"time"
)

func TestGetEnvAsTimeDuration(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"duration string", "15s", 15 * time.Second},
		{"sub-second duration", "500ms", 500 * time.Millisecond},
		{"bare integer means seconds", "30", 30 * time.Second},
		{"garbage falls back", "soon", 42 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			if got := getEnvAsTimeDuration("TEST_DURATION", 42*time.Second); got != tt.want {
				t.Errorf("getEnvAsTimeDuration(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestGetEnvAsTimeDurationUnset(t *testing.T) {
	if got := getEnvAsTimeDuration("TEST_DURATION_UNSET", 7*time.Second); got != 7*time.Second {
		t.Errorf("unset key = %v, want default", got)
	}
}

func TestGetEnvAsSliceTrimsAndDropsEmpty(t *testing.T) {
	t.Setenv("TEST_SLICE", " a, b ,, c ")

	got := getEnvAsSlice("TEST_SLICE", nil)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("getEnvAsSlice returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	if !getEnvAsBool("TEST_BOOL", false) {
		t.Error("expected true for value \"true\"")
	}

	t.Setenv("TEST_BOOL", "notabool")
	if !getEnvAsBool("TEST_BOOL", true) {
		t.Error("unparseable value should keep the default")
	}
}
