package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"store":            "sqlite",
			"simulatedLatency": "1s",
		},
		"booking": map[string]any{
			"horizonDays": 30,
		},
		"env": map[string]any{
			"serviceName": "clinic",
			"log": map[string]any{
				"level": "info",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_SIMULATEDLATENCY", want: "session.simulatedLatency"},
		{envKey: "BOOKING_HORIZONDAYS", want: "booking.horizonDays"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "ENV_LOG_LEVEL", want: "env.log.level"},
		{envKey: "ADMIN_PASSWORD", want: "admin.password"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
