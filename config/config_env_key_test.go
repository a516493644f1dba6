package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"publicBaseUrl": "",
			"endpoint":      "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"activity": map[string]any{
			"maxEntries": 100,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_PUBLICBASEURL", want: "backend.publicBaseUrl"},
		{envKey: "BACKEND_ENDPOINT", want: "backend.endpoint"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "ACTIVITY_MAXENTRIES", want: "activity.maxEntries"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
