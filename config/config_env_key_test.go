package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"remote": map[string]any{
			"baseUrl": "http://localhost:8080",
		},
		"pubsub": map[string]any{
			"topicId": "",
			"localEndpoint": "",
		},
		"auth": map[string]any{
			"requiredRole": "",
		},
		"snapshot": map[string]any{
			"bucketUrl": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "REMOTE_BASEURL", want: "remote.baseUrl"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_LOCALENDPOINT", want: "pubsub.localEndpoint"},
		{envKey: "AUTH_REQUIREDROLE", want: "auth.requiredRole"},
		{envKey: "SNAPSHOT_BUCKETURL", want: "snapshot.bucketUrl"},
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
