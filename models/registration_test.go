package models

import "testing"

func TestRegistrationProcessed(t *testing.T) {
	tests := []struct {
		name   string
		status RegistrationStatus
		want   bool
	}{
		{"pending stays reviewable", RegistrationPending, false},
		{"approved is terminal", RegistrationApproved, true},
		{"rejected is terminal", RegistrationRejected, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := Registration{Status: tt.status}
			if got := reg.Processed(); got != tt.want {
				t.Errorf("Processed() with status %q = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}
