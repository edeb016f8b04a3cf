package coult

import (
	"errors"
	"testing"
)

func TestClassifyHealth_States(t *testing.T) {
	tests := []struct {
		status int
		want   HealthState
	}{
		{200, HealthState{Initialized: true, StatusCode: 200}},
		{429, HealthState{Initialized: true, Standby: true, StatusCode: 429}},
		{472, HealthState{Initialized: true, DRSecondary: true, StatusCode: 472}},
		{473, HealthState{Initialized: true, PerformanceStandby: true, StatusCode: 473}},
		{501, HealthState{StatusCode: 501}},
		{503, HealthState{Initialized: true, Sealed: true, StatusCode: 503}},
	}

	for _, tt := range tests {
		state, err := classifyHealth(tt.status, nil)
		if err != nil {
			t.Errorf("classifyHealth(%d) error = %v, want state", tt.status, err)
			continue
		}
		if *state != tt.want {
			t.Errorf("classifyHealth(%d) = %+v, want %+v", tt.status, *state, tt.want)
		}
	}
}

func TestClassifyHealth_Active(t *testing.T) {
	state, err := classifyHealth(200, nil)
	if err != nil {
		t.Fatalf("classifyHealth(200) error = %v", err)
	}
	if !state.Active() {
		t.Error("Active() = false for status 200")
	}

	for _, status := range []int{429, 472, 473, 501, 503} {
		state, err := classifyHealth(status, nil)
		if err != nil {
			t.Fatalf("classifyHealth(%d) error = %v", status, err)
		}
		if state.Active() {
			t.Errorf("Active() = true for status %d", status)
		}
	}
}

func TestClassifyHealth_UnrecognizedStatus(t *testing.T) {
	_, err := classifyHealth(418, []byte(`{"errors":["unexpected"]}`))
	if err == nil {
		t.Fatal("classifyHealth(418) = nil error, want *StatusError")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("classifyHealth(418) error = %v, want *StatusError", err)
	}
	if statusErr.StatusCode != 418 {
		t.Errorf("StatusCode = %d, want 418", statusErr.StatusCode)
	}
	if statusErr.Message != "unexpected" {
		t.Errorf("Message = %q, want %q", statusErr.Message, "unexpected")
	}
}
