package coult

import "net/http"

// Health endpoint status codes that describe a node state rather than a
// request failure. Vault reports cluster role and seal state through the
// status code of GET /v1/sys/health.
const (
	healthStatusActive             = http.StatusOK // 200
	healthStatusStandby            = 429
	healthStatusDRSecondary        = 472
	healthStatusPerformanceStandby = 473
	healthStatusNotInitialized     = 501
	healthStatusSealed             = 503
)

// HealthState describes the state of the Vault node answering the health
// check. A standby or DR secondary answering is a normal cluster condition,
// not a failure, which is why HealthCheck reports these as states instead
// of errors.
type HealthState struct {
	Initialized        bool
	Sealed             bool
	Standby            bool
	PerformanceStandby bool
	DRSecondary        bool
	StatusCode         int
}

// Active reports whether the node is the initialized, unsealed active node.
func (h *HealthState) Active() bool {
	return h.StatusCode == healthStatusActive
}

// classifyHealth maps a health endpoint status code to a HealthState.
// Status codes outside the health table are returned as a *StatusError.
func classifyHealth(statusCode int, body []byte) (*HealthState, error) {
	state := &HealthState{StatusCode: statusCode}
	switch statusCode {
	case healthStatusActive:
		state.Initialized = true
	case healthStatusStandby:
		state.Initialized = true
		state.Standby = true
	case healthStatusDRSecondary:
		state.Initialized = true
		state.DRSecondary = true
	case healthStatusPerformanceStandby:
		state.Initialized = true
		state.PerformanceStandby = true
	case healthStatusNotInitialized:
		// Not initialized implies nothing useful about seal state.
	case healthStatusSealed:
		state.Initialized = true
		state.Sealed = true
	default:
		return nil, &StatusError{
			StatusCode: statusCode,
			Message:    vaultErrorMessage(body),
		}
	}
	return state, nil
}
