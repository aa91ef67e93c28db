package replay

import "fmt"

type ReplayError struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *ReplayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("replay error(reason=%s): %s", e.Reason, e.Message)
}

func errSpec(format string, args ...any) *ReplayError {
	return &ReplayError{Reason: "invalid_spec", Message: fmt.Sprintf(format, args...)}
}
