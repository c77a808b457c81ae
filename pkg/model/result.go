package model

import (
	"encoding/json"
)

// Status is the tri-state outcome of one reconciliation call.
type Status int

const (
	// StatusPending marks a dry-run result: a change would happen but was
	// not executed.
	StatusPending Status = iota
	// StatusSuccess marks a satisfied or successfully changed state.
	StatusSuccess
	// StatusFailed marks a reconciliation that could not reach the
	// declared state.
	StatusFailed
)

// MarshalJSON renders the status in the reporting schema consumed by
// host engines: true, false or null.
func (s Status) MarshalJSON() ([]byte, error) {
	switch s {
	case StatusSuccess:
		return []byte("true"), nil
	case StatusFailed:
		return []byte("false"), nil
	default:
		return []byte("null"), nil
	}
}

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "pending"
	}
}

// Changes records what a reconciliation changed (or would change).
// Installs use the old/new list shape; removal and bootstrap record a
// per-name action. The two shapes are mutually exclusive.
type Changes struct {
	Old     []string
	New     []string
	Actions map[string]string
}

// Empty reports whether no change was recorded.
func (c Changes) Empty() bool {
	return len(c.Old) == 0 && len(c.New) == 0 && len(c.Actions) == 0
}

// MarshalJSON emits either {"old": [...], "new": [...]} or the
// {"name": "Action"} mapping, matching the shape host engines expect.
// Empty changes marshal as {}.
func (c Changes) MarshalJSON() ([]byte, error) {
	if len(c.Actions) > 0 {
		return json.Marshal(c.Actions)
	}
	if c.Empty() {
		return []byte("{}"), nil
	}
	old := c.Old
	if old == nil {
		old = []string{}
	}
	next := c.New
	if next == nil {
		next = []string{}
	}
	return json.Marshal(struct {
		Old []string `json:"old"`
		New []string `json:"new"`
	}{Old: old, New: next})
}

// Result is the record a reconciliation operation returns to its caller.
type Result struct {
	Name    string  `json:"name"`
	Status  Status  `json:"result"`
	Comment string  `json:"comment"`
	Changes Changes `json:"changes"`
}

// Changed reports whether the result actually recorded a change.
func (r Result) Changed() bool {
	return r.Status == StatusSuccess && !r.Changes.Empty()
}
