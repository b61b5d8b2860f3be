package conformance

import (
	"runtime"
	"time"
)

type Report struct {
	Suite       string          `json:"suite"`
	Timestamp   time.Time       `json:"timestamp"`
	Environment EnvironmentInfo `json:"environment"`
	Cases       []CaseResult    `json:"cases"`
	Passed      int             `json:"passed"`
	Failed      int             `json:"failed"`
}

type EnvironmentInfo struct {
	GoVersion string `json:"go_version"`
	OS        string `json:"os"`
	Arch      string `json:"arch"`
}

type CaseResult struct {
	Name       string       `json:"name"`
	Passed     bool         `json:"passed"`
	TokenCount int          `json:"token_count"`
	Mismatches []Mismatch   `json:"mismatches,omitempty"`
	Latency    LatencyStats `json:"latency"`
}

// OK reports whether every case passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

func currentEnvironment() EnvironmentInfo {
	return EnvironmentInfo{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}
