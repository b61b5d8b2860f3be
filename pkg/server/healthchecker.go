package server

import (
	"context"
	"time"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// Pinger is anything that can be pinged, such as a storage backend.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingHealthChecker reports healthy while its target answers Ping within
// the timeout.
type PingHealthChecker struct {
	target  Pinger
	timeout time.Duration
}

func NewPingHealthChecker(target Pinger, timeout time.Duration) *PingHealthChecker {
	return &PingHealthChecker{target: target, timeout: timeout}
}

func (hc *PingHealthChecker) Healthy(ctx context.Context) bool {
	if hc.target == nil {
		return false
	}
	if hc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, hc.timeout)
		defer cancel()
	}
	return hc.target.Ping(ctx) == nil
}
