//go:build !linux && !windows
// +build !linux,!windows

// File: affinity/affinity_stub.go
// License: Apache-2.0
//
// Stub for platforms without thread affinity support.

package affinity

import "errors"

// setAffinityPlatform reports affinity as unavailable.
func setAffinityPlatform(cpuID int) error {
	return errors.New("affinity: not supported on this platform")
}
