package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning is returned when another desktop timer holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minInstancePort = 20000
	maxInstancePort = 39999
)

// InstanceGuard keeps a second desktop timer from starting. Two running
// workouts would fight over the display wake lock and play overlapping cues,
// so the desktop app takes the guard before it opens the speaker.
//
// The guard is a TCP listener on a loopback port derived from the app name.
// The OS drops it when the process dies, so a crash never leaves a stale lock.
type InstanceGuard struct {
	listener net.Listener
	address  string
}

// AcquireSingleInstance takes the guard for appName or returns an error
// wrapping ErrAlreadyRunning.
func AcquireSingleInstance(appName string) (*InstanceGuard, error) {
	address := net.JoinHostPort("127.0.0.1", fmt.Sprint(instancePort(appName)))
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyRunning, address)
	}
	return &InstanceGuard{listener: listener, address: address}, nil
}

// Release gives the guard back. Releasing twice, or a nil guard, is fine.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	listener := guard.listener
	guard.listener = nil
	return listener.Close()
}

// Address is the loopback address the guard listens on.
func (guard *InstanceGuard) Address() string {
	if guard == nil {
		return ""
	}
	return guard.address
}

// instancePort maps appName onto [minInstancePort, maxInstancePort].
func instancePort(appName string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	span := uint32(maxInstancePort - minInstancePort + 1)
	return minInstancePort + int(hash.Sum32()%span)
}
