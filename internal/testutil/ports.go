// Package testutil holds helpers shared by tests.
package testutil

import (
	"net"
	"strconv"
	"sync"
	"testing"
)

var (
	portMutex sync.Mutex
	usedPorts = make(map[uint16]struct{})
)

// GetRandomPort returns a free TCP port that no other test in this process has been handed.
func GetRandomPort(t *testing.T) uint16 {
	t.Helper()
	portMutex.Lock()
	defer portMutex.Unlock()

	for {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("Failed to get random port: %v", err)
		}
		p := uint16(listener.Addr().(*net.TCPAddr).Port)
		if err := listener.Close(); err != nil {
			t.Fatalf("Failed to close listener: %v", err)
		}
		if _, ok := usedPorts[p]; ok {
			continue
		}
		usedPorts[p] = struct{}{}
		return p
	}
}

// GetRandomListeningPort returns "localhost:<port>" for a free port.
func GetRandomListeningPort(t *testing.T) string {
	t.Helper()
	return net.JoinHostPort("localhost", strconv.Itoa(int(GetRandomPort(t))))
}
