package testutil

import (
	"fmt"
	"net"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRandomPort_Unique(t *testing.T) {
	seen := make(map[uint16]struct{})
	for range 20 {
		p := GetRandomPort(t)
		_, dup := seen[p]
		assert.False(t, dup, "port %d handed out twice", p)
		seen[p] = struct{}{}
	}
}

func TestGetRandomListeningPort_Bindable(t *testing.T) {
	addr := GetRandomListeningPort(t)
	l, err := net.Listen("tcp", addr)
	require.NoError(t, err)
	assert.NoError(t, l.Close())
}

func TestThreadSafeBuffer(t *testing.T) {
	buf := &ThreadSafeBuffer{}

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fmt.Fprintf(buf, "line %d\n", i)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Len(t, buf.LinesContaining("line"), 10)
	assert.Len(t, buf.LinesContaining("line 3"), 1)
	assert.Empty(t, buf.LinesContaining("missing"))
}
