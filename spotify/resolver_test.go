package spotify

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolverCaseInsensitive(t *testing.T) {
	r := NewDeviceResolver()
	r.Set("Kitchen", "id1")

	tests := []struct {
		name   string
		lookup string
		wantID string
		wantOK bool
	}{
		{"exact case", "Kitchen", "id1", true},
		{"lower case", "kitchen", "id1", true},
		{"upper case", "KITCHEN", "id1", true},
		{"mixed case", "kItChEn", "id1", true},
		{"unknown device", "unknown-device", "", false},
		{"empty name", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := r.Resolve(tt.lookup)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestResolverLivingRoomScenario(t *testing.T) {
	r := NewDeviceResolver()
	r.Set("Living Room", "dev-42")

	id, ok := r.Resolve("LIVING ROOM")
	assert.True(t, ok)
	assert.Equal(t, "dev-42", id)
}

func TestResolverUnseeded(t *testing.T) {
	r := NewDeviceResolver()

	id, ok := r.Resolve("Office")
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestResolverLastWriteWins(t *testing.T) {
	r := NewDeviceResolver()
	r.Set("Kitchen", "id1")
	r.Set("KITCHEN", "id2")

	id, ok := r.Resolve("kitchen")
	assert.True(t, ok)
	assert.Equal(t, "id2", id)
	assert.Equal(t, 1, r.Len())
}

func TestResolverSetIdempotent(t *testing.T) {
	r := NewDeviceResolver()
	r.Set("Kitchen", "id1")
	r.Set("Kitchen", "id1")

	assert.Equal(t, 1, r.Len())
	id, ok := r.Resolve("Kitchen")
	assert.True(t, ok)
	assert.Equal(t, "id1", id)
}

func TestResolverInvalidate(t *testing.T) {
	r := NewDeviceResolver()
	r.Set("Kitchen", "id1")
	r.Set("Living Room", "dev-42")

	r.Invalidate()

	assert.Equal(t, 0, r.Len())
	for _, name := range []string{"Kitchen", "Living Room"} {
		_, ok := r.Resolve(name)
		assert.False(t, ok, "expected %q to be unresolved after Invalidate", name)
	}
}

func TestResolverConcurrentAccess(t *testing.T) {
	r := NewDeviceResolver()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Set(fmt.Sprintf("Device %d", n), fmt.Sprintf("id-%d", n))
			}
		}(i)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Resolve(fmt.Sprintf("device %d", n))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 8, r.Len())
}
