package spotify

import (
	"strings"
	"sync"
)

// DeviceResolver maps human-readable device names to Spotify Connect device
// ids. Lookups are case-insensitive and the last write for a folded name
// wins. The registry is seeded at startup from a device listing and refreshed
// whenever a listing is re-issued; it never persists across restarts.
//
// A RWMutex guards the map because tool invocations run concurrently and
// get_devices re-seeds the registry while others may be resolving.
type DeviceResolver struct {
	mu      sync.RWMutex
	devices map[string]string
}

// NewDeviceResolver creates an empty resolver.
func NewDeviceResolver() *DeviceResolver {
	return &DeviceResolver{devices: make(map[string]string)}
}

// Set records or overwrites the mapping for the case-folded name.
func (r *DeviceResolver) Set(name, id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices[strings.ToLower(name)] = id
}

// Resolve returns the device id recorded under the case-folded name.
// An empty or unknown name is a normal outcome, not an error: the caller
// then targets whatever device is currently active.
func (r *DeviceResolver) Resolve(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.devices[strings.ToLower(name)]
	return id, ok
}

// Invalidate clears all mappings. Used at shutdown or when the device
// topology is known to be stale.
func (r *DeviceResolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices = make(map[string]string)
}

// Len reports how many names are currently registered.
func (r *DeviceResolver) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.devices)
}
