package lookup

import (
	"sort"
	"sync"
)

// Services supplies live owner instances for lookups.
// Implementations must be safe for concurrent use.
type Services interface {
	Instance(owner string) (any, bool)
}

// ServiceMap is an in-process Services populated at start-up.
type ServiceMap struct {
	mu        sync.RWMutex
	instances map[string]any
}

// NewServiceMap creates an empty ServiceMap.
func NewServiceMap() *ServiceMap {
	return &ServiceMap{instances: make(map[string]any)}
}

// Provide registers the instance for owner, replacing any previous one.
func (m *ServiceMap) Provide(owner string, instance any) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.instances[owner] = instance
}

// Instance implements Services.
func (m *ServiceMap) Instance(owner string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inst, ok := m.instances[owner]

	return inst, ok
}

// Owners returns the registered owner names, sorted.
func (m *ServiceMap) Owners() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owners := make([]string, 0, len(m.instances))
	for o := range m.instances {
		owners = append(owners, o)
	}

	sort.Strings(owners)

	return owners
}
