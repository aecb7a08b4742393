// Package plugin is the extension point for externally loaded capabilities.
// The core treats every capability as an opaque callback triple over a
// key-value state blob and never assumes anything about its internals.
package plugin

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// StateVersion is bumped when the blob layout changes; capabilities built
// against another version are refused at registration.
const StateVersion = 1

// State is the key-value blob exchanged with a capability.
type State struct {
	Version int
	Values  map[string]string
}

// NewState returns an empty blob at the current version.
func NewState() *State {
	return &State{Version: StateVersion, Values: map[string]string{}}
}

// Get returns the value for key, empty when absent.
func (s *State) Get(key string) string { return s.Values[key] }

// Set stores key=value.
func (s *State) Set(key, value string) { s.Values[key] = value }

// Capability is one loaded extension. Draw renders into a screen region,
// HandleInput reports whether the key was consumed, Update advances any
// internal animation or polling.
type Capability interface {
	Name() string
	Version() int
	Draw(screen tcell.Screen, x, y, width, height int, state *State)
	HandleInput(ev *tcell.EventKey, state *State) bool
	Update(state *State)
}

// Registry owns the loaded capabilities and the shared state blob.
// Explicitly constructed and injected, never a package global.
type Registry struct {
	mu           sync.Mutex
	capabilities map[string]Capability
	state        *State
}

func NewRegistry() *Registry {
	return &Registry{
		capabilities: map[string]Capability{},
		state:        NewState(),
	}
}

// Register refuses duplicates and version mismatches.
func (r *Registry) Register(c Capability) error {
	if c.Version() != StateVersion {
		return fmt.Errorf("plugin %s: state version %d, want %d", c.Name(), c.Version(), StateVersion)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.capabilities[c.Name()]; exists {
		return fmt.Errorf("plugin %s: already registered", c.Name())
	}
	r.capabilities[c.Name()] = c
	logrus.Infof("plugin %s registered", c.Name())
	return nil
}

// Names lists the registered capabilities, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.capabilities))
	for name := range r.capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named capability, nil when unknown.
func (r *Registry) Get(name string) Capability {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.capabilities[name]
}

// HandleInput offers the key to every capability until one consumes it.
func (r *Registry) HandleInput(ev *tcell.EventKey) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range r.sortedLocked() {
		if r.capabilities[name].HandleInput(ev, r.state) {
			return true
		}
	}
	return false
}

// Update advances every capability once.
func (r *Registry) Update() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range r.sortedLocked() {
		r.capabilities[name].Update(r.state)
	}
}

// Draw renders every capability into the same region, registration name
// order, later ones over earlier ones.
func (r *Registry) Draw(screen tcell.Screen, x, y, width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range r.sortedLocked() {
		r.capabilities[name].Draw(screen, x, y, width, height, r.state)
	}
}

func (r *Registry) sortedLocked() []string {
	names := make([]string, 0, len(r.capabilities))
	for name := range r.capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
