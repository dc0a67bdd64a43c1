// Package projector provides the projector runtime: at-least-once event
// reception with a watermark gate, transactional apply, deterministic state
// snapshots, and full rebuild from the log.
package projector

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"sort"
	"sync"

	"github.com/mnemonic-nexus/mnx/pkg/envelope"
)

// Delivery is one event presented to a projector's Apply.
type Delivery struct {
	GlobalSeq int64
	EventID   string
	Envelope  *envelope.Envelope
}

// Projector is a lens maintainer. Apply runs inside the runtime's
// transaction: the watermark gate has already passed and the transaction is
// scoped to the event's world. Apply must be idempotent per (identity,
// version) even so, since rebuilds replay from zero.
type Projector interface {
	// Name identifies the projector in watermarks and endpoints.
	Name() string

	// Lens names the owned table family, for logging and admin output.
	Lens() string

	// Apply folds one event into the lens. Unknown kinds must no-op.
	Apply(ctx context.Context, tx *stdsql.Tx, d *Delivery) error

	// Snapshot returns a deterministic view of the lens state for one
	// stream: stable ordering, no wall-clock fields.
	Snapshot(ctx context.Context, tx *stdsql.Tx, worldID, branch string) (map[string]interface{}, error)

	// Truncate removes all lens rows for one stream. Used by rebuild.
	Truncate(ctx context.Context, tx *stdsql.Tx, worldID, branch string) error
}

// Registry holds the projectors known to this process.
type Registry struct {
	mu         sync.RWMutex
	projectors map[string]Projector
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{projectors: make(map[string]Projector)}
}

// Register adds a projector. Registering a duplicate name is a programming
// error and panics at startup.
func (r *Registry) Register(p Projector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.projectors[p.Name()]; exists {
		panic(fmt.Sprintf("projector %q registered twice", p.Name()))
	}
	r.projectors[p.Name()] = p
}

// Get returns a projector by name.
func (r *Registry) Get(name string) (Projector, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.projectors[name]
	return p, ok
}

// Names returns the registered projector names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.projectors))
	for name := range r.projectors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
