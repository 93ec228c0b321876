package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps command names to procedure implementations and maintains
// symmetric alias sets, so multiple names resolve to one implementation.
// Aliases are flat set memberships, not a tree: every name carries its own
// ordered alias set whose first inserted member identifies whether the name
// is a primary (first member is itself) or an alias (first member is the
// command it was attached to).
//
// All operations are safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	procedures map[string]any
	aliasSets  map[string][]string
}

// Stats reports the registry's primary-vs-alias composition.
type Stats struct {
	Primaries int `json:"primaries"`
	Aliases   int `json:"aliases"`
}

// New creates an empty registry.
//
// Example:
//
//	reg := registry.New()
//	reg.Register("getUser", getUser)
//	if err := reg.Alias("getUser", "fetchUser"); err != nil { ... }
//	proc, ok := reg.Get("fetchUser") // same implementation
func New() *Registry {
	return &Registry{
		procedures: make(map[string]any),
		aliasSets:  make(map[string][]string),
	}
}

// Register binds a name to a procedure. Re-registration overwrites the
// implementation for the name and every alias already attached to it; the
// alias set survives.
func (r *Registry) Register(name string, proc any) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.aliasSets[name]; !exists {
		r.aliasSets[name] = []string{name}
	}

	// Every member of the alias set resolves to the same implementation.
	for _, member := range r.aliasSets[name] {
		r.procedures[member] = proc
	}
	r.procedures[name] = proc
}

// Alias makes aliasName directly callable as commandName's procedure and
// establishes bidirectional set membership, so Resolve works in either
// direction. Re-aliasing the same pair is idempotent. Assigning an alias
// that currently belongs to a different command moves it: the alias is
// fully removed from its previous owner's set first, leaving no stale
// membership behind.
//
// Returns ErrUnknownCommand if commandName is not registered.
func (r *Registry) Alias(commandName, aliasName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	proc, exists := r.procedures[commandName]
	if !exists {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, commandName)
	}
	if aliasName == commandName {
		return nil
	}
	if containsName(r.aliasSets[commandName], aliasName) {
		return nil
	}

	// Moving an alias detaches it from its previous owner completely.
	if prevSet, taken := r.aliasSets[aliasName]; taken {
		if len(prevSet) > 0 && prevSet[0] == aliasName {
			return fmt.Errorf("%w: %s", ErrNameTaken, aliasName)
		}
		prevOwner := prevSet[0]
		r.aliasSets[prevOwner] = removeName(r.aliasSets[prevOwner], aliasName)
		delete(r.aliasSets, aliasName)
		delete(r.procedures, aliasName)
	}

	r.aliasSets[commandName] = append(r.aliasSets[commandName], aliasName)
	r.aliasSets[aliasName] = []string{commandName, aliasName}
	r.procedures[aliasName] = proc
	return nil
}

// Get returns the procedure registered under the name (primary or alias).
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	proc, ok := r.procedures[name]
	return proc, ok
}

// Has reports whether the name is callable.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.procedures[name]
	return ok
}

// Resolve returns some other member of the name's alias set: for an alias
// that is the command it was attached to; for a primary it is the first
// alias attached. With chained aliasing across three or more names the
// choice is insertion-order-dependent and is not a guaranteed canonical
// primary. Returns false for unknown names and names without aliases.
func (r *Registry) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, member := range r.aliasSets[name] {
		if member != name {
			return member, true
		}
	}
	return "", false
}

// GetAliases returns a copy of the name's alias set, including the name
// itself. Returns nil for unknown names.
func (r *Registry) GetAliases(name string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.aliasSets[name]
	if !ok {
		return nil
	}
	out := make([]string, len(set))
	copy(out, set)
	return out
}

// AllNames returns every callable name, primaries and aliases, sorted.
func (r *Registry) AllNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.procedures))
	for name := range r.procedures {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CommandNames returns the primary names only, sorted. A primary is a name
// whose alias set's first inserted member is the name itself.
func (r *Registry) CommandNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.aliasSets))
	for name, set := range r.aliasSets {
		if len(set) > 0 && set[0] == name {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Unregister removes the name and every member of its alias set.
// Unknown names are a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.aliasSets[name]
	if !ok {
		return
	}

	// Expand across member sets so unregistering via an alias removes the
	// primary and its other aliases too.
	members := []string{name}
	queue := append([]string(nil), set...)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if containsName(members, next) {
			continue
		}
		members = append(members, next)
		queue = append(queue, r.aliasSets[next]...)
	}

	for _, member := range members {
		delete(r.procedures, member)
		delete(r.aliasSets, member)
	}
}

// Clear removes every registration and alias.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.procedures = make(map[string]any)
	r.aliasSets = make(map[string][]string)
}

// GetStats reports how many callable names are primaries vs aliases.
func (r *Registry) GetStats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats Stats
	for name, set := range r.aliasSets {
		if len(set) > 0 && set[0] == name {
			stats.Primaries++
			continue
		}
		stats.Aliases++
	}
	return stats
}

func containsName(set []string, name string) bool {
	for _, member := range set {
		if member == name {
			return true
		}
	}
	return false
}

func removeName(set []string, name string) []string {
	out := set[:0]
	for _, member := range set {
		if member != name {
			out = append(out, member)
		}
	}
	return out
}
