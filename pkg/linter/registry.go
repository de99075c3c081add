package linter

import (
	"fmt"

	"github.com/yaklabco/aglint/pkg/config"
)

// RegistryError is returned for duplicate-add or missing-remove/disable
// registry operations (spec §7 RegistryError). Thrown synchronously to
// the API caller, never surfaced as a Problem.
type RegistryError struct {
	Op   string
	Name string
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("linter registry: %s: rule %q", e.Op, e.Name)
}

// entry is the registry's bookkeeping for one registered rule (spec
// §4.7 "RuleEntry = {rule, storage, configOverride?, severityOverride?}").
type entry struct {
	rule     Rule
	storage  map[string]any
	ruleCfg  *config.RuleConfig
	disabled bool
}

// Registry holds rules in insertion order, since spec §5 requires onRule
// to fire in a "defined sequence" matching registration order — unlike
// the teacher's sorted-by-ID registry, order here is observable kernel
// behavior, not just a presentation concern.
type Registry struct {
	order   []string
	entries map[string]*entry
}

// NewRegistry creates an empty, insertion-ordered rule registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Add registers a rule under its own Name(). Returns a RegistryError if
// a rule with that name is already registered (spec §4.7 "duplicate add
// ... signals an error").
func (r *Registry) Add(rule Rule) error {
	name := rule.Name()
	if _, exists := r.entries[name]; exists {
		return &RegistryError{Op: "add", Name: name}
	}
	r.order = append(r.order, name)
	r.entries[name] = &entry{
		rule:    rule,
		storage: make(map[string]any),
	}
	return nil
}

// Remove unregisters a rule by name. Returns a RegistryError if no such
// rule is registered.
func (r *Registry) Remove(name string) error {
	if _, exists := r.entries[name]; !exists {
		return &RegistryError{Op: "remove", Name: name}
	}
	delete(r.entries, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Has reports whether a rule with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

// Get returns the registered rule by name.
func (r *Registry) Get(name string) (Rule, bool) {
	e, ok := r.entries[name]
	if !ok {
		return nil, false
	}
	return e.rule, true
}

// Names returns every registered rule name in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Entries returns every registered rule in registration order.
func (r *Registry) Entries() []Rule {
	out := make([]Rule, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].rule)
	}
	return out
}

func (r *Registry) mustEntry(name string) *entry {
	return r.entries[name]
}
