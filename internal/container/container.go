// Package container is a small typed service registry. Each Token maps to
// one factory; the factory runs on first resolution and its result is
// shared for the container's lifetime.
//
// A Container is meant to be populated and resolved during startup on a
// single goroutine. It is not safe for concurrent use.
package container

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
)

var (
	// ErrNotRegistered is returned when resolving a token with no provider.
	ErrNotRegistered = errors.New("service not registered")
	// ErrCycle is returned when a factory depends on itself, directly or
	// through other services.
	ErrCycle = errors.New("dependency cycle")
)

// Token identifies a service of type T.
type Token[T any] struct {
	name string
}

// NewToken returns a token with the given unique name.
func NewToken[T any](name string) Token[T] {
	return Token[T]{name: name}
}

// Name returns the token's name.
func (t Token[T]) Name() string {
	return t.name
}

func (t Token[T]) String() string {
	return t.name
}

type provider struct {
	build func(*Container) (any, error)
}

// Container holds providers and the singletons they produced.
type Container struct {
	providers map[string]provider
	instances map[string]any
	resolving []string
}

// New returns an empty container.
func New() *Container {
	return &Container{
		providers: make(map[string]provider),
		instances: make(map[string]any),
	}
}

// Provide registers factory as the singleton provider for tok. Registering
// a token again replaces its provider and drops any cached instance.
func Provide[T any](c *Container, tok Token[T], factory func(*Container) (T, error)) {
	c.providers[tok.name] = provider{
		build: func(c *Container) (any, error) {
			return factory(c)
		},
	}
	delete(c.instances, tok.name)
}

// Value registers an already constructed instance for tok.
func Value[T any](c *Container, tok Token[T], v T) {
	Provide(c, tok, func(*Container) (T, error) { return v, nil })
}

// Resolve returns the singleton for tok, building it and its dependencies
// on first use. Factory errors are not cached.
func Resolve[T any](c *Container, tok Token[T]) (T, error) {
	var zero T

	if inst, ok := c.instances[tok.name]; ok {
		return inst.(T), nil
	}

	p, ok := c.providers[tok.name]
	if !ok {
		return zero, fmt.Errorf("resolve %s: %w", tok.name, ErrNotRegistered)
	}

	if slices.Contains(c.resolving, tok.name) {
		chain := append(slices.Clone(c.resolving), tok.name)
		return zero, fmt.Errorf("resolve %s: %w: %s", tok.name, ErrCycle, strings.Join(chain, " -> "))
	}

	c.resolving = append(c.resolving, tok.name)
	inst, err := p.build(c)
	c.resolving = c.resolving[:len(c.resolving)-1]
	if err != nil {
		return zero, fmt.Errorf("resolve %s: %w", tok.name, err)
	}

	v, ok := inst.(T)
	if !ok {
		return zero, fmt.Errorf("resolve %s: provider returned %T", tok.name, inst)
	}

	c.instances[tok.name] = v
	return v, nil
}

// MustResolve is like Resolve but panics on error. Use it only where a
// failure is a wiring defect.
func MustResolve[T any](c *Container, tok Token[T]) T {
	v, err := Resolve(c, tok)
	if err != nil {
		panic(err)
	}
	return v
}

// Has reports whether a provider is registered under name.
func (c *Container) Has(name string) bool {
	_, ok := c.providers[name]
	return ok
}

// Names returns all registered token names, sorted.
func (c *Container) Names() []string {
	names := make([]string, 0, len(c.providers))
	for name := range c.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
