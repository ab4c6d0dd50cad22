// Package di provides a minimal service container used by the monolith.
package di

import (
	"fmt"
	"sync"
)

// ServiceRegistry is the read side of the container.
type ServiceRegistry interface {
	// Get returns the registered service or nil when the token is unknown.
	Get(token string) any
}

// Container registers and resolves services by token. Modules register
// during startup; resolution afterwards is concurrency-safe.
type Container interface {
	ServiceRegistry
	Register(token string, service any)
}

type container struct {
	mu       sync.RWMutex
	services map[string]any
}

// NewContainer creates an empty Container.
func NewContainer() Container {
	return &container{services: make(map[string]any)}
}

func (c *container) Register(token string, service any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[token] = service
}

func (c *container) Get(token string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.services[token]
}

// MustGet resolves a service of type T, panicking on a missing or
// wrongly-typed registration. Wiring bugs should fail loudly at startup.
func MustGet[T any](reg ServiceRegistry, token string) T {
	svc := reg.Get(token)
	if svc == nil {
		panic(fmt.Sprintf("di: service %q not registered", token))
	}
	typed, ok := svc.(T)
	if !ok {
		panic(fmt.Sprintf("di: service %q has unexpected type %T", token, svc))
	}
	return typed
}
