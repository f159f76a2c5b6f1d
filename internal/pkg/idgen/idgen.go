// Package idgen generates level ids and path request ids.
package idgen

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/Esderin/Standard-of-Iron/internal/pkg/idgen Generator,RequestIDs

// Generator generates unique string identifiers
type Generator interface {
	Generate() string
}

// RequestIDs hands out path request ids. Ids are never zero.
type RequestIDs interface {
	Next() uint64
}

// UUIDGenerator generates UUIDs with optional prefix
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a new UUID generator with optional prefix
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate creates a new UUID-based ID
func (g *UUIDGenerator) Generate() string {
	id := uuid.New().String()
	if g.prefix != "" {
		return fmt.Sprintf("%s_%s", g.prefix, id)
	}
	return id
}

// SequentialGenerator generates predictable ids for tests and fixtures.
type SequentialGenerator struct {
	prefix  string
	counter atomic.Uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := g.counter.Add(1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}

// Counter is a RequestIDs that counts up from 1. It is safe for concurrent
// use.
type Counter struct {
	n atomic.Uint64
}

// NewCounter returns a counter whose first id is 1.
func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the next id, skipping zero on wrap.
func (c *Counter) Next() uint64 {
	for {
		if id := c.n.Add(1); id != 0 {
			return id
		}
	}
}
