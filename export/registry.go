// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// EncoderFactory creates a new encoder instance.
// Factories are registered via Register() and called by NewEncoder().
type EncoderFactory func(opts Options) Encoder

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	encoders   = make(map[string]EncoderFactory)
)

// Register registers an encoder factory under a format name.
// This function is typically called from init() in encoder packages,
// following the database/sql driver pattern:
//
//	func init() {
//	    export.Register("svg", func(opts export.Options) export.Encoder {
//	        return New(opts)
//	    })
//	}
//
// Register panics if factory is nil or the name is already registered.
func Register(name string, factory EncoderFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("export: Register factory is nil")
	}
	if _, dup := encoders[name]; dup {
		panic("export: Register called twice for " + name)
	}
	encoders[name] = factory
}

// Unregister removes an encoder from the registry.
// This is primarily useful for testing. Unknown names are a no-op.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(encoders, name)
}

// ErrUnknownFormat is returned by NewEncoder for unregistered names.
var ErrUnknownFormat = errors.New("export: unknown format")

// NewEncoder creates an encoder by format name.
//
// Example:
//
//	import _ "github.com/gogpu/dodecagon/export/svg"
//
//	enc, err := export.NewEncoder("svg", export.Options{})
func NewEncoder(name string, opts Options) (Encoder, error) {
	registryMu.RLock()
	factory, ok := encoders[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownFormat, name)
	}
	return factory(opts), nil
}

// Encoders returns the registered format names, sorted.
func Encoders() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(encoders))
	for name := range encoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a format name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := encoders[name]
	return ok
}
