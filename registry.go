package attrib

import (
	"reflect"
	"sync"
)

// registryKey combines type, codec and resolved options for cache lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
	opts        options
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// Processors are cached per type, codec content type and option set, so
// WithRoot("a") and WithRoot("b") yield two processors.
func Use[T any](codec Codec, opts ...Option) (*Processor[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	key := registryKey{typ: reflect.TypeFor[T](), contentType: codec.ContentType(), opts: o}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Processor[T]), nil
	}

	processor, err := NewProcessor[T](codec, opts...)
	if err != nil {
		return nil, err
	}

	registry[key] = processor
	return processor, nil
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
