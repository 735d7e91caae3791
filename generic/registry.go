package generic

import (
	"reflect"
	"sync"
)

// registry caches Generic values per Go type. Generic values are immutable
// after Done, so concurrent readers need no further synchronization.
var registry sync.Map // reflect.Type → Generic[T]

// Register caches the Generic for T process-wide, making it available
// through Of. Registering T twice replaces the earlier entry.
func Register[T any](g Generic[T]) {
	registry.Store(typeOf[T](), g)
}

// Of returns the registered Generic for T, if any.
func Of[T any]() (Generic[T], bool) {
	v, ok := registry.Load(typeOf[T]())
	if !ok {
		var none Generic[T]
		return none, false
	}
	return v.(Generic[T]), true
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
