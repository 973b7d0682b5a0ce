package array

import (
	"fmt"
	"reflect"
	"sync"
)

// MacroFunc is a named operation on an *Array[T], registered with
// [RegisterMacro] and run with [CallMacro] or [Array.Macro].
type MacroFunc[T any] func(a *Array[T], args ...any) any

// macros maps a macro name to one implementation per element type, so
// "sum" can exist for both Array[int] and Array[float64].
var macros struct {
	mu    sync.RWMutex
	byKey map[string]map[reflect.Type]any
}

// RegisterMacro adds fn under name for arrays of T, replacing a macro
// already registered for the same name and element type. Safe to call
// from multiple goroutines.
//
//	array.RegisterMacro("sum", func(a *array.Array[int], _ ...any) any {
//	    return array.Reduce(a, func(acc, n int, _ array.Key) int { return acc + n }, 0)
//	})
//
//	total, _ := array.New(1, 2, 3).Macro("sum") // 6
func RegisterMacro[T any](name string, fn MacroFunc[T]) {
	if fn == nil {
		return
	}
	macros.mu.Lock()
	defer macros.mu.Unlock()
	if macros.byKey == nil {
		macros.byKey = make(map[string]map[reflect.Type]any)
	}
	impls := macros.byKey[name]
	if impls == nil {
		impls = make(map[reflect.Type]any)
		macros.byKey[name] = impls
	}
	impls[reflect.TypeFor[T]()] = fn
}

// HasMacro reports whether name is registered for any element type.
func HasMacro(name string) bool {
	macros.mu.RLock()
	defer macros.mu.RUnlock()
	return len(macros.byKey[name]) > 0
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.byKey = nil
}

// CallMacro runs the macro registered under name for arrays of T.
//
// It returns [ErrMacroNotFound] when name is unknown, and
// [ErrInvalidArgument] when name exists only for other element types.
func CallMacro[T any](name string, a *Array[T], args ...any) (any, error) {
	macros.mu.RLock()
	impls, ok := macros.byKey[name]
	fn, typed := impls[reflect.TypeFor[T]()]
	macros.mu.RUnlock()
	if !ok || len(impls) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	if !typed {
		return nil, fmt.Errorf("%w: macro %q is not registered for %s", ErrInvalidArgument, name, reflect.TypeFor[*Array[T]]())
	}
	return fn.(MacroFunc[T])(a, args...), nil
}

// Macro runs the macro registered under name for a's element type.
func (a *Array[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, a, args...)
}
