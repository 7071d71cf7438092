package app

import (
	"sync"
	"sync/atomic"
)

// lazy builds a component on first use and remembers the outcome. A failed build
// is not retried: every later call returns the same error.
type lazy[T any] struct {
	once  sync.Once
	built atomic.Bool
	val   T
	err   error
}

func (l *lazy[T]) get(build func() (T, error)) (T, error) {
	l.once.Do(func() {
		l.val, l.err = build()
		if l.err == nil {
			l.built.Store(true)
		}
	})
	return l.val, l.err
}

// value is get for builders that cannot fail.
func (l *lazy[T]) value(build func() T) T {
	v, _ := l.get(func() (T, error) { return build(), nil })
	return v
}

// peek returns the component only if it was already built successfully. It never
// triggers a build.
func (l *lazy[T]) peek() (T, bool) {
	if !l.built.Load() {
		var zero T
		return zero, false
	}
	return l.val, true
}
