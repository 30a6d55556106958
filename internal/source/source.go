// Package source defines where dashboard data comes from. A Source only
// promises to return a value or fail with an error; the store does not care
// whether the value came from memory, a database or a remote service.
package source

import "context"

// Source produces one category of dashboard data.
type Source[T any] interface {
	Fetch(ctx context.Context) (T, error)
}

// Func adapts an ordinary function to a Source.
type Func[T any] func(ctx context.Context) (T, error)

// Fetch calls f.
func (f Func[T]) Fetch(ctx context.Context) (T, error) {
	return f(ctx)
}

// Static returns a Source that always yields v.
func Static[T any](v T) Source[T] {
	return Func[T](func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return v, nil
	})
}
