package orchestration

// Source is anything that hands out terms on request. The state-object
// sequences never fail; coroutine generators report exhaustion and producer
// panics through the error.
type Source[T any] interface {
	Next() (T, error)
}

// SourceFactory creates a fresh, independent Source.
type SourceFactory[T any] func() Source[T]

// infallible adapts a source that cannot fail.
type infallible[T any] struct {
	next interface{ Next() T }
}

func (s infallible[T]) Next() (T, error) {
	return s.next.Next(), nil
}

// Infallible adapts a type whose Next never fails into a Source.
func Infallible[T any](s interface{ Next() T }) Source[T] {
	return infallible[T]{next: s}
}

// Verifier reports whether value is the correct term at a 1-based index,
// returning the expected value's text when it is not.
type Verifier[T any] func(index int, value T) (ok bool, want string)

// formatted renders another source's terms as text.
type formatted[T any] struct {
	src    Source[T]
	format func(T) string
}

func (f formatted[T]) Next() (string, error) {
	v, err := f.src.Next()
	if err != nil {
		return "", err
	}
	return f.format(v), nil
}

func (f formatted[T]) Stop() {
	release(f.src)
}

// Formatted returns a source yielding src's terms rendered by format. Stopping
// it stops src.
func Formatted[T any](src Source[T], format func(T) string) Source[string] {
	return formatted[T]{src: src, format: format}
}

// Release stops src if it holds resources, such as a suspended coroutine.
func Release[T any](src Source[T]) {
	release(src)
}
