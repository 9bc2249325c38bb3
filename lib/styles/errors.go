package styles

import "errors"

// Sentinel errors for style operations.
var (
	ErrInvalidColor = errors.New("styles: invalid hex color")
	ErrCacheMiss    = errors.New("styles: cache miss")
	ErrInvalidSheet = errors.New("styles: invalid stylesheet")
)

// IsCacheMiss checks if err is a cache miss.
func IsCacheMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}
