//go:build !rs2

package sys

// Load returns the native binding. Without the "rs2" build tag there is
// none to return.
func Load() (API, error) {
	return nil, ErrUnavailable
}
