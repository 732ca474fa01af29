//go:build !linux

package handheld

import "github.com/oxport/menustack/pkg/menustack/input"

// Device is unavailable outside linux.
type Device struct{}

// Open always fails with ErrUnsupported.
func Open(path string, queue *input.Queue, grab bool) (*Device, error) {
	return nil, ErrUnsupported
}

func (d *Device) Name() string { return "" }

func (d *Device) Close() error { return nil }
