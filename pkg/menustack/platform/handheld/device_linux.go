//go:build linux

package handheld

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/holoplot/go-evdev"

	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/internal"
)

// Device is an open evdev input device feeding a queue.
type Device struct {
	path    string
	name    string
	dev     *evdev.InputDevice
	queue   *input.Queue
	mapping map[evdev.EvCode]constants.VirtualButton

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// Open opens the device at path (e.g. /dev/input/event3) and starts reading
// it. With grab set the device is taken exclusively so its keys do not also
// reach a console or window.
func Open(path string, queue *input.Queue, grab bool) (*Device, error) {
	dev, err := evdev.Open(path)
	if err != nil {
		return nil, fmt.Errorf("handheld: open %s: %w", path, err)
	}

	name, err := dev.Name()
	if err != nil {
		name = path
	}

	if grab {
		if err := dev.Grab(); err != nil {
			dev.Close()
			return nil, fmt.Errorf("handheld: grab %s: %w", path, err)
		}
	}

	d := &Device{
		path:    path,
		name:    name,
		dev:     dev,
		queue:   queue,
		mapping: DefaultMapping,
	}

	internal.GetInternalLogger().Info("input device opened", "path", path, "name", name, "grab", grab)

	d.wg.Add(1)
	go d.read()
	return d, nil
}

// Name returns the device's reported name.
func (d *Device) Name() string {
	return d.name
}

// Close stops reading and releases the device. It waits for the reader to exit.
func (d *Device) Close() error {
	var err error
	d.closeOnce.Do(func() {
		err = d.dev.Close()
		d.wg.Wait()
	})
	return err
}

func (d *Device) read() {
	defer d.wg.Done()
	logger := internal.GetInternalLogger()

	for {
		ev, err := d.dev.ReadOne()
		if err != nil {
			if !errors.Is(err, os.ErrClosed) {
				logger.Warn("input device read stopped", "path", d.path, "error", err)
			}
			return
		}

		button, pressed, ok := Translate(d.mapping, ev)
		if !ok {
			continue
		}

		event := input.Release(button)
		if pressed {
			event = input.Press(button)
		}
		event.Device = d.name

		if !d.queue.Post(event) {
			logger.Debug("input queue full, event dropped", "path", d.path, "button", button.String())
		}
	}
}
