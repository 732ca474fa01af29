package desktop

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/internal"
)

// DefaultKeyMap maps keyboard keys onto virtual buttons.
var DefaultKeyMap = map[sdl.Keycode]constants.VirtualButton{
	sdl.K_UP:        constants.VirtualButtonUp,
	sdl.K_DOWN:      constants.VirtualButtonDown,
	sdl.K_LEFT:      constants.VirtualButtonLeft,
	sdl.K_RIGHT:     constants.VirtualButtonRight,
	sdl.K_RETURN:    constants.VirtualButtonA,
	sdl.K_SPACE:     constants.VirtualButtonA,
	sdl.K_ESCAPE:    constants.VirtualButtonB,
	sdl.K_BACKSPACE: constants.VirtualButtonB,
	sdl.K_x:         constants.VirtualButtonX,
	sdl.K_y:         constants.VirtualButtonY,
	sdl.K_PAGEUP:    constants.VirtualButtonL1,
	sdl.K_PAGEDOWN:  constants.VirtualButtonR1,
	sdl.K_s:         constants.VirtualButtonStart,
	sdl.K_TAB:       constants.VirtualButtonSelect,
	sdl.K_m:         constants.VirtualButtonMenu,
}

// DefaultControllerMap maps game controller buttons onto virtual buttons.
var DefaultControllerMap = map[sdl.GameControllerButton]constants.VirtualButton{
	sdl.CONTROLLER_BUTTON_DPAD_UP:       constants.VirtualButtonUp,
	sdl.CONTROLLER_BUTTON_DPAD_DOWN:     constants.VirtualButtonDown,
	sdl.CONTROLLER_BUTTON_DPAD_LEFT:     constants.VirtualButtonLeft,
	sdl.CONTROLLER_BUTTON_DPAD_RIGHT:    constants.VirtualButtonRight,
	sdl.CONTROLLER_BUTTON_A:             constants.VirtualButtonA,
	sdl.CONTROLLER_BUTTON_B:             constants.VirtualButtonB,
	sdl.CONTROLLER_BUTTON_X:             constants.VirtualButtonX,
	sdl.CONTROLLER_BUTTON_Y:             constants.VirtualButtonY,
	sdl.CONTROLLER_BUTTON_LEFTSHOULDER:  constants.VirtualButtonL1,
	sdl.CONTROLLER_BUTTON_RIGHTSHOULDER: constants.VirtualButtonR1,
	sdl.CONTROLLER_BUTTON_START:         constants.VirtualButtonStart,
	sdl.CONTROLLER_BUTTON_BACK:          constants.VirtualButtonSelect,
	sdl.CONTROLLER_BUTTON_GUIDE:         constants.VirtualButtonMenu,
}

// Source polls the SDL event queue. It must be polled on the thread that
// created the window.
type Source struct {
	Keys        map[sdl.Keycode]constants.VirtualButton
	Controllers map[sdl.GameControllerButton]constants.VirtualButton

	open map[sdl.JoystickID]*sdl.GameController
}

// NewSource creates a source using the default mappings.
func NewSource() *Source {
	return &Source{
		Keys:        DefaultKeyMap,
		Controllers: DefaultControllerMap,
		open:        make(map[sdl.JoystickID]*sdl.GameController),
	}
}

// Poll implements input.Source.
func (s *Source) Poll() []input.Event {
	var events []input.Event

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			events = append(events, input.Quit())

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if button, ok := s.Keys[e.Keysym.Sym]; ok {
				events = append(events, s.buttonEvent(e.Type == sdl.KEYDOWN, button, "keyboard"))
			}

		case *sdl.TextInputEvent:
			events = append(events, input.Text(e.GetText()))

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				events = append(events, input.Resize(int(e.Data1), int(e.Data2)))
			}

		case *sdl.ControllerDeviceEvent:
			s.controllerDevice(e)

		case *sdl.ControllerButtonEvent:
			if button, ok := s.Controllers[sdl.GameControllerButton(e.Button)]; ok {
				events = append(events, s.buttonEvent(e.Type == sdl.CONTROLLERBUTTONDOWN, button, "controller"))
			}
		}
	}

	return events
}

// Close releases opened game controllers.
func (s *Source) Close() {
	for id, gc := range s.open {
		gc.Close()
		delete(s.open, id)
	}
}

func (s *Source) buttonEvent(pressed bool, button constants.VirtualButton, device string) input.Event {
	ev := input.Release(button)
	if pressed {
		ev = input.Press(button)
	}
	ev.Device = device
	return ev
}

func (s *Source) controllerDevice(e *sdl.ControllerDeviceEvent) {
	logger := internal.GetInternalLogger()

	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		gc := sdl.GameControllerOpen(int(e.Which))
		if gc == nil {
			logger.Warn("opening game controller failed", "index", e.Which, "error", sdl.GetError())
			return
		}
		id := gc.Joystick().InstanceID()
		s.open[id] = gc
		logger.Info("game controller connected", "name", gc.Name(), "id", id)

	case sdl.CONTROLLERDEVICEREMOVED:
		if gc, ok := s.open[e.Which]; ok {
			gc.Close()
			delete(s.open, e.Which)
			logger.Info("game controller disconnected", "id", e.Which)
		}
	}
}
