package screens

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/oxport/menustack/pkg/menustack"
	"github.com/oxport/menustack/pkg/menustack/constants"
	"github.com/oxport/menustack/pkg/menustack/input"
	"github.com/oxport/menustack/pkg/menustack/internal"
	"github.com/oxport/menustack/pkg/menustack/jobs"
	"github.com/oxport/menustack/pkg/menustack/locale"
	"github.com/oxport/menustack/pkg/menustack/options"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

type feed struct {
	events []input.Event
}

func (f *feed) Poll() []input.Event {
	events := f.events
	f.events = nil
	return events
}

type harness struct {
	t     *testing.T
	env   *Env
	clock *fakeClock
	feed  *feed
	ctrl  *menustack.Controller
}

func newEnv(t *testing.T, clock *fakeClock) *Env {
	t.Helper()

	store, err := options.Load(filepath.Join(t.TempDir(), "options.toml"), internal.DiscardLogger())
	if err != nil {
		t.Fatal(err)
	}
	tr, err := locale.New("en")
	if err != nil {
		t.Fatal(err)
	}
	runner := jobs.NewRunner(context.Background(), internal.DiscardLogger())
	t.Cleanup(runner.Shutdown)

	return &Env{
		Locale:  tr,
		Options: store,
		Jobs:    runner,
		Clock:   clock.now,
		Logger:  internal.DiscardLogger(),
	}
}

func newHarness(t *testing.T, configure func(env *Env)) *harness {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	env := newEnv(t, clock)
	if configure != nil {
		configure(env)
	}

	f := &feed{}
	ctrl := menustack.New(menustack.ControllerSettings{
		Root:   NewMainMenu(env),
		Error:  ErrorFactory(env),
		Source: f,
		Logger: internal.DiscardLogger(),
	})
	if env.Size == nil {
		env.Size = ctrl.Size
	}
	return &harness{t: t, env: env, clock: clock, feed: f, ctrl: ctrl}
}

func (h *harness) start(first menustack.Factory) {
	h.t.Helper()
	if first == nil {
		first = NewMainMenu(h.env)
	}
	if err := h.ctrl.Start(first); err != nil {
		h.t.Fatalf("Start() error = %v", err)
	}
}

func (h *harness) tick(events ...input.Event) {
	h.t.Helper()
	h.feed.events = events
	if err := h.ctrl.Tick(); err != nil {
		h.t.Fatalf("Tick() error = %v", err)
	}
}

func (h *harness) press(buttons ...constants.VirtualButton) {
	h.t.Helper()
	events := make([]input.Event, len(buttons))
	for i, b := range buttons {
		events[i] = input.Press(b)
	}
	h.tick(events...)
}

// tickUntil ticks in real time until done reports true. Used where a job
// goroutine has to finish.
func (h *harness) tickUntil(done func() bool) {
	h.t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		h.tick()
		if done() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	h.t.Fatalf("condition not reached; top is %T", h.ctrl.Top())
}

// launcher pushes next when A is pressed and shows an error on X.
type launcher struct {
	menustack.Base
	nav  menustack.Navigator
	next menustack.Factory
}

func launch(next menustack.Factory) menustack.Factory {
	return func(nav menustack.Navigator) (menustack.Screen, error) {
		return &launcher{nav: nav, next: next}, nil
	}
}

func (l *launcher) Handle(ev input.Event) {
	switch {
	case ev.IsPress(constants.VirtualButtonA):
		l.nav.Push(l.next)
	case ev.IsPress(constants.VirtualButtonX):
		l.nav.ShowError("boom")
	}
}

type gameScreen struct {
	menustack.Base
	save string
}

func TestMainMenuNavigation(t *testing.T) {
	h := newHarness(t, nil)
	h.start(nil)

	menu, ok := h.ctrl.Top().(*MainMenu)
	if !ok {
		t.Fatalf("top = %T, want *MainMenu", h.ctrl.Top())
	}
	if got := menu.View()[0]; got != "> New Game" {
		t.Errorf("first line = %q", got)
	}
	if !menu.Items[1].Disabled {
		t.Error("Load Game enabled without a loader")
	}

	h.press(constants.VirtualButtonDown)
	if menu.Focused() != 1 {
		t.Errorf("Focused() = %d, want 1", menu.Focused())
	}
	h.press(constants.VirtualButtonUp, constants.VirtualButtonUp)
	if menu.Focused() != 3 {
		t.Errorf("Focused() = %d, want 3 after wrapping", menu.Focused())
	}

	// Disabled entries do nothing.
	h.press(constants.VirtualButtonUp, constants.VirtualButtonUp, constants.VirtualButtonA)
	if h.ctrl.Len() != 1 {
		t.Errorf("Len() = %d after activating a disabled entry", h.ctrl.Len())
	}
}

func TestMainMenuRepeatsHeldDirection(t *testing.T) {
	h := newHarness(t, nil)
	h.start(nil)
	menu := h.ctrl.Top().(*MainMenu)

	h.press(constants.VirtualButtonDown)
	h.clock.advance(constants.DefaultRepeatDelay)
	h.tick()
	if menu.Focused() != 2 {
		t.Errorf("Focused() = %d, want 2 after repeat", menu.Focused())
	}

	h.tick(input.Release(constants.VirtualButtonDown))
	h.clock.advance(time.Second)
	h.tick()
	if menu.Focused() != 2 {
		t.Errorf("Focused() = %d, released direction kept repeating", menu.Focused())
	}
}

func TestMainMenuStopsRepeatingUnderOverlay(t *testing.T) {
	h := newHarness(t, nil)
	h.start(nil)
	menu := h.ctrl.Top().(*MainMenu)

	h.press(constants.VirtualButtonDown)
	h.press(constants.VirtualButtonB)
	if _, ok := h.ctrl.Top().(*Confirm); !ok {
		t.Fatalf("top = %T, want *Confirm", h.ctrl.Top())
	}

	// The release reaches the dialog, not the menu beneath it.
	h.tick(input.Release(constants.VirtualButtonDown))
	for range 10 {
		h.clock.advance(time.Second)
		h.tick()
	}
	if menu.Focused() != 1 {
		t.Errorf("Focused() = %d, want 1: menu kept scrolling under the dialog", menu.Focused())
	}
}

func TestOptionsCommit(t *testing.T) {
	h := newHarness(t, nil)
	h.start(nil)

	h.press(constants.VirtualButtonDown, constants.VirtualButtonDown, constants.VirtualButtonA)
	opts, ok := h.ctrl.Top().(*OptionsScreen)
	if !ok {
		t.Fatalf("top = %T, want *OptionsScreen", h.ctrl.Top())
	}
	if opts.View()[0] != "Options" {
		t.Errorf("title = %q", opts.View()[0])
	}

	h.press(constants.VirtualButtonDown, constants.VirtualButtonRight, constants.VirtualButtonA)
	if _, ok := h.ctrl.Top().(*MainMenu); !ok || h.ctrl.Len() != 1 {
		t.Fatalf("after save top = %T, len %d", h.ctrl.Top(), h.ctrl.Len())
	}

	want := options.MaxVolume/2 + VolumeStep
	if got := h.env.Options.Get().Audio.Music; got != want {
		t.Errorf("Music = %d, want %d", got, want)
	}
	reloaded, err := options.Load(h.env.Options.Path(), internal.DiscardLogger())
	if err != nil {
		t.Fatal(err)
	}
	if got := reloaded.Get().Audio.Music; got != want {
		t.Errorf("saved Music = %d, want %d", got, want)
	}
}

func TestOptionsDiscard(t *testing.T) {
	h := newHarness(t, nil)
	h.start(nil)

	h.press(constants.VirtualButtonDown, constants.VirtualButtonDown, constants.VirtualButtonA)
	h.press(constants.VirtualButtonDown, constants.VirtualButtonLeft, constants.VirtualButtonLeft, constants.VirtualButtonB)

	if h.ctrl.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.ctrl.Len())
	}
	if got := h.env.Options.Get().Audio.Music; got != options.MaxVolume/2 {
		t.Errorf("discarded change was stored: Music = %d", got)
	}
	if _, err := os.Stat(h.env.Options.Path()); !os.IsNotExist(err) {
		t.Error("discard wrote the options file")
	}
}

func TestOptionsVolumeClamps(t *testing.T) {
	h := newHarness(t, nil)
	h.start(NewOptionsScreen(h.env))
	opts := h.ctrl.Top().(*OptionsScreen)

	h.press(constants.VirtualButtonDown)
	for range 20 {
		h.press(constants.VirtualButtonRight)
	}
	if opts.Draft.Audio.Music != options.MaxVolume {
		t.Errorf("Music = %d, want %d", opts.Draft.Audio.Music, options.MaxVolume)
	}
	for range 20 {
		h.press(constants.VirtualButtonLeft)
	}
	if opts.Draft.Audio.Music != 0 {
		t.Errorf("Music = %d, want 0", opts.Draft.Audio.Music)
	}
}

func TestOptionsGameAndModToggles(t *testing.T) {
	h := newHarness(t, nil)
	h.start(NewOptionsScreen(h.env))
	opts := h.ctrl.Top().(*OptionsScreen)

	view := opts.View()
	if got := view[len(view)-1]; got != "  Mod xcom1: On" {
		t.Fatalf("mod row = %q", got)
	}

	for range 5 {
		h.press(constants.VirtualButtonDown)
	}
	h.press(constants.VirtualButtonRight)
	h.press(constants.VirtualButtonDown, constants.VirtualButtonLeft)
	if got := opts.View()[7]; got != "> Mod xcom1: Off" {
		t.Errorf("mod row = %q", got)
	}

	h.press(constants.VirtualButtonA)
	saved := h.env.Options.Get()
	if saved.Game.Autosave {
		t.Error("Autosave still on after toggling")
	}
	if len(saved.Mods) != 1 || saved.Mods[0].Active {
		t.Errorf("Mods = %+v, want xcom1 inactive", saved.Mods)
	}
}

func TestOptionsLanguageRelabelsMenu(t *testing.T) {
	h := newHarness(t, nil)
	h.start(nil)
	menu := h.ctrl.Top().(*MainMenu)

	h.press(constants.VirtualButtonDown, constants.VirtualButtonDown, constants.VirtualButtonA)
	opts := h.ctrl.Top().(*OptionsScreen)
	for opts.Draft.Language != "de" {
		h.press(constants.VirtualButtonRight)
		if h.ctrl.Ticks() > 20 {
			t.Fatal("German never offered")
		}
	}
	if !strings.Contains(opts.View()[1], "Deutsch") {
		t.Errorf("language row = %q", opts.View()[1])
	}

	h.press(constants.VirtualButtonA)
	if h.ctrl.Top() != menu {
		t.Fatalf("top = %T, want the main menu", h.ctrl.Top())
	}
	if menu.Items[0].Text != "Neues Spiel" {
		t.Errorf("label = %q, want German", menu.Items[0].Text)
	}
}

func TestOptionsSaveFailureKeepsDraft(t *testing.T) {
	h := newHarness(t, nil)
	dir := filepath.Join(t.TempDir(), "config")
	store, err := options.Load(filepath.Join(dir, "options.toml"), internal.DiscardLogger())
	if err != nil {
		t.Fatal(err)
	}
	// A regular file where the directory should go makes the save fail.
	if err := os.WriteFile(dir, nil, 0644); err != nil {
		t.Fatal(err)
	}
	h.env.Options = store

	h.start(nil)
	h.press(constants.VirtualButtonDown, constants.VirtualButtonDown, constants.VirtualButtonA)
	opts := h.ctrl.Top().(*OptionsScreen)
	h.press(constants.VirtualButtonDown, constants.VirtualButtonRight, constants.VirtualButtonA)

	dialog, ok := h.ctrl.Top().(*ErrorDialog)
	if !ok {
		t.Fatalf("top = %T, want *ErrorDialog", h.ctrl.Top())
	}
	if !strings.HasPrefix(dialog.Message, "Options could not be saved:") {
		t.Errorf("Message = %q", dialog.Message)
	}
	if dialog.Title != "Error" {
		t.Errorf("Title = %q", dialog.Title)
	}
	if h.ctrl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", h.ctrl.Len())
	}
	for range 5 {
		h.clock.advance(time.Second)
		h.tick()
	}
	if opts.Focused() != 1 {
		t.Errorf("Focused() = %d, want 1: rows kept scrolling under the dialog", opts.Focused())
	}

	h.press(constants.VirtualButtonA)
	if h.ctrl.Top() != opts {
		t.Fatalf("top = %T, want the options screen back", h.ctrl.Top())
	}
	if opts.Draft.Audio.Music != options.MaxVolume/2+VolumeStep {
		t.Errorf("draft lost: Music = %d", opts.Draft.Audio.Music)
	}
}

func TestQuitConfirm(t *testing.T) {
	h := newHarness(t, nil)
	h.start(nil)

	h.press(constants.VirtualButtonB)
	confirm, ok := h.ctrl.Top().(*Confirm)
	if !ok {
		t.Fatalf("top = %T, want *Confirm", h.ctrl.Top())
	}
	if confirm.FullScreen() {
		t.Error("confirm dialog is not an overlay")
	}
	if confirm.Selected() != 1 {
		t.Errorf("Selected() = %d, want 1 (No)", confirm.Selected())
	}
	if got := confirm.View(); got[0] != "Quit to desktop?" || got[1] != "Yes  < No >" {
		t.Errorf("View() = %q", got)
	}

	h.press(constants.VirtualButtonA)
	if !h.ctrl.Running() || h.ctrl.Len() != 1 {
		t.Fatalf("No: running %v, len %d", h.ctrl.Running(), h.ctrl.Len())
	}

	h.press(constants.VirtualButtonB)
	h.press(constants.VirtualButtonLeft, constants.VirtualButtonA)
	if h.ctrl.Running() {
		t.Error("Yes did not quit")
	}
}

func TestConfirmCountdown(t *testing.T) {
	h := newHarness(t, nil)
	var chosen []string
	choices := []Choice{
		{Label: "Keep", OnSelect: func(menustack.Navigator) { chosen = append(chosen, "keep") }},
		{Label: "Revert", OnSelect: func(menustack.Navigator) { chosen = append(chosen, "revert") }},
	}
	h.start(launch(NewConfirm(h.env, ConfirmSettings{
		Message:       "Keep these settings?",
		Choices:       choices,
		Timeout:       3 * time.Second,
		TimeoutChoice: 1,
	})))
	root := h.ctrl.Top()

	h.press(constants.VirtualButtonA)
	confirm := h.ctrl.Top().(*Confirm)
	if confirm.Remaining() != 3 {
		t.Fatalf("Remaining() = %d, want 3", confirm.Remaining())
	}

	h.clock.advance(time.Second)
	h.tick()
	h.clock.advance(time.Second)
	h.tick()
	if got := confirm.View()[2]; got != "Reverting in 1 second" {
		t.Errorf("countdown line = %q", got)
	}
	if len(chosen) != 0 {
		t.Fatalf("chosen early: %v", chosen)
	}

	h.clock.advance(time.Second)
	h.tick()
	if len(chosen) != 1 || chosen[0] != "revert" {
		t.Errorf("chosen = %v, want [revert]", chosen)
	}
	if h.ctrl.Top() != root {
		t.Errorf("top = %T, dialog did not close", h.ctrl.Top())
	}

	h.clock.advance(10 * time.Second)
	h.tick()
	if len(chosen) != 1 {
		t.Errorf("callback ran again: %v", chosen)
	}
}

func TestConfirmBackButton(t *testing.T) {
	h := newHarness(t, nil)
	called := false
	h.start(launch(NewConfirm(h.env, ConfirmSettings{
		Message:           "Sure?",
		Choices:           []Choice{{Label: "Yes", OnSelect: func(menustack.Navigator) { called = true }}},
		DisableBackButton: true,
	})))

	h.press(constants.VirtualButtonA)
	h.press(constants.VirtualButtonB)
	if _, ok := h.ctrl.Top().(*Confirm); !ok {
		t.Fatal("disabled back button closed the dialog")
	}
	h.press(constants.VirtualButtonStart)
	if !called {
		t.Error("Start did not select")
	}
}

func TestConfirmWithoutChoicesShowsError(t *testing.T) {
	h := newHarness(t, nil)
	h.start(launch(NewConfirm(h.env, ConfirmSettings{Message: "?"})))

	h.press(constants.VirtualButtonA)
	dialog, ok := h.ctrl.Top().(*ErrorDialog)
	if !ok {
		t.Fatalf("top = %T, want *ErrorDialog", h.ctrl.Top())
	}
	if dialog.Message != ErrNoChoices.Error() {
		t.Errorf("Message = %q", dialog.Message)
	}
	if h.ctrl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.ctrl.Len())
	}
}

func TestErrorDialogClosesOnce(t *testing.T) {
	h := newHarness(t, nil)
	h.start(launch(nil))
	root := h.ctrl.Top()

	h.press(constants.VirtualButtonX)
	if d, ok := h.ctrl.Top().(*ErrorDialog); !ok || d.Message != "boom" {
		t.Fatalf("top = %T, want the error dialog", h.ctrl.Top())
	}

	h.press(constants.VirtualButtonA, constants.VirtualButtonA)
	if h.ctrl.Top() != root || h.ctrl.Len() != 1 {
		t.Errorf("top = %T, len %d", h.ctrl.Top(), h.ctrl.Len())
	}
}

func TestLoadingReplacesItself(t *testing.T) {
	h := newHarness(t, nil)
	h.start(launch(NewLoading(h.env, "load", func(ctx context.Context) (string, error) {
		return "slot-1", nil
	}, func(save string) menustack.Factory {
		return menustack.Static(&gameScreen{save: save})
	})))

	h.press(constants.VirtualButtonA)
	if l, ok := h.ctrl.Top().(*Loading[string]); !ok || !strings.HasPrefix(l.View()[0], "Loading...") {
		t.Fatalf("top = %T, want the loading screen", h.ctrl.Top())
	}

	h.tickUntil(func() bool {
		_, ok := h.ctrl.Top().(*gameScreen)
		return ok
	})
	if got := h.ctrl.Top().(*gameScreen).save; got != "slot-1" {
		t.Errorf("save = %q", got)
	}
	if h.ctrl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.ctrl.Len())
	}
}

func TestLoadingFailureShowsError(t *testing.T) {
	h := newHarness(t, nil)
	h.start(launch(NewLoading(h.env, "load", func(ctx context.Context) (string, error) {
		return "", errors.New("corrupt save")
	}, func(string) menustack.Factory {
		t.Error("next called after failure")
		return nil
	})))

	h.press(constants.VirtualButtonA)
	h.tickUntil(func() bool {
		_, ok := h.ctrl.Top().(*ErrorDialog)
		return ok
	})
	if got := h.ctrl.Top().(*ErrorDialog).Message; got != "The saved game could not be loaded: corrupt save" {
		t.Errorf("Message = %q", got)
	}
	if h.ctrl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.ctrl.Len())
	}
}

func TestLoadingCancelDiscardsJob(t *testing.T) {
	h := newHarness(t, nil)
	release := make(chan struct{})
	h.start(launch(NewLoading(h.env, "slow", func(ctx context.Context) (string, error) {
		<-release
		return "late", nil
	}, func(save string) menustack.Factory {
		return menustack.Static(&gameScreen{save: save})
	})))
	root := h.ctrl.Top()

	h.press(constants.VirtualButtonA)
	job := h.ctrl.Top().(*Loading[string]).Job()

	h.press(constants.VirtualButtonB)
	if h.ctrl.Top() != root {
		t.Fatalf("top = %T, want the launcher", h.ctrl.Top())
	}
	if !job.Discarded() {
		t.Error("job not discarded")
	}

	close(release)
	<-job.Done()
	h.tick()
	if h.ctrl.Top() != root || h.ctrl.Len() != 1 {
		t.Errorf("discarded job changed the stack: top %T, len %d", h.ctrl.Top(), h.ctrl.Len())
	}
	if job.Poll() != jobs.StatusPending {
		t.Errorf("Poll() = %v, want pending", job.Poll())
	}
}

func TestLoadingWithoutRunner(t *testing.T) {
	h := newHarness(t, func(env *Env) { env.Jobs = nil })
	h.start(launch(NewLoading(h.env, "load", func(ctx context.Context) (int, error) {
		return 0, nil
	}, func(int) menustack.Factory { return nil })))

	h.press(constants.VirtualButtonA)
	if d, ok := h.ctrl.Top().(*ErrorDialog); !ok || d.Message != ErrNoRunner.Error() {
		t.Errorf("top = %T, want the error dialog", h.ctrl.Top())
	}
}

func TestMainMenuLoadGame(t *testing.T) {
	h := newHarness(t, func(env *Env) {
		env.LoadGame = func(ctx context.Context) (menustack.Factory, error) {
			return menustack.Static(&gameScreen{save: "auto"}), nil
		}
	})
	h.start(nil)

	h.press(constants.VirtualButtonDown, constants.VirtualButtonA)
	h.tickUntil(func() bool {
		_, ok := h.ctrl.Top().(*gameScreen)
		return ok
	})
	if h.ctrl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.ctrl.Len())
	}
}

const (
	redSlide  = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#ff0000"/></svg>`
	blueSlide = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#0000ff"/></svg>`
)

func centre(t *testing.T, s *Slideshow) (r, g, b uint32) {
	t.Helper()
	frame := s.Frame()
	if frame == nil {
		t.Fatal("Frame() = nil")
	}
	bounds := frame.Bounds()
	r, g, b, _ = frame.At(bounds.Dx()/2, bounds.Dy()/2).RGBA()
	return r >> 8, g >> 8, b >> 8
}

func TestSlideshowAdvances(t *testing.T) {
	h := newHarness(t, nil)
	slides := []Slide{{SVG: redSlide}, {SVG: blueSlide, Duration: time.Second}}
	h.start(launch(NewSlideshow(h.env, slides, nil)))
	root := h.ctrl.Top()

	h.press(constants.VirtualButtonA)
	show := h.ctrl.Top().(*Slideshow)
	if b := show.Frame().Bounds(); b.Dx() != 640 || b.Dy() != 400 {
		t.Errorf("frame bounds = %v, want 640x400", b)
	}
	if r, g, b := centre(t, show); r < 200 || g > 50 || b > 50 {
		t.Errorf("first slide centre = (%d,%d,%d), want red", r, g, b)
	}

	h.clock.advance(constants.DefaultSlideDuration)
	h.tick()
	if show.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", show.Index())
	}
	if r, g, b := centre(t, show); b < 200 || r > 50 || g > 50 {
		t.Errorf("second slide centre = (%d,%d,%d), want blue", r, g, b)
	}

	h.clock.advance(time.Second)
	h.tick()
	if h.ctrl.Top() != root {
		t.Errorf("top = %T, slideshow did not pop at the end", h.ctrl.Top())
	}
}

func TestSlideshowSkipAndResize(t *testing.T) {
	h := newHarness(t, nil)
	h.start(launch(NewSlideshow(h.env, []Slide{{SVG: redSlide}, {SVG: blueSlide}}, menustack.Static(&gameScreen{save: "new"}))))

	h.press(constants.VirtualButtonA)
	show := h.ctrl.Top().(*Slideshow)

	h.tick(input.Resize(800, 600))
	if b := show.Frame().Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Errorf("frame bounds after resize = %v", b)
	}

	h.press(constants.VirtualButtonB, constants.VirtualButtonB, constants.VirtualButtonB)
	game, ok := h.ctrl.Top().(*gameScreen)
	if !ok || game.save != "new" {
		t.Fatalf("top = %T, want the new game screen", h.ctrl.Top())
	}
	if h.ctrl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", h.ctrl.Len())
	}
}

func TestSlideshowUsesLiveDisplaySize(t *testing.T) {
	h := newHarness(t, nil)
	h.start(launch(NewSlideshow(h.env, []Slide{{SVG: redSlide}}, nil)))

	// The display changed before the slideshow existed.
	h.tick(input.Resize(1024, 768))
	h.press(constants.VirtualButtonA)
	show, ok := h.ctrl.Top().(*Slideshow)
	if !ok {
		t.Fatalf("top = %T, want *Slideshow", h.ctrl.Top())
	}
	if b := show.Frame().Bounds(); b.Dx() != 1024 || b.Dy() != 768 {
		t.Errorf("frame bounds = %v, want 1024x768", b)
	}
}

func TestSlideshowRejectsBadSVG(t *testing.T) {
	h := newHarness(t, nil)
	h.start(launch(NewSlideshow(h.env, []Slide{{SVG: `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1"`}}, nil)))

	h.press(constants.VirtualButtonA)
	if _, ok := h.ctrl.Top().(*ErrorDialog); !ok {
		t.Errorf("top = %T, want *ErrorDialog", h.ctrl.Top())
	}
}

func TestMainMenuNewGame(t *testing.T) {
	t.Run("intro then game", func(t *testing.T) {
		h := newHarness(t, func(env *Env) {
			env.Intro = []Slide{{SVG: redSlide}}
			env.NewGame = menustack.Static(&gameScreen{save: "fresh"})
		})
		h.start(nil)

		h.press(constants.VirtualButtonA)
		if _, ok := h.ctrl.Top().(*Slideshow); !ok {
			t.Fatalf("top = %T, want *Slideshow", h.ctrl.Top())
		}
		h.press(constants.VirtualButtonA)
		if _, ok := h.ctrl.Top().(*gameScreen); !ok {
			t.Errorf("top = %T, want the game", h.ctrl.Top())
		}
	})

	t.Run("intro disabled", func(t *testing.T) {
		h := newHarness(t, func(env *Env) {
			env.Intro = []Slide{{SVG: redSlide}}
			env.NewGame = menustack.Static(&gameScreen{save: "fresh"})
			opts := env.Options.Get()
			opts.Game.ShowIntro = false
			if err := env.Options.Commit(opts); err != nil {
				t.Fatal(err)
			}
		})
		h.start(nil)

		h.press(constants.VirtualButtonA)
		if _, ok := h.ctrl.Top().(*gameScreen); !ok {
			t.Errorf("top = %T, want the game", h.ctrl.Top())
		}
	})

	t.Run("nothing configured", func(t *testing.T) {
		h := newHarness(t, nil)
		h.start(nil)

		h.press(constants.VirtualButtonA)
		if d, ok := h.ctrl.Top().(*ErrorDialog); !ok || d.Message != ErrNoGame.Error() {
			t.Errorf("top = %T, want the error dialog", h.ctrl.Top())
		}
	})
}
