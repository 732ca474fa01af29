package screens

// MenuAction is what activating a main menu entry does.
type MenuAction int

const (
	MenuActionNone     MenuAction = iota
	MenuActionNewGame             // Intro slideshow, then the new game screen
	MenuActionLoadGame            // Loading screen running Env.LoadGame
	MenuActionOptions             // Options screen
	MenuActionQuit                // Quit confirmation overlay
)

func (a MenuAction) String() string {
	switch a {
	case MenuActionNewGame:
		return "new-game"
	case MenuActionLoadGame:
		return "load-game"
	case MenuActionOptions:
		return "options"
	case MenuActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// MenuItem represents a single entry of a menu screen.
type MenuItem struct {
	MessageID string     // Locale message for the label
	Text      string     // Label in the current language, refreshed on Init
	Action    MenuAction // What activating the entry does
	Disabled  bool       // Shown but skipped by activation
	Focused   bool       // Managed by the menu
}
