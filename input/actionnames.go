package input

// Action is a control the user can trigger from the keyboard
type Action uint8

const (
	ActionNone Action = iota
	ActionSpeed1
	ActionSpeed2
	ActionSpeed3
	ActionSpeed4
	ActionSpeed5
	ActionNextColor
	ActionNextFont
	ActionPause
	ActionToggleEmoji
	ActionToggleShadow
	ActionToggleStatus
	ActionQuit
	actionCount
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve config strings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	"speed_1":       ActionSpeed1,
	"speed_2":       ActionSpeed2,
	"speed_3":       ActionSpeed3,
	"speed_4":       ActionSpeed4,
	"speed_5":       ActionSpeed5,
	"next_color":    ActionNextColor,
	"next_font":     ActionNextFont,
	"pause":         ActionPause,
	"toggle_emoji":  ActionToggleEmoji,
	"toggle_shadow": ActionToggleShadow,
	"toggle_status": ActionToggleStatus,
	"quit":          ActionQuit,
}

var actionNames = func() [actionCount]string {
	var names [actionCount]string
	for name, a := range actionRegistry {
		names[a] = name
	}
	return names
}()

// ActionByName resolves a canonical action name
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// SpeedSlot returns the 0-based speed slot for speed actions, -1 otherwise
func (a Action) SpeedSlot() int {
	if a >= ActionSpeed1 && a <= ActionSpeed5 {
		return int(a - ActionSpeed1)
	}
	return -1
}
