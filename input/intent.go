// Package input translates terminal key events into timer intents.
package input

// IntentType is what the user asked for, independent of the key pressed
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentToggle
	IntentRestart
	IntentToggleMode
	IntentToggleSound
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentToggle:      "toggle",
	IntentRestart:     "restart",
	IntentToggleMode:  "mode",
	IntentToggleSound: "sound",
	IntentQuit:        "quit",
}

func (i IntentType) String() string {
	if int(i) < len(intentNames) {
		return intentNames[i]
	}
	return "unknown"
}
