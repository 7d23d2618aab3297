package input

// actionRegistry maps keymap config action names to intents
// "none" is the unbind sentinel
var actionRegistry = map[string]Intent{
	"none":    IntentNone,
	"up":      IntentUp,
	"down":    IntentDown,
	"left":    IntentLeft,
	"right":   IntentRight,
	"confirm": IntentConfirm,
	"quit":    IntentQuit,
}

// ActionIntent resolves an action name to its intent
func ActionIntent(name string) (Intent, bool) {
	i, ok := actionRegistry[name]
	return i, ok
}
