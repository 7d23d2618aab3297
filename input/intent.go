package input

// Intent is the semantic action a key resolves to
type Intent uint8

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentConfirm
	IntentQuit
)

func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "none"
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentConfirm:
		return "confirm"
	case IntentQuit:
		return "quit"
	}
	return "unknown"
}
