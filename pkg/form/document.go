package form

// Element identifiers and selectors of the calculator page.
const (
	IDNum1         = "num1"
	IDNum2         = "num2"
	IDCalculateBtn = "calculateBtn"
	IDErrorMessage = "error-message"
	ClassResult    = "result-value"

	// SelectorResult selects the result region by class.
	SelectorResult = "." + ClassResult
)

// Event types the controller subscribes to.
const (
	EventClick = "click"
	EventKeyUp = "keyup"
)

// KeyEnter is the key name that turns a key release into a trigger.
const KeyEnter = "Enter"

// Event is a user interaction delivered to a listener.
type Event struct {
	Type   string
	Target string
	Key    string
}

// Listener handles an event dispatched on an element.
type Listener func(Event)

// Element is an addressable region of the surface. Inputs expose Value;
// output regions are written with SetText.
type Element interface {
	ID() string
	Value() string
	SetValue(value string)
	Text() string
	SetText(text string)
	AddEventListener(eventType string, fn Listener)
}

// Document resolves elements. Lookups return nil when nothing matches.
type Document interface {
	GetElementByID(id string) Element
	QuerySelector(selector string) Element
}
