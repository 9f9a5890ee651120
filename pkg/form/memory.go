package form

import "strings"

// MemoryDocument is an in-memory Document. It is not safe for concurrent
// use; each page or request owns its own instance.
type MemoryDocument struct {
	elements []*MemoryElement
}

// NewMemoryDocument returns an empty document.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{}
}

// NewCalculatorDocument returns a document holding the five calculator
// regions, with the result region at its default.
func NewCalculatorDocument() *MemoryDocument {
	doc := NewMemoryDocument()
	doc.Add(IDNum1)
	doc.Add(IDNum2)
	doc.Add(IDCalculateBtn)
	doc.Add("", ClassResult).SetText("0")
	doc.Add(IDErrorMessage)
	return doc
}

// Add appends an element with the given id and classes and returns it.
func (d *MemoryDocument) Add(id string, classes ...string) *MemoryElement {
	el := &MemoryElement{
		id:        id,
		classes:   append([]string(nil), classes...),
		listeners: make(map[string][]Listener),
	}
	d.elements = append(d.elements, el)
	return el
}

// Element returns the concrete element for id, or nil.
func (d *MemoryDocument) Element(id string) *MemoryElement {
	for _, el := range d.elements {
		if id != "" && el.id == id {
			return el
		}
	}
	return nil
}

func (d *MemoryDocument) GetElementByID(id string) Element {
	if el := d.Element(id); el != nil {
		return el
	}
	return nil
}

// QuerySelector supports "#id" and ".class" selectors.
func (d *MemoryDocument) QuerySelector(selector string) Element {
	selector = strings.TrimSpace(selector)
	switch {
	case strings.HasPrefix(selector, "#"):
		return d.GetElementByID(selector[1:])
	case strings.HasPrefix(selector, "."):
		class := selector[1:]
		for _, el := range d.elements {
			if el.hasClass(class) {
				return el
			}
		}
	}
	return nil
}

// Dispatch delivers ev to the listeners registered on the element with the
// given id for ev.Type. It reports whether the element exists.
func (d *MemoryDocument) Dispatch(id string, ev Event) bool {
	el := d.Element(id)
	if el == nil {
		return false
	}
	ev.Target = id
	el.dispatch(ev)
	return true
}

// Click dispatches a click on id.
func (d *MemoryDocument) Click(id string) bool {
	return d.Dispatch(id, Event{Type: EventClick})
}

// KeyUp dispatches a key release of key on id.
func (d *MemoryDocument) KeyUp(id, key string) bool {
	return d.Dispatch(id, Event{Type: EventKeyUp, Key: key})
}

// MemoryElement is the Element implementation backing MemoryDocument.
type MemoryElement struct {
	id        string
	classes   []string
	value     string
	text      string
	listeners map[string][]Listener
}

func (e *MemoryElement) ID() string            { return e.id }
func (e *MemoryElement) Value() string         { return e.value }
func (e *MemoryElement) SetValue(value string) { e.value = value }
func (e *MemoryElement) Text() string          { return e.text }
func (e *MemoryElement) SetText(text string)   { e.text = text }

func (e *MemoryElement) AddEventListener(eventType string, fn Listener) {
	if fn == nil {
		return
	}
	e.listeners[eventType] = append(e.listeners[eventType], fn)
}

func (e *MemoryElement) dispatch(ev Event) {
	for _, fn := range e.listeners[ev.Type] {
		fn(ev)
	}
}

func (e *MemoryElement) hasClass(class string) bool {
	for _, c := range e.classes {
		if c == class {
			return true
		}
	}
	return false
}
