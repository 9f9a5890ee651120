package form

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-calcform/pkg/calculator"
)

// MissingElementsError lists the handles that could not be resolved.
type MissingElementsError struct {
	Missing []string
}

func (e *MissingElementsError) Error() string {
	return fmt.Sprintf("form: missing required elements: %s", strings.Join(e.Missing, ", "))
}

// Controller owns the resolved handles and runs the calculator against them.
type Controller struct {
	calc *calculator.Calculator

	num1   Element
	num2   Element
	button Element
	result Element
	errMsg Element
}

// Bind resolves the calculator regions in doc and registers the click and
// Enter triggers. It returns a *MissingElementsError naming every absent
// handle. A nil calc selects calculator.New().
func Bind(doc Document, calc *calculator.Calculator) (*Controller, error) {
	if doc == nil {
		return nil, fmt.Errorf("form: missing document")
	}
	if calc == nil {
		calc = calculator.New()
	}

	c := &Controller{
		calc:   calc,
		num1:   doc.GetElementByID(IDNum1),
		num2:   doc.GetElementByID(IDNum2),
		button: doc.GetElementByID(IDCalculateBtn),
		result: doc.QuerySelector(SelectorResult),
		errMsg: doc.GetElementByID(IDErrorMessage),
	}

	var missing []string
	for _, handle := range []struct {
		name string
		el   Element
	}{
		{"#" + IDNum1, c.num1},
		{"#" + IDNum2, c.num2},
		{"#" + IDCalculateBtn, c.button},
		{SelectorResult, c.result},
		{"#" + IDErrorMessage, c.errMsg},
	} {
		if handle.el == nil {
			missing = append(missing, handle.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingElementsError{Missing: missing}
	}

	c.button.AddEventListener(EventClick, func(Event) { c.Calculate() })
	c.num1.AddEventListener(EventKeyUp, c.onKeyUp)
	c.num2.AddEventListener(EventKeyUp, c.onKeyUp)
	return c, nil
}

func (c *Controller) onKeyUp(ev Event) {
	if ev.Key == KeyEnter {
		c.Calculate()
	}
}

// Calculate reads both inputs, runs the calculator and overwrites the two
// output regions.
func (c *Controller) Calculate() {
	c.errMsg.SetText("")
	c.result.SetText(calculator.DefaultResult)

	display := c.calc.Calculate(c.num1.Value(), c.num2.Value())

	c.result.SetText(display.Result)
	c.errMsg.SetText(display.Error)
}

// Display returns the current contents of the two output regions.
func (c *Controller) Display() calculator.Display {
	return calculator.Display{
		Result: c.result.Text(),
		Error:  c.errMsg.Text(),
	}
}
