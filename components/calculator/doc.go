// Package calculator provides the net/http surface of the calculator form:
// the server-rendered page, the JSON multiply endpoint used by the browser
// runtime, the OpenAPI description of that endpoint and the runtime script.
//
// The page handler works without JavaScript. The button and Enter in either
// field both submit the form natively; each POST builds a request-scoped
// form.Document, binds the controller to it, dispatches the trigger and
// renders the resulting regions.
package calculator
