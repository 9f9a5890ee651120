// Package form binds the calculator to a presentation surface.
//
// A Document exposes addressable elements and event listeners the way a
// browser DOM does. Bind resolves the five handles the calculator needs
// (the num1 and num2 inputs, the calculateBtn button, the element carrying
// the result-value class and the error-message region), fails fast when any
// is missing, and registers the two triggers: a click on the button and an
// Enter key release in either input.
//
// MemoryDocument is the in-process surface used for server-side rendering
// and tests.
package form
