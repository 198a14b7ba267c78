// Package bind maps physical inputs to named logical actions.
//
// A Binding describes one physical trigger: a key, a mouse button, a
// gamepad button, or a gamepad axis crossing a threshold. An Action is a
// named group of bindings answering aggregate queries (any binding
// pressed, strongest axis response). A Map is a named set of actions with
// YAML persistence, so games ship default maps and players rebind.
//
// Binding and action queries take the input.Manager to consult as an
// explicit parameter; the package holds no global manager state.
package bind
