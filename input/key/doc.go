// Package key defines keyboard key codes and modifier masks for the input
// layer.
//
// Key values share the raylib/GLFW code space so they can be passed straight
// through to a native windowing backend. Every key has a canonical uppercase
// wire name ("SPACE", "LEFT_SHIFT", "A".."Z") used by the input map file
// format; FromName resolves a wire name back to a Key and returns KeyNone
// for anything it does not recognize.
package key
