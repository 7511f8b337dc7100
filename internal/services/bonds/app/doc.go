// Package app applies bond change streams to a player's bonds on behalf of
// the editing surface.
//
// The Editor is the only writer of a player's bonds: it reads the current
// list from the owning store, applies every change in order, and hands the
// final list back as one replacement.
package app
