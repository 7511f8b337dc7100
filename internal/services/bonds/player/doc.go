// Package player exposes the bonds slice of a player record document.
//
// The rest of the player record belongs to its owning store and is passed
// through byte-for-byte: decoding keeps every field as raw JSON and only
// info.bonds is interpreted.
package player
