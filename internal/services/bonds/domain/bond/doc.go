// Package bond models the bonds a player character holds toward other
// characters.
//
// A bond carries a free-form name and six flags grouped in three opposed
// pairs (admiration/inferiority, loyalty/mistrust, affection/hatred). Setting
// one flag of a pair clears its opposite; clearing a flag never restores the
// other. A player holds at most MaxBonds bonds.
//
// List operations are pure: they take the prior list and return the next one
// without mutating the input. Invalid positions and over-capacity adds are
// absorbed as no-ops; the Try* variants report the same conditions as
// structured errors while returning the same list.
package bond
