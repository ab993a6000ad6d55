package game

import "strings"

// Directory maps each seat to its display name.
type Directory map[PlayerID]string

// DefaultDirectory builds the default names, translating each seat's NameKey.
func DefaultDirectory(translate func(key string) string) Directory {
	d := make(Directory, len(AllPlayers))
	for _, p := range AllPlayers {
		d[p] = translate(Seats[p].NameKey)
	}
	return d
}

// Name returns the display name of p, falling back to its id.
func (d Directory) Name(p PlayerID) string {
	if name, ok := d[p]; ok && name != "" {
		return name
	}
	return string(p)
}

// Rename returns a copy of d with p renamed. Names are trimmed; an empty
// name or an unknown player leaves the directory unchanged and returns false.
func (d Directory) Rename(p PlayerID, name string) (Directory, bool) {
	name = strings.TrimSpace(name)
	if name == "" || !p.Valid() {
		return d, false
	}
	next := make(Directory, len(d))
	for k, v := range d {
		next[k] = v
	}
	next[p] = name
	return next, true
}
