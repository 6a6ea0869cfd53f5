package space

// Scope selects which partition of a user's records is visible: one named
// space, or the implicit global context when no space is active. A record
// with an empty space id belongs to the global context only and is never
// merged into a named space's view.
type Scope struct {
	spaceID string
}

func GlobalScope() Scope {
	return Scope{}
}

// ScopeFor collapses the empty-id sentinel: ScopeFor("") is the global scope.
func ScopeFor(spaceID string) Scope {
	return Scope{spaceID: spaceID}
}

func (s Scope) IsGlobal() bool {
	return s.spaceID == ""
}

// SpaceID returns "" for the global scope.
func (s Scope) SpaceID() string {
	return s.spaceID
}

// Contains reports whether a record carrying the given space id ("" for
// none) belongs to this scope.
func (s Scope) Contains(recordSpaceID string) bool {
	return s.spaceID == recordSpaceID
}
