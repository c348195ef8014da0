package model

// Scope identifies who a request acts for. An empty OwnerID means there is
// no authenticated session.
type Scope struct {
	OwnerID string
}

// HasSession reports whether the scope carries an owner.
func (sc Scope) HasSession() bool {
	return sc.OwnerID != ""
}
