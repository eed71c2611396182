package authstate

// transitions is the allowed status change table. Same-status replacements
// are always permitted and are not listed.
var transitions = map[Status]map[Status]struct{}{
	StatusUnauthenticated: {
		StatusAuthenticated: {},
		StatusMFARequired:   {},
	},
	StatusMFARequired: {
		StatusAuthenticated:   {},
		StatusUnauthenticated: {},
	},
	StatusAuthenticated: {
		StatusUnauthenticated: {},
		StatusTokenExpired:    {},
	},
	StatusTokenExpired: {
		StatusAuthenticated:   {},
		StatusUnauthenticated: {},
	},
}

// CanTransition reports whether a status change is legal.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	_, ok := transitions[from][to]
	return ok
}
