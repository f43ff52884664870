package model

// EscapeKind is the way a constructor exposes the object under construction.
type EscapeKind int

const (
	// StoringSelf covers `field = this` and passing `this` as a call argument.
	StoringSelf EscapeKind = iota
	// DownCall is an instance method invoked on the implicit or explicit self
	// receiver.
	DownCall
)

// String returns the report tag of the kind.
func (k EscapeKind) String() string {
	switch k {
	case StoringSelf:
		return "STORING_THIS"
	case DownCall:
		return "DOWN_CALL"
	}

	return "UNKNOWN"
}

// Finding is one flagged constructor statement.
type Finding struct {
	Text string
	Kind EscapeKind
}
