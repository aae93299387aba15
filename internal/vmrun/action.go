package vmrun

import "fmt"

// Action is a power operation vmrun can perform on a VM.
type Action int

const (
	// Start powers on a VM or resumes a suspended one.
	Start Action = iota
	// Stop powers off a VM.
	Stop
	// Suspend saves a VM's state to disk.
	Suspend
)

// String returns the vmrun verb for the action.
func (a Action) String() string {
	switch a {
	case Start:
		return "start"
	case Stop:
		return "stop"
	case Suspend:
		return "suspend"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Past returns the past-tense verb used in notices, e.g. "started".
func (a Action) Past() string {
	switch a {
	case Start:
		return "started"
	case Stop:
		return "stopped"
	case Suspend:
		return "suspended"
	default:
		return a.String()
	}
}
