package repl

// State is a phase of the interactive loop.
type State int

const (
	AwaitingMenuChoice State = iota
	AwaitingOperands
	DisplayingResult
	Terminated
)

var stateNames = map[State]string{
	AwaitingMenuChoice: "awaiting_menu_choice",
	AwaitingOperands:   "awaiting_operands",
	DisplayingResult:   "displaying_result",
	Terminated:         "terminated",
}

func (s State) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}
