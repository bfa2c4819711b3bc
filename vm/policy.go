package vm

// Stop is the reason a run ended.
type Stop int

//go:generate go tool stringer -linecomment -type=Stop
const (
	STOP_HALTED    = Stop(0) // halted
	STOP_SATISFIED = Stop(1) // satisfied
)

// Policy decides when a run stops before the instruction pointer leaves
// the program. Done is consulted once after every executed step.
type Policy interface {
	Done(m *Machine) bool
}

// PolicyFunc adapts a function to a Policy.
type PolicyFunc func(m *Machine) bool

func (fn PolicyFunc) Done(m *Machine) bool {
	return fn(m)
}

// UntilHalt runs until the instruction pointer leaves the program.
func UntilHalt() Policy {
	return PolicyFunc(func(*Machine) bool { return false })
}

// UntilOutput runs until count values have been output.
func UntilOutput(count int) Policy {
	return PolicyFunc(func(m *Machine) bool { return len(m.Output) >= count })
}

// StepLimit stops after ticks executed steps, or when policy is done.
func StepLimit(ticks int, policy Policy) Policy {
	return PolicyFunc(func(m *Machine) bool {
		return m.Ticks >= ticks || policy.Done(m)
	})
}

// AnyOf is done as soon as one of the policies is.
func AnyOf(policies ...Policy) Policy {
	return PolicyFunc(func(m *Machine) bool {
		for _, policy := range policies {
			if policy.Done(m) {
				return true
			}
		}
		return false
	})
}
