package outcome

// Ordering is the result of comparing two values.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	default:
		panic("outcome: unknown ordering")
	}
}

// Reversed flips the direction of the ordering.
func (o Ordering) Reversed() Ordering {
	return -o
}
