package execution

import "fmt"

// Ordering decides when a concurrent run reports each test
type Ordering int

const (
	// OrderRegistration buffers every outcome in its slot and reports after all workers
	// finished, in registration order. Output is reproducible across runs.
	OrderRegistration Ordering = iota
	// OrderCompletion lets each worker report as soon as its test finishes, under the
	// reporter lock. Lines appear in completion order.
	OrderCompletion
)

func (o Ordering) String() string {
	switch o {
	case OrderRegistration:
		return "registration"
	case OrderCompletion:
		return "completion"
	}
	return fmt.Sprintf("ordering(%d)", int(o))
}

// ParseOrdering converts a configuration value into an Ordering
func ParseOrdering(s string) (Ordering, error) {
	switch s {
	case "", "registration":
		return OrderRegistration, nil
	case "completion":
		return OrderCompletion, nil
	}
	return 0, fmt.Errorf("unknown ordering %q (expected registration or completion)", s)
}
