package proc

// Process identifies one live process owned by the invoking user.
// Records are rebuilt wholesale on every snapshot and never mutated.
type Process struct {
	PID         int
	Name        string // executable basename, used for grouping and exclusion
	Title       string // Name plus any flags glued into argv[0]
	Description string // derived from the remaining argv tokens, may be empty
}
