package game

// Options are the house rules for a Seotda table
type Options struct {
	StartingChips int
	MinBet        int
	MaxBet        int
}

// DefaultOptions returns the default house rules
func DefaultOptions() Options {
	return Options{
		StartingChips: 5000,
		MinBet:        100,
		MaxBet:        10000,
	}
}
