package invoice

import "fmt"

// Invoice numbers are year-scoped: INV-{year}-{4-digit sequence}.

func Number(year, seq int) string {
	return fmt.Sprintf("INV-%d-%04d", year, seq)
}

func YearPrefix(year int) string {
	return fmt.Sprintf("INV-%d-", year)
}

// Next derives the next number for a year from the highest existing one.
// An empty last number starts the year's sequence at 1.
func Next(year int, last string) string {
	return Number(year, sequence(year, last)+1)
}

func sequence(year int, last string) int {
	if last == "" {
		return 0
	}
	// No width on the sequence verb: a %04d scan stops after four
	// digits and would re-derive a taken number once a year passes 9999.
	var y, seq int
	if _, err := fmt.Sscanf(last, "INV-%d-%d", &y, &seq); err != nil || y != year {
		return 0
	}
	return seq
}
