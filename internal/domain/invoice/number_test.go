package invoice

import "testing"

func TestNumber_Format(t *testing.T) {
	if got := Number(2024, 7); got != "INV-2024-0007" {
		t.Fatalf("Number = %q, want INV-2024-0007", got)
	}
}

func TestNext_StartsAtOne(t *testing.T) {
	if got := Next(2024, ""); got != "INV-2024-0001" {
		t.Fatalf("Next = %q, want INV-2024-0001", got)
	}
}

func TestNext_Increments(t *testing.T) {
	if got := Next(2024, "INV-2024-0041"); got != "INV-2024-0042" {
		t.Fatalf("Next = %q, want INV-2024-0042", got)
	}
}

func TestNext_ResetsOnYearRollover(t *testing.T) {
	// Highest number from the previous year does not carry its sequence.
	if got := Next(2025, "INV-2024-0099"); got != "INV-2025-0001" {
		t.Fatalf("Next = %q, want INV-2025-0001", got)
	}
}

func TestNext_IgnoresMalformedLast(t *testing.T) {
	if got := Next(2024, "garbage"); got != "INV-2024-0001" {
		t.Fatalf("Next = %q, want INV-2024-0001", got)
	}
}

func TestNext_SequenceBeyondPadding(t *testing.T) {
	if got := Next(2024, "INV-2024-9999"); got != "INV-2024-10000" {
		t.Fatalf("Next = %q, want INV-2024-10000", got)
	}
}

func TestNext_FiveDigitLastKeepsCounting(t *testing.T) {
	// The whole sequence must be read back, not just the padded width.
	if got := Next(2024, "INV-2024-10000"); got != "INV-2024-10001" {
		t.Fatalf("Next = %q, want INV-2024-10001", got)
	}
}
