package schedule

import (
	"reflect"
	"testing"
)

func TestSlots_ExcludesBookedTimes(t *testing.T) {
	got := Slots("09:00", "12:00", []string{"10:00"})
	want := []string{"09:00", "09:30", "10:30", "11:00", "11:30"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Slots = %v, want %v", got, want)
	}
}

func TestSlots_LastSlotFitsInsideWindow(t *testing.T) {
	got := Slots("09:00", "10:00", nil)
	want := []string{"09:00", "09:30"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Slots = %v, want %v", got, want)
	}
}

func TestSlots_EmptyWhenWindowTooShort(t *testing.T) {
	if got := Slots("09:00", "09:15", nil); len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestSlots_AllBooked(t *testing.T) {
	got := Slots("09:00", "10:00", []string{"09:00", "09:30"})
	if len(got) != 0 {
		t.Fatalf("expected no slots, got %v", got)
	}
}

func TestSlots_InvalidInput(t *testing.T) {
	if got := Slots("nine", "12:00", nil); got != nil {
		t.Fatalf("expected nil for invalid start, got %v", got)
	}
	if got := Slots("09:00", "noon", nil); got != nil {
		t.Fatalf("expected nil for invalid end, got %v", got)
	}
}

func TestSlots_IgnoresUnrelatedBooked(t *testing.T) {
	got := Slots("09:00", "10:00", []string{"15:00"})
	want := []string{"09:00", "09:30"}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Slots = %v, want %v", got, want)
	}
}
