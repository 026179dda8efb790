package schedule

import (
	"fmt"
	"time"
)

// SlotStep is the fixed length of a bookable slot.
const SlotStep = 30 * time.Minute

// Slots expands a working window into fixed 30-minute slot starts between
// start and end ("HH:MM"), excluding booked times, in chronological order.
// A slot must fit entirely inside the window, so the last candidate starts
// at end minus SlotStep.
func Slots(start, end string, booked []string) []string {
	startMin, err := parseHM(start)
	if err != nil {
		return nil
	}
	endMin, err := parseHM(end)
	if err != nil {
		return nil
	}

	taken := make(map[string]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	step := int(SlotStep.Minutes())
	var slots []string
	for cur := startMin; cur+step <= endMin; cur += step {
		hm := formatHM(cur)
		if _, ok := taken[hm]; ok {
			continue
		}
		slots = append(slots, hm)
	}

	return slots
}

func parseHM(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
