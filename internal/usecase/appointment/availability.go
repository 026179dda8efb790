package appointment

import (
	"context"
	"time"

	domain "github.com/lanavaja/barber-platform/internal/domain/appointment"
	"github.com/lanavaja/barber-platform/internal/domain/schedule"
)

type GetAvailability struct {
	repo  domain.Repository
	cache domain.SlotCache
}

func NewGetAvailability(repo domain.Repository, cache domain.SlotCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// Execute returns the open 30-minute slot starts for a barber on a date.
// A day off or an unavailable weekday yields an empty list.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	barberID uint,
	date time.Time,
) ([]string, error) {

	key := date.Format("2006-01-02")

	if slots, ok := uc.cache.Get(ctx, barberID, key); ok {
		return slots, nil
	}

	dayOff, err := uc.repo.HasDayOff(ctx, barberID, date)
	if err != nil {
		return nil, err
	}
	if dayOff {
		return []string{}, nil
	}

	av, err := uc.repo.GetAvailability(ctx, barberID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	if av == nil || !av.IsAvailable {
		return []string{}, nil
	}

	booked, err := uc.repo.ListBookedTimes(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	slots := schedule.Slots(av.StartTime, av.EndTime, booked)
	if slots == nil {
		slots = []string{}
	}

	uc.cache.Set(ctx, barberID, key, slots)

	return slots, nil
}
