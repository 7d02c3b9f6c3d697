package stats

import (
	"fmt"

	"github.com/Shrinivasofficial/evening-stillness-reflections/internal/timeutil"
)

// Settings is the key-value storage used to remember celebrations.
type Settings interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// CelebrateMilestone returns the celebration message for the streak if it
// lands on a milestone that has not been celebrated today for this kind of
// record. The celebration is recorded so that it is only shown once.
func CelebrateMilestone(
	s Settings,
	kind string,
	streak Streak,
	today timeutil.Day,
) (string, bool, error) {
	n, ok := Milestone(streak.Current)
	if !ok {
		return "", false, nil
	}

	key := "milestone." + kind
	marker := fmt.Sprintf("%s:%d", today, n)

	last, err := s.GetSetting(key)
	if err != nil {
		return "", false, err
	}

	if last == marker {
		return "", false, nil
	}

	if err := s.SetSetting(key, marker); err != nil {
		return "", false, err
	}

	return MilestoneMessage(kind, n), true, nil
}
