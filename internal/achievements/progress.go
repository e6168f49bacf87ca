package achievements

type Progress struct {
	Badge      BadgeType `json:"badge_type"`
	Title      string    `json:"title"`
	Icon       string    `json:"icon"`
	Current    int       `json:"current"`
	Required   int       `json:"required"`
	Percentage int       `json:"percentage"`
}

// BadgeProgress reports how close the user is to the countable badges
// not earned yet.
func BadgeProgress(earned map[BadgeType]bool, streak, totalCalories int) []Progress {
	candidates := []struct {
		badge    BadgeType
		current  int
		required int
	}{
		{BadgeConsistency7, streak, consistency7Days},
		{BadgeConsistency30, streak, consistency30Days},
		{BadgeCalorieBurner1000, totalCalories, calorieBurner1000Min},
		{BadgeCalorieBurner5000, totalCalories, calorieBurner5000Min},
	}

	progress := make([]Progress, 0, len(candidates))
	for _, c := range candidates {
		if earned[c.badge] {
			continue
		}
		percentage := int(float64(c.current) / float64(c.required) * 100)
		if percentage > 100 {
			percentage = 100
		}
		progress = append(progress, Progress{
			Badge:      c.badge,
			Title:      c.badge.Title(),
			Icon:       c.badge.Icon(),
			Current:    c.current,
			Required:   c.required,
			Percentage: percentage,
		})
	}
	return progress
}
