package achievements

const (
	TipHydration = "Hydration Alert: Try to drink more water today."
	TipHighBurn  = "Great work! You hit a high burn yesterday."
	TipDefault   = "Keep up the great work! Stay consistent with your fitness journey."

	tipWaterThresholdML  = 2000
	tipHighBurnThreshold = 500
)

type tipRule struct {
	applies func(waterML, calories int) bool
	message string
}

// first matching rule wins
var tipRules = []tipRule{
	{func(waterML, _ int) bool { return waterML < tipWaterThresholdML }, TipHydration},
	{func(_, calories int) bool { return calories > tipHighBurnThreshold }, TipHighBurn},
}

// DailyTip picks the tip shown on the dashboard from yesterday's totals.
func DailyTip(waterYesterdayML, caloriesYesterday int) string {
	for _, rule := range tipRules {
		if rule.applies(waterYesterdayML, caloriesYesterday) {
			return rule.message
		}
	}
	return TipDefault
}
