package badges

import (
	"time"

	"github.com/2beens/fittrack/internal/achievements"
)

type Badge struct {
	ID          int                    `json:"id"`
	UserID      int                    `json:"user_id"`
	BadgeType   achievements.BadgeType `json:"badge_type"`
	Description string                 `json:"description"`
	EarnedAt    time.Time              `json:"earned_at"`
}

// View adds the catalog title and icon.
type View struct {
	Badge
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

func NewView(b Badge) View {
	return View{
		Badge: b,
		Title: b.BadgeType.Title(),
		Icon:  b.BadgeType.Icon(),
	}
}
