package domain

import "time"

// URLStatus is the lifecycle of a tracked outbound URL.
type URLStatus string

const (
	URLStatusActive    URLStatus = "active"
	URLStatusPaused    URLStatus = "paused"
	URLStatusCompleted URLStatus = "completed"
	URLStatusDeleted   URLStatus = "deleted"
)

// URL is an outbound link owned by a campaign. Clicks increment through the
// redirect path; the controller only reads them.
type URL struct {
	ID         int64
	CampaignID int64
	Target     string
	ClickLimit int64
	Clicks     int64
	Status     URLStatus
	CreatedAt  time.Time
}

// Remaining returns the clicks still owed, floored at zero.
func (u *URL) Remaining() int64 {
	if u.Clicks >= u.ClickLimit {
		return 0
	}
	return u.ClickLimit - u.Clicks
}

// Active reports whether the URL counts toward inventory.
func (u *URL) Active() bool {
	return u.Status == URLStatusActive
}

// LateFor reports whether u was created strictly after the cycle's initial
// pricing instant. A nil calcAt means pricing has not happened yet.
func (u *URL) LateFor(calcAt *time.Time) bool {
	return calcAt != nil && u.CreatedAt.After(*calcAt)
}
