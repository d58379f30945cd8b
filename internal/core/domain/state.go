package domain

// State is the lifecycle state of a monitored campaign.
type State string

const (
	StateUnknown                  State = "unknown"
	StateLowSpend                 State = "low_spend"
	StateHighSpendWaiting         State = "high_spend_waiting"
	StateHighSpend                State = "high_spend"
	StateHighSpendBudgetUpdated   State = "high_spend_budget_updated"
	StateHighSpendPausedLowClicks State = "high_spend_paused_low_clicks"
)

// Valid reports whether s is one of the known states.
func (s State) Valid() bool {
	switch s {
	case StateUnknown, StateLowSpend, StateHighSpendWaiting, StateHighSpend,
		StateHighSpendBudgetUpdated, StateHighSpendPausedLowClicks:
		return true
	}
	return false
}

// PricedHigh reports whether the current spend cycle has already been priced.
// A campaign in one of these states must not be re-paused or re-priced while
// spend stays above the boundary.
func (s State) PricedHigh() bool {
	switch s {
	case StateHighSpend, StateHighSpendBudgetUpdated, StateHighSpendPausedLowClicks:
		return true
	}
	return false
}

// HighRegime reports whether s belongs to a spend cycle, waiting included.
func (s State) HighRegime() bool {
	return s == StateHighSpendWaiting || s.PricedHigh()
}

// Running reports whether the remote campaign is expected to be active in s.
// Low regime states return false because the remote status is read instead.
func (s State) Running() bool {
	return s == StateHighSpend || s == StateHighSpendBudgetUpdated
}
