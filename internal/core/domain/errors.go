package domain

import "errors"

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrURLNotFound      = errors.New("url not found")
	// ErrTransientIO marks a failed spend or ad network call. Callers retry on
	// the next tick.
	ErrTransientIO = errors.New("transient io error")
	// ErrThresholdsInverted is reported when a campaign's activate threshold
	// does not exceed its pause threshold by 15%.
	ErrThresholdsInverted = errors.New("thresholds inverted")
)
