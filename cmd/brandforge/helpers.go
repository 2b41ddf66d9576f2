package main

import (
	"brandforge/internal/angles"
	"brandforge/internal/types"
)

func requestFromFlags() types.ContentRequest {
	return types.ContentRequest{
		BusinessName:     businessName,
		BusinessCategory: category,
		Location:         location,
		TargetAudience:   audience,
		UserID:           userID,
	}
}

func trackerWithStore(store angles.StateStore) *angles.Tracker {
	return angles.NewTracker(angles.WithStore(store))
}
