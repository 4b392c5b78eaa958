package models

import "time"

// DefaultPreferenceProfile is the profile ID used until multi-profile
// support exists.
const DefaultPreferenceProfile = "default"

// PreferenceProfile stores a user's chosen calendars. The calendars are
// kept as full CalendarInfo entries so the frontend can render them
// without a second lookup.
type PreferenceProfile struct {
	ID        string         `bson:"id" json:"id"`
	Calendars []CalendarInfo `bson:"calendars" json:"calendars"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// CalendarIDs lists the IDs of the preferred calendars, or ["primary"]
// when none are set.
func (p PreferenceProfile) CalendarIDs() []string {
	if len(p.Calendars) == 0 {
		return []string{"primary"}
	}
	ids := make([]string, 0, len(p.Calendars))
	for _, cal := range p.Calendars {
		ids = append(ids, cal.ID)
	}
	return ids
}
