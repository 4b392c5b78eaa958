package models

// CalendarInfo describes one calendar from the user's calendar list.
// The same shape is stored verbatim as a preferred-calendar entry.
type CalendarInfo struct {
	ID              string `bson:"id" json:"id"`
	Summary         string `bson:"summary" json:"summary"`
	Primary         bool   `bson:"primary" json:"primary"`
	Description     string `bson:"description" json:"description"`
	BackgroundColor string `bson:"backgroundColor" json:"backgroundColor"`
	ColorID         string `bson:"colorId" json:"colorId"`
}
