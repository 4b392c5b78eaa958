package assistant

import (
	"context"

	"tempora/models"

	gcal "google.golang.org/api/calendar/v3"
)

// ScheduleSelectedSlot books the slot the user picked from a find-time
// suggestion. The slot's title seeds the summary when the details carry none.
func (s *DefaultAssistantService) ScheduleSelectedSlot(ctx context.Context, slot SelectedSlot, details SlotEventDetails) (*gcal.Event, error) {
	summary := details.Summary
	if summary == "" {
		summary = slot.Title
	}
	if summary == "" {
		summary = "Scheduled Event"
	}

	input := models.EventInput{
		Summary:     summary,
		Location:    details.Location,
		Description: details.Description,
		CalendarID:  details.CalendarID,
		Start:       slot.Start,
		End:         slot.End,
		Reminders:   details.Reminders,
	}
	return s.Calendar.CreateEvent(ctx, input)
}
