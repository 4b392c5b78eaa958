package models

// Supported view query types.
const (
	QueryListEvents    = "list_events"
	QueryCheckFreeTime = "check_free_time"
	QueryEventDuration = "event_duration"
	QueryEventDetails  = "event_details"
)

// ViewQuery is the structured form of a view-events question.
type ViewQuery struct {
	QueryType    string `json:"query_type"`
	DateRange    string `json:"date_range"`
	Filters      string `json:"filters,omitempty"`
	EventName    string `json:"event_name,omitempty"`
	CalendarName string `json:"calendar_name,omitempty"`
}
