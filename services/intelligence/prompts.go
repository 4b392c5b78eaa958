package ai

import "fmt"

func intentPrompt(text string) string {
	return fmt.Sprintf(`Your job is to understand the user's intent from the text I am about to give you.
The user is interacting with a calendar application which will allow the user to chat with their calendar, create events, delete events,
view their events, and find time in their calendar to schedule an event/ events.

The possible intents are:
1. Create event
2. Delete event
3. View events
4. Find time to schedule event/ events

return the intent as a string. The string should be one of the possible intents.

Here is the text: "%s"`, text)
}

func hoursPrompt(text string) string {
	return fmt.Sprintf(`Extract ONLY the total hours or time needed from this text: "%s"

Instructions:
1. Look for phrases like "need X hours", "takes X hours", "around X hours", "X hours to finish", etc.
2. Return just the number of hours as a float (e.g., "6" or "2.5")
3. If no specific hours are mentioned, return "0"

Return ONLY the number, nothing else.`, text)
}

func dateRangePrompt(text, currentDate, currentTime string) string {
	return fmt.Sprintf(`Current date: %[1]s
Current time: %[2]s

Extract the relevant date or date range and time-of-day constraints from the following text: "%[3]s".

## Instructions:
- The user is requesting time to work on a task with a deadline or time period.
- IMPORTANT: When the user mentions a deadline or tasks "to be done by", "to be completed by", or "due by" a certain date, ALWAYS return a date range from today to that deadline.
- The goal is to find available time slots to work on the task BEFORE the deadline.
- If the user is asking about availability at a specific time (like "Am I free at 2 PM on Wednesday?"), return ONLY the DATE in YYYY-MM-DD format.

## Examples:
1. **"Find me time to work on X on Monday."**
- Return: The date of the next Monday.

2. **"I have a project due on Friday and need to complete it by then."**
- Return: "%[1]s to [next Friday from %[1]s]"

3. **"Am I free at 2 PM next Wednesday?"**
- Return: The date of next Wednesday in YYYY-MM-DD format only

## Date Extraction Rules:
- If the user is checking availability at a specific time, return ONLY the date without the time.
- If the user mentions a task that needs to be **completed by**, **done by**, **finished by**, or **due by/on** a specific date, ALWAYS return a range from today to that date.
- If the user mentions needing a certain number of hours to complete a task with a deadline, ALWAYS return a range from today to the deadline.
- If the user specifies a **single date** without a deadline context (e.g., "Find me time on Monday"), return **that date only**.
- If a **date range** is explicitly given (e.g., "this week", "next month", "between Monday and Friday"), return the **start and end dates** of that period.
- If **no date is mentioned**, assume the task is for **this week**, starting today.

## Deadline Detection:
- Look for phrases like "to be done by", "due by", "due on", "finish by", "complete by", "by [date]"
- When these phrases appear, it means the user needs time BEFORE that date, not ON that date only.
- Always return a date range from today to the deadline date in these cases.

## Output Format:
- **Single date**: "YYYY-MM-DD"
- **Date range**: "YYYY-MM-DD to YYYY-MM-DD"
- **Specific time slot**: "YYYY-MM-DD HH:MM to YYYY-MM-DD HH:MM"
- **List of dates or times**: ["YYYY-MM-DD", "YYYY-MM-DD"] or ["YYYY-MM-DD HH:MM to HH:MM", ...]
- Return **only the date or time range string**, nothing else.

Extract and return the appropriate date or date range.`, currentDate, currentTime, text)
}

func deadlinePrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text and extract ONLY any time-of-day deadline constraints:
"%s"

Instructions:
1. Look for phrases like "by Sunday morning", "before Friday evening", "due Wednesday night", etc.
2. If such a phrase exists, return a JSON object with:
   - deadline_day: the day of the deadline (e.g., "Sunday", "Friday")
   - deadline_time: the time of day ("morning", "afternoon", "evening", "night")
3. If no such phrase exists, return an empty JSON object: {}

Return ONLY the JSON object, no additional text.`, text)
}

func slotsPrompt(text, dateRange, freeSlotsJSON, minDuration, maxDuration, currentDate, currentTime string) string {
	return fmt.Sprintf(`Current date: %[1]s
Current time: %[2]s

You are a scheduling assistant. The user's request: "%[3]s"

## Current Time Awareness
- It is currently %[1]s at %[2]s
- IMPORTANT: NEVER suggest time slots that are in the past
- Today's time slots must start AFTER the current time

## Detected Time Constraints:
- Date Range: %[4]s

## Deadline Time-of-Day Detection (CRITICAL):
- IMPORTANT: Carefully analyze if the user mentioned a deadline with a specific time of day
- Look for phrases like "by Sunday morning", "before Friday evening", "due Thursday night"
- When such phrases appear, DO NOT schedule ANY sessions on or after that time
- Time of day definitions:
  * Morning: 00:00-11:59 AM
  * Afternoon: 12:00-5:59 PM
  * Evening: 6:00-9:59 PM
  * Night: 10:00 PM-11:59 PM
- For a deadline like "by Sunday morning", this means:
  * All tasks MUST be scheduled to end BEFORE Sunday at 00:00 AM
  * NO tasks may be scheduled on Sunday at all

## Task Duration Analysis: (IMPORTANT)
- First, analyze if the user mentioned a specific total duration for their task
- If they mention needing "X hours" (e.g., "6 hours", "around 4 hours", "it'll take me 8 hours"), extract this value
- Consider approximate language like "around 6 hours", "about 5 hours", etc. and extract the numeric value
- If no specific duration is mentioned, default to scheduling 1-2 hour blocks

## Available Free Time Slots you can schedule into (IMPORTANT):
%[5]s

##You can ONLY schedule into the free slots above. Do not suggest any other time slots.

##Time of day preferences:
- If the user mentions a task is due by a specific time of day (e.g., "morning", "afternoon", "evening"), Do not schedule any sessions that are after that time.
- Morning ends at 11:59 AM, Afternoon ends at 5:59 PM, Evening ends at 9:59 PM, and Night ends at 11:59 PM.
- For example, if the user mentions that a task is due by "Sunday morning", do not schedule ANY sessions on Sunday.
- If a task is "due by Friday evening", do not schedule sessions after 5:59 PM on Friday or on any day after Friday.

## Scheduling Constraints:
1. **Work session duration**: Each session **MUST** be between **%[6]s and %[7]s hours**. Sessions exceeding this range **are not allowed**.
2. You can go close to the max and min work duration but do not exceed it thats it.
3. Only under very tight constraints can you go over the max work duration.
4. **Breaks**: There must be **at least a 30-minute gap** between any two scheduled sessions.
5. **User preference**: If the user mentioned a specific time (e.g., "morning", "afternoon"), prioritize matching slots.
6. **Time rounding**: Round session start and end times to the **nearest 15 minutes**.
7. **Total hours**: If the user mentions a total number of hours needed (e.g., "I need 10 hours to finish my assignment"), schedule enough sessions to meet that total requirement while respecting the other constraints.
8. **Past times**: NEVER suggest time slots that are in the past relative to the current time (%[2]s on %[1]s).
9. **Strict enforcement**:
- **Do not exceed %[7]s per session.**
- **Do not suggest sessions shorter than %[6]s.**
- **NEVER OVERLAP with any existing busy event**
- **NEVER suggest slots that start in the past**
- **NEVER suggest slots on or after the deadline day+time specified by the user**
- **If no suitable slots exist within these constraints, return an empty JSON array.**

## Planning Instructions:
1. First, analyze the natural language request to determine:
   - Total hours required
   - Any time-of-day constraints (morning/afternoon/evening)
   - The deadline (including time of day)
2. If there is a total hours requirement, calculate how many sessions you'll need
3. For TODAY (%[1]s), only suggest time slots that start AFTER %[2]s
4. Schedule sessions across multiple days if needed to fulfill the total hours
5. Prioritize longer sessions (closer to %[7]s) to minimize session switching
6. NEVER schedule any sessions on or after the specific deadline time
7. Double-check that NONE of your suggested slots are outside of the free slots provided.

## Expected Output Format:
Return **only** a JSON array with the suggested time slots, formatted as follows:

[
    {
        "start": "2023-04-01T09:00:00-07:00",
        "end": "2023-04-01T11:00:00-07:00"
    },
    {
        "start": "2023-04-01T13:30:00-07:00",
        "end": "2023-04-01T15:30:00-07:00"
    }
]`, currentDate, currentTime, text, dateRange, freeSlotsJSON, minDuration, maxDuration)
}

func eventDetailsPrompt(text, calendarNames, currentDate, currentTime string) string {
	return fmt.Sprintf(`Current date: %[1]s
Current time: %[2]s

Extract event details from this text: "%[3]s"

If multiple events are mentioned, return an array of event objects, each with these fields:

1. summary: Event title or summary
2. location: Where the event takes place (if mentioned)
3. description: Any additional details
4. date: The date of the event (YYYY-MM-DD)
5. startTime: Start time (HH:MM)
6. endTime: End time (HH:MM)
7. duration: Duration in hours and minutes (HH:MM)
8. calendarName: Name of calendar this event needs to go in. Choose from the following: %[4]s
9. recurrence: Frequency if event repeats (DAILY, WEEKLY, MONTHLY, every tuesday, every friday, etc.)
10. recurrenceDays: For weekly events, which days (MO,TU,WE,TH,FR,SA,SU)
11. recurrenceCount: Number of recurrences
12. notifications: Array of notification times before the event (in minutes)
13. notificationMethods: Array of notification methods ("email", "popup", or both)

For dates and times:
- If "today" is mentioned, use %[1]s
- If "tomorrow" is mentioned, use the next day
- If a day like "Friday" is mentioned, find the next occurrence from %[1]s
- For vague times like "morning", use 09:00
- For "afternoon", use 14:00
- For "evening", use 18:00
- For "night", use 22:00
- Default duration to 01:00 (1 hour) if not specified

For notifications:
- If "remind me" or similar phrases are used, include notifications
- For phrases like "10 minutes before", set notifications to [10]
- For "an hour before", set notifications to [60]
- For "a day before", set notifications to [1440]
- Default notification method is "popup" unless "email" is mentioned

For calendarName:
- Use the calendar names provided in the list: %[4]s
- If no calendar is specified, use "primary"
- If the calendar is not found, use "primary"
- If there is a mention of any calendar name in the user input, use that calendar,
regardless of the case or spelling. For example, if the user mentions "cs188" or "CS188" or "Cs188",
use the calendar with the name "CS 188".

For a single event, return a single object. For multiple events, return an array of objects.
Each object should follow the format described above.

Important instructions for multiple events:
    - When multiple days are mentioned (e.g., "Saturday and Wednesday"), create SEPARATE events for EACH day
    - If events are requested for different days, ensure each event has its own unique date
    - Carefully distinguish between multiple events versus a single event with multiple attributes

Provide only the JSON output without any explanation.`, currentDate, currentTime, text, calendarNames)
}

func queryTimePrompt(text string) string {
	return fmt.Sprintf(`Extract the specific time mentioned in this query: "%s"

Instructions:
1. Look for time references like "2 PM", "3:30", "afternoon", etc.
2. Return the time in 24-hour format (HH:MM)
3. For general time periods, use these defaults:
   - "morning" -> "09:00"
   - "afternoon" -> "14:00"
   - "evening" -> "18:00"
   - "night" -> "20:00"
4. If no specific time is mentioned, return "12:00"

Return ONLY the time in HH:MM format, nothing else.`, text)
}

func viewQueryPrompt(text, currentDate, currentTime string) string {
	return fmt.Sprintf(`Current date: %[1]s
Current time: %[2]s

Extract calendar query parameters from this text: "%[3]s"

Parse the following parameters:
1. query_type: The type of calendar query (options: "list_events", "check_free_time", "event_duration", "event_details")
2. date_range: The date or date range being queried (e.g., "today", "tomorrow", "this week", "2023-05-01", "2023-05-01 to 2023-05-07")
3. filters: Any filters for events (e.g., "meetings", "work", "personal", etc.)
4. event_name: If asking about a specific event, its name.
5. calendar_name: If specifying a calendar, its name

Return a JSON object with these fields. Normalize dates to YYYY-MM-DD format.
For "today", use the current date. For "this week", use the current date to the end of the week.
For "tomorrow", use tomorrow's date.

Provide only the JSON output.`, currentDate, currentTime, text)
}

func listEventsSummaryPrompt(dateRange string, totalEvents int, eventsJSON string) string {
	return fmt.Sprintf(`Generate a friendly, conversational response describing the user's calendar events.

Date range queried: %s
Total events found: %d

Events:
%s

Instructions:
1. If there are no events, mention that their schedule is clear for the specified period.
2. If there are events, summarize them concisely by mentioning the number of events and highlighting key ones.
3. Include start times for events happening today.
4. Keep your response brief and conversational.
5. Do not use bullet points or formatting.
6. Do not introduce yourself or add pleasantries like "Here's what I found".
7. Use a friendly, helpful tone.

Response:`, dateRange, totalEvents, eventsJSON)
}

func freeTimeSummaryPrompt(dateRange string, totalFreeSlots int, freeSlotsJSON string) string {
	return fmt.Sprintf(`Generate a friendly, conversational response describing the user's free time slots.

Date range queried: %s
Total free time slots found: %d

Free slots:
%s

Instructions:
1. If there are no free slots, mention that their schedule is fully booked.
2. If there are free slots, summarize them concisely by mentioning key time slots.
3. Keep your response brief and conversational.
4. Do not use bullet points or formatting.
5. Do not introduce yourself or add pleasantries like "Here's what I found".
6. Use a friendly, helpful tone.
7. Include every day that has been checked for free slots.

Response:`, dateRange, totalFreeSlots, freeSlotsJSON)
}

func matchingEventsSummaryPrompt(eventName string, totalMatches int, matchesJSON string) string {
	return fmt.Sprintf(`Generate a friendly, conversational response describing the details of specific events.

Event name queried: %s
Total matching events found: %d

Matching events:
%s

Instructions:
1. If there are no matching events, mention that no events with that name were found.
2. If there are matching events, describe when they're scheduled and their duration.
3. Keep your response brief and conversational.
4. Do not use bullet points or formatting.
5. Do not introduce yourself or add pleasantries like "Here's what I found".
6. Use a friendly, helpful tone.

Response:`, eventName, totalMatches, matchesJSON)
}

func genericSummaryPrompt(dataJSON string) string {
	return fmt.Sprintf(`Generate a friendly, conversational response about the user's calendar.

Calendar data:
%s

Instructions:
1. Summarize the information concisely.
2. Keep your response brief and conversational.
3. Do not use bullet points or formatting.
4. Do not introduce yourself or add pleasantries like "Here's what I found".
5. Use a friendly, helpful tone.

Response:`, dataJSON)
}
