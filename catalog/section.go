package catalog

import (
	"fmt"
	"strconv"
	"strings"

	appErrors "github.com/jupiterp/jupiterp-go/pkg/errors"
)

// SectionRaw is the wire shape of a section as returned by the API, before
// conversion into the domain model.
type SectionRaw struct {
	CourseCode  string   `json:"course_code"`
	SecCode     string   `json:"sec_code"`
	Instructors []string `json:"instructors"`
	Meetings    []string `json:"meetings"`
	OpenSeats   int      `json:"open_seats"`
	TotalSeats  int      `json:"total_seats"`
	Waitlist    int      `json:"waitlist"`
	Holdfile    *int     `json:"holdfile"`
}

// Section is one scheduled offering of a course.
type Section struct {
	CourseCode  string
	SectionCode string
	Instructors []string

	// Meetings lists the recurring time/place blocks for this section. A
	// single meeting can cover multiple days (e.g. MWF 10:00-10:50).
	Meetings []ClassMeeting

	OpenSeats  int
	TotalSeats int
	Waitlist   int

	// Holdfile is the number of seats held for special purposes, or nil if
	// the information is not available.
	Holdfile *int
}

// MeetingKind discriminates the class-meeting variants.
type MeetingKind int

const (
	// MeetingScheduled is a concrete meeting with a time and location.
	MeetingScheduled MeetingKind = iota
	// MeetingOnlineAsync is an asynchronous online meeting with no set time.
	MeetingOnlineAsync
	// MeetingUnknown means the schedule has not been published.
	MeetingUnknown
	// MeetingTBA means the time and place are to be announced.
	MeetingTBA
)

// ClassMeeting is a tagged value: one of three sentinel kinds carrying no
// payload, or a scheduled meeting with a classtime and location.
type ClassMeeting struct {
	Kind      MeetingKind
	Classtime *Classtime
	Location  *Location
}

// Classtime is the days and time window of a meeting. Start and End are
// fractional hours: 1:30 PM is 13.5.
type Classtime struct {
	Days  string
	Start float64
	End   float64
}

// Location is the building and room where a meeting takes place.
type Location struct {
	Building string
	Room     string
}

const (
	meetingOnlineAsync = "OnlineAsync"
	meetingUnknown     = "Unknown"
	meetingTBA         = "TBA"
)

// ParseClassMeeting converts one raw meeting string into a ClassMeeting.
// The three sentinel strings match exactly (case-sensitive, no trimming);
// anything else must follow the days-start-end-building[-room] grammar or
// the parse fails.
func ParseClassMeeting(s string) (ClassMeeting, error) {
	switch s {
	case meetingOnlineAsync:
		return ClassMeeting{Kind: MeetingOnlineAsync}, nil
	case meetingUnknown:
		return ClassMeeting{Kind: MeetingUnknown}, nil
	case meetingTBA:
		return ClassMeeting{Kind: MeetingTBA}, nil
	}

	parts := strings.Split(s, "-")
	if len(parts) < 4 || len(parts) > 5 {
		return ClassMeeting{}, malformedMeeting(s, fmt.Errorf("expected 4 or 5 fields, got %d", len(parts)))
	}

	start, err := parseClock(parts[1])
	if err != nil {
		return ClassMeeting{}, malformedMeeting(s, err)
	}
	end, err := parseClock(parts[2])
	if err != nil {
		return ClassMeeting{}, malformedMeeting(s, err)
	}

	room := ""
	if len(parts) == 5 {
		room = parts[4]
	}

	return ClassMeeting{
		Kind:      MeetingScheduled,
		Classtime: &Classtime{Days: parts[0], Start: start, End: end},
		Location:  &Location{Building: parts[3], Room: room},
	}, nil
}

// parseClock converts a 12-hour clock token such as "7:40pm" into fractional
// hours (19.666...). "12:00am" normalises to 0 and "12:00pm" stays 12.
func parseClock(token string) (float64, error) {
	t := strings.ToLower(token)
	parts := strings.Split(t, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", token)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q", token)
	}
	if strings.Contains(t, "pm") && hours < 12 {
		hours += 12
	} else if strings.Contains(t, "am") && hours == 12 {
		hours = 0
	}

	minuteToken := strings.NewReplacer("am", "", "pm", "").Replace(parts[1])
	minutes, err := strconv.Atoi(minuteToken)
	if err != nil {
		return 0, fmt.Errorf("invalid minutes in %q", token)
	}

	return float64(hours) + float64(minutes)/60, nil
}

func malformedMeeting(s string, cause error) error {
	return appErrors.Wrap(cause, appErrors.ErrMalformedMeeting.Code, fmt.Sprintf("malformed meeting string %q", s))
}

// String renders the meeting for display purposes.
func (m ClassMeeting) String() string {
	switch m.Kind {
	case MeetingOnlineAsync:
		return meetingOnlineAsync
	case MeetingUnknown:
		return meetingUnknown
	case MeetingTBA:
		return meetingTBA
	}

	var b strings.Builder
	if m.Classtime != nil {
		fmt.Fprintf(&b, "%s %s-%s", m.Classtime.Days, formatClock(m.Classtime.Start), formatClock(m.Classtime.End))
	}
	if m.Location != nil {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(m.Location.Building)
		if m.Location.Room != "" {
			b.WriteByte(' ')
			b.WriteString(m.Location.Room)
		}
	}
	return b.String()
}

// formatClock renders fractional hours on a 24-hour clock, e.g. 13.5 as
// "13:30".
func formatClock(hours float64) string {
	total := int(hours*60 + 0.5)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// ParseSection converts a raw section into its domain form. The meetings
// list always length-matches the raw meetings array.
func ParseSection(raw SectionRaw) (Section, error) {
	meetings := make([]ClassMeeting, 0, len(raw.Meetings))
	for _, m := range raw.Meetings {
		meeting, err := ParseClassMeeting(m)
		if err != nil {
			return Section{}, err
		}
		meetings = append(meetings, meeting)
	}

	return Section{
		CourseCode:  raw.CourseCode,
		SectionCode: raw.SecCode,
		Instructors: raw.Instructors,
		Meetings:    meetings,
		OpenSeats:   raw.OpenSeats,
		TotalSeats:  raw.TotalSeats,
		Waitlist:    raw.Waitlist,
		Holdfile:    raw.Holdfile,
	}, nil
}
