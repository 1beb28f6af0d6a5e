package toml

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gigamonkey/scheduler/internal/timetable"
)

// On-disk schema of a schedule definition. Example:
//
//	[window]
//	start_hour = 12
//	end_hour = 17
//	increment = 30
//	weeks = 6
//
//	[participants.alice]
//	at_or_after = "13:00"
//
//	[[meetings]]
//	name = "standup"
//	participants = ["alice", "bob"]
//	duration = 15
//	cadence = "daily"
//
//	[[meetings]]
//	name = "retro"
//	participants = ["alice", "bob"]
//	duration = 60
//	cadence = "sprint"
//	day = "friday"
//	week = 1
type scheduleSchema struct {
	Window       windowSchema                 `toml:"window"`
	Participants map[string]availabilityRules `toml:"participants"`
	Meetings     []meetingSchema              `toml:"meetings"`
}

type windowSchema struct {
	StartHour int `toml:"start_hour"`
	EndHour   int `toml:"end_hour"`
	Increment int `toml:"increment"`
	Weeks     int `toml:"weeks"`
}

type availabilityRules struct {
	At         string `toml:"at"`
	AtOrBefore string `toml:"at_or_before"`
	AtOrAfter  string `toml:"at_or_after"`
}

type meetingSchema struct {
	Name         string   `toml:"name"`
	Participants []string `toml:"participants"`
	Duration     int      `toml:"duration"`

	// Cadence is one of "daily", "weekly", "sprint", "daily-except".
	Cadence string         `toml:"cadence"`
	Every   int            `toml:"every"`  // weekly: recur every n weeks
	Days    []string       `toml:"days"`   // weekly: restrict to these days
	Day     string         `toml:"day"`    // sprint: the day
	Week    int            `toml:"week"`   // sprint: week 0 or 1 of the sprint
	Except  []exceptSchema `toml:"except"` // daily-except: skipped sprint days

	At         string `toml:"at"`
	AtOrBefore string `toml:"at_or_before"`
	AtOrAfter  string `toml:"at_or_after"`
}

type exceptSchema struct {
	Day  string `toml:"day"`
	Week int    `toml:"week"`
}

// Defaults for an omitted or partial [window] section: a noon-to-5pm
// grid at half-hour increments on a six-week calendar.
const (
	defaultStartHour = 12
	defaultEndHour   = 17
	defaultIncrement = 30
	defaultWeeks     = 6
)

func (s scheduleSchema) definition() (timetable.Definition, error) {
	def := timetable.Definition{
		Window: s.Window.window(),
	}

	if len(s.Participants) > 0 {
		def.Availability = make(map[string][]timetable.TimeConstraint, len(s.Participants))
		for name, rules := range s.Participants {
			constraints, err := rules.constraints()
			if err != nil {
				return timetable.Definition{}, fmt.Errorf("participant %q: %w", name, err)
			}
			def.Availability[name] = constraints
		}
	}

	def.Meetings = make([]timetable.MeetingDefinition, 0, len(s.Meetings))
	for _, m := range s.Meetings {
		md, err := m.definition()
		if err != nil {
			return timetable.Definition{}, err
		}
		def.Meetings = append(def.Meetings, md)
	}

	return def, nil
}

func (w windowSchema) window() timetable.Window {
	window := timetable.Window{
		StartHour: w.StartHour,
		EndHour:   w.EndHour,
		Increment: w.Increment,
		Weeks:     w.Weeks,
	}
	if window.StartHour == 0 {
		window.StartHour = defaultStartHour
	}
	if window.EndHour == 0 {
		window.EndHour = defaultEndHour
	}
	if window.Increment == 0 {
		window.Increment = defaultIncrement
	}
	if window.Weeks == 0 {
		window.Weeks = defaultWeeks
	}

	return window
}

func (r availabilityRules) constraints() ([]timetable.TimeConstraint, error) {
	var constraints []timetable.TimeConstraint

	if r.At != "" {
		hour, minute, err := parseClock(r.At)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, timetable.At{Hour: hour, Minute: minute})
	}
	if r.AtOrBefore != "" {
		hour, minute, err := parseClock(r.AtOrBefore)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, timetable.AtOrBefore{Hour: hour, Minute: minute})
	}
	if r.AtOrAfter != "" {
		hour, minute, err := parseClock(r.AtOrAfter)
		if err != nil {
			return nil, err
		}
		constraints = append(constraints, timetable.AtOrAfter{Hour: hour, Minute: minute})
	}

	return constraints, nil
}

func (m meetingSchema) definition() (timetable.MeetingDefinition, error) {
	if strings.TrimSpace(m.Name) == "" {
		return timetable.MeetingDefinition{}, fmt.Errorf("meeting name is required")
	}

	cadence, err := m.cadence()
	if err != nil {
		return timetable.MeetingDefinition{}, fmt.Errorf("meeting %q: %w", m.Name, err)
	}

	constraint, err := m.constraint()
	if err != nil {
		return timetable.MeetingDefinition{}, fmt.Errorf("meeting %q: %w", m.Name, err)
	}

	return timetable.MeetingDefinition{
		Name:         m.Name,
		Participants: m.Participants,
		Spec: timetable.MeetingSpec{
			Cadence:    cadence,
			Duration:   m.Duration,
			Constraint: constraint,
		},
	}, nil
}

func (m meetingSchema) cadence() (timetable.Cadence, error) {
	switch m.Cadence {
	case "daily":
		return timetable.Daily{}, nil

	case "weekly":
		every := m.Every
		if every == 0 {
			every = 1
		}
		if len(m.Days) == 0 {
			return timetable.Weekly{Every: every}, nil
		}
		days, err := parseDays(m.Days)
		if err != nil {
			return nil, err
		}
		return timetable.WeeklyOn{Every: every, Days: days}, nil

	case "sprint":
		day, err := parseDay(m.Day)
		if err != nil {
			return nil, err
		}
		return timetable.Sprint{Day: day, Week: m.Week}, nil

	case "daily-except":
		except := make([]timetable.DayWeek, 0, len(m.Except))
		for _, e := range m.Except {
			day, err := parseDay(e.Day)
			if err != nil {
				return nil, err
			}
			except = append(except, timetable.DayWeek{Day: day, Week: e.Week})
		}
		return timetable.DailyExcept{Except: except}, nil

	case "":
		return nil, fmt.Errorf("cadence is required")

	default:
		return nil, fmt.Errorf("unsupported cadence %q", m.Cadence)
	}
}

func (m meetingSchema) constraint() (timetable.TimeConstraint, error) {
	rules, err := availabilityRules{At: m.At, AtOrBefore: m.AtOrBefore, AtOrAfter: m.AtOrAfter}.constraints()
	if err != nil {
		return nil, err
	}

	switch len(rules) {
	case 0:
		return nil, nil
	case 1:
		return rules[0], nil
	default:
		return nil, fmt.Errorf("at most one of at, at_or_before, at_or_after is allowed")
	}
}

var daysByName = map[string]timetable.Day{
	"monday":    timetable.Monday,
	"tuesday":   timetable.Tuesday,
	"wednesday": timetable.Wednesday,
	"thursday":  timetable.Thursday,
	"friday":    timetable.Friday,
}

func parseDay(raw string) (timetable.Day, error) {
	day, ok := daysByName[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return 0, fmt.Errorf("unsupported day %q", raw)
	}

	return day, nil
}

func parseDays(raw []string) ([]timetable.Day, error) {
	days := make([]timetable.Day, 0, len(raw))
	for _, r := range raw {
		day, err := parseDay(r)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}

	return days, nil
}

// parseClock parses "HH:MM".
func parseClock(raw string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", raw)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", raw)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", raw)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", raw)
	}

	return hour, minute, nil
}
