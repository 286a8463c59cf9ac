package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Class types offered on a trainer's weekly grid. The set is open: unknown
// values are carried through and rendered as a plain "visit" link.
const (
	ClassGroup               = "Group Classes"
	ClassOnline              = "Online Class"
	ClassOutdoor             = "Outdoor Class"
	ClassPartnerWorkout      = "Partner Workout"
	ClassPrivateSession      = "Private Session"
	ClassPrivateTraining     = "Private Training"
	ClassSemiPrivateTraining = "Semi-Private Training"
	ClassWorkshops           = "Workshops"
	ClassDropIn              = "Drop-In Class"
	ClassOpenGym             = "Open Gym Class"
	ClassBreak               = "Break"
)

// Weekdays lists the day names in grid order.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// multiParticipantClasses are never considered fully booked by a single participant.
var multiParticipantClasses = map[string]struct{}{
	ClassGroup:               {},
	ClassOnline:              {},
	ClassOutdoor:             {},
	ClassPartnerWorkout:      {},
	ClassPrivateSession:      {},
	ClassSemiPrivateTraining: {},
	ClassWorkshops:           {},
}

var bookableClasses = map[string]struct{}{
	ClassGroup:               {},
	ClassOnline:              {},
	ClassOutdoor:             {},
	ClassPartnerWorkout:      {},
	ClassPrivateTraining:     {},
	ClassSemiPrivateTraining: {},
	ClassWorkshops:           {},
}

var freeClasses = map[string]struct{}{
	ClassDropIn:  {},
	ClassOpenGym: {},
}

// IsMultiParticipant reports whether classType admits more than one participant.
func IsMultiParticipant(classType string) bool {
	_, ok := multiParticipantClasses[classType]
	return ok
}

// IsWeekday reports whether day is one of the seven weekday names.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Price is a slot price. It decodes from a JSON number, a numeric string or
// the literal "free"; anything else counts as zero.
type Price float64

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(b []byte) error {
	*p = 0
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*p = Price(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	*p = ParsePrice(s)
	return nil
}

// ParsePrice converts a textual price. "free" (any case), empty and
// non-numeric strings are zero.
func ParsePrice(s string) Price {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "free") {
		return 0
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return Price(n)
}

// SessionKey is the composite identity of a session for selection purposes.
type SessionKey struct {
	ClassType string `json:"class_type"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
	Day       string `json:"day"`
}

// Validate implements the request validator used by the HTTP layer.
func (k SessionKey) Validate() []string {
	var errs []string
	if k.ClassType == "" {
		errs = append(errs, "class_type is required")
	}
	if k.TimeStart == "" {
		errs = append(errs, "time_start is required")
	}
	if k.TimeEnd == "" {
		errs = append(errs, "time_end is required")
	}
	if k.Day == "" {
		errs = append(errs, "day is required")
	}
	return errs
}

// SessionSlot is one bookable unit of a trainer's weekly calendar.
// swagger:model SessionSlot
type SessionSlot struct {
	Day             string   `json:"day"`
	TimeStart       string   `json:"time_start"`
	TimeEnd         string   `json:"time_end"`
	ClassType       string   `json:"class_type"`
	ClassIdentifier string   `json:"class_identifier"`
	Price           Price    `json:"price"`
	Participants    []string `json:"participants"`
}

// Key returns the slot's composite key.
func (s *SessionSlot) Key() SessionKey {
	return SessionKey{
		ClassType: s.ClassType,
		TimeStart: s.TimeStart,
		TimeEnd:   s.TimeEnd,
		Day:       s.Day,
	}
}

// SlotState is the interaction state of a slot on the weekly grid.
type SlotState string

const (
	SlotBooked    SlotState = "booked"
	SlotListed    SlotState = "listed"
	SlotBookable  SlotState = "bookable"
	SlotFree      SlotState = "free"
	SlotOnBreak   SlotState = "on_break"
	SlotVisitOnly SlotState = "visit_only"
)

// Selectable reports whether a slot in this state may be added to a selection.
func (s SlotState) Selectable() bool {
	return s == SlotBookable || s == SlotFree || s == SlotListed
}

// ClassifySlot returns the grid state of slot given the caller's current
// selection. Rules are evaluated in order and the first match wins.
func ClassifySlot(slot *SessionSlot, listed *ListedSessions) SlotState {
	if len(slot.Participants) == 1 && !IsMultiParticipant(slot.ClassType) {
		return SlotBooked
	}
	if listed != nil && listed.Contains(slot.Key()) {
		return SlotListed
	}
	if _, ok := bookableClasses[slot.ClassType]; ok {
		return SlotBookable
	}
	if _, ok := freeClasses[slot.ClassType]; ok {
		return SlotFree
	}
	if slot.ClassType == ClassBreak {
		return SlotOnBreak
	}
	return SlotVisitOnly
}

// TotalPrice sums the prices of the fixed schedule slots and the listed ones.
func TotalPrice(fixed, listed []*SessionSlot) float64 {
	var total float64
	for _, s := range fixed {
		total += float64(s.Price)
	}
	for _, s := range listed {
		total += float64(s.Price)
	}
	return total
}

// ClassIdentifiers returns the class identifiers of the given slot groups, in order.
func ClassIdentifiers(groups ...[]*SessionSlot) []string {
	ids := []string{}
	for _, g := range groups {
		for _, s := range g {
			ids = append(ids, s.ClassIdentifier)
		}
	}
	return ids
}
