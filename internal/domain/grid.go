package domain

import "sort"

// SessionGroup is one grid cell: all slots sharing a composite key, merged.
type SessionGroup struct {
	Slot  *SessionSlot `json:"slot"`
	State SlotState    `json:"state"`
	// Count is the number of source slots merged into this cell.
	Count int `json:"count"`

	// booked is set when any merged slot is booked on its own.
	booked bool
}

// GroupSessions merges slots that share a composite key. The first slot's
// identifier and price are kept and participants are concatenated.
// A cell whose source slots include a booked one stays booked after merging.
// Groups are returned in first-appearance order, with State left empty.
func GroupSessions(slots []*SessionSlot) []*SessionGroup {
	byKey := make(map[SessionKey]*SessionGroup)
	var out []*SessionGroup
	for _, s := range slots {
		key := s.Key()
		if g, ok := byKey[key]; ok {
			g.Slot.Participants = append(g.Slot.Participants, s.Participants...)
			g.Count++
			g.booked = g.booked || ClassifySlot(s, nil) == SlotBooked
			continue
		}
		cp := *s
		cp.Participants = append([]string{}, s.Participants...)
		g := &SessionGroup{Slot: &cp, Count: 1, booked: ClassifySlot(s, nil) == SlotBooked}
		byKey[key] = g
		out = append(out, g)
	}
	return out
}

// DaySchedule is one column of the weekly grid.
type DaySchedule struct {
	Day   string          `json:"day"`
	Cells []*SessionGroup `json:"cells"`
}

// WeekGrid is a trainer's classified weekly schedule, Monday first.
type WeekGrid []*DaySchedule

// BuildWeekGrid groups slots per weekday, sorts each day by start time and
// classifies every cell against listed. Slots with an unknown day are dropped.
func BuildWeekGrid(slots []*SessionSlot, listed *ListedSessions) WeekGrid {
	byDay := make(map[string][]*SessionSlot, len(Weekdays))
	for _, s := range slots {
		if !IsWeekday(s.Day) {
			continue
		}
		byDay[s.Day] = append(byDay[s.Day], s)
	}
	grid := make(WeekGrid, 0, len(Weekdays))
	for _, day := range Weekdays {
		cells := GroupSessions(byDay[day])
		sort.SliceStable(cells, func(i, j int) bool {
			return cells[i].Slot.TimeStart < cells[j].Slot.TimeStart
		})
		for _, c := range cells {
			c.State = ClassifySlot(c.Slot, listed)
			if c.booked {
				c.State = SlotBooked
			}
		}
		if cells == nil {
			cells = []*SessionGroup{}
		}
		grid = append(grid, &DaySchedule{Day: day, Cells: cells})
	}
	return grid
}

// Find returns the grid cell for key, if any.
func (g WeekGrid) Find(key SessionKey) (*SessionGroup, bool) {
	for _, d := range g {
		if d.Day != key.Day {
			continue
		}
		for _, c := range d.Cells {
			if c.Slot.Key() == key {
				return c, true
			}
		}
	}
	return nil, false
}
