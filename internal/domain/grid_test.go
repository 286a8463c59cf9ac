package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSessions(t *testing.T) {
	slots := []*SessionSlot{
		{ClassType: ClassGroup, TimeStart: "18:00", TimeEnd: "19:00", Day: "Monday", ClassIdentifier: "g1", Participants: []string{"u1"}},
		{ClassType: ClassBreak, TimeStart: "12:00", TimeEnd: "13:00", Day: "Monday"},
		{ClassType: ClassGroup, TimeStart: "18:00", TimeEnd: "19:00", Day: "Monday", ClassIdentifier: "g2", Participants: []string{"u2", "u3"}},
	}

	groups := GroupSessions(slots)

	require.Len(t, groups, 2)
	assert.Equal(t, "g1", groups[0].Slot.ClassIdentifier)
	assert.Equal(t, []string{"u1", "u2", "u3"}, groups[0].Slot.Participants)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, ClassBreak, groups[1].Slot.ClassType)
	assert.Equal(t, []string{"u1"}, slots[0].Participants, "source slot must not be mutated")
}

func TestBuildWeekGrid(t *testing.T) {
	slots := []*SessionSlot{
		{ClassType: ClassGroup, TimeStart: "18:00", TimeEnd: "19:00", Day: "Monday"},
		{ClassType: ClassPrivateTraining, TimeStart: "09:00", TimeEnd: "10:00", Day: "Monday"},
		{ClassType: ClassPrivateTraining, TimeStart: "10:00", TimeEnd: "11:00", Day: "Monday", Participants: []string{"u9"}},
		{ClassType: ClassDropIn, TimeStart: "07:00", TimeEnd: "08:00", Day: "Sunday"},
		{ClassType: ClassGroup, TimeStart: "07:00", TimeEnd: "08:00", Day: "Funday"},
	}
	listed := NewListedSessions()
	listed.Add(slots[1])

	grid := BuildWeekGrid(slots, listed)

	require.Len(t, grid, 7)
	assert.Equal(t, "Monday", grid[0].Day)
	assert.Equal(t, "Sunday", grid[6].Day)

	mon := grid[0].Cells
	require.Len(t, mon, 3)
	assert.Equal(t, "09:00", mon[0].Slot.TimeStart)
	assert.Equal(t, SlotListed, mon[0].State)
	assert.Equal(t, SlotBooked, mon[1].State)
	assert.Equal(t, SlotBookable, mon[2].State)

	assert.Empty(t, grid[1].Cells)
	assert.NotNil(t, grid[1].Cells)
	require.Len(t, grid[6].Cells, 1)
	assert.Equal(t, SlotFree, grid[6].Cells[0].State)
}

func TestWeekGrid_Find(t *testing.T) {
	slot := &SessionSlot{ClassType: ClassWorkshops, TimeStart: "10:00", TimeEnd: "12:00", Day: "Saturday", ClassIdentifier: "w1"}
	grid := BuildWeekGrid([]*SessionSlot{slot}, nil)

	cell, ok := grid.Find(slot.Key())
	require.True(t, ok)
	assert.Equal(t, "w1", cell.Slot.ClassIdentifier)

	_, ok = grid.Find(SessionKey{ClassType: ClassWorkshops, TimeStart: "10:00", TimeEnd: "12:00", Day: "Sunday"})
	assert.False(t, ok)
}

func TestBuildWeekGrid_MergedCellKeepsBooking(t *testing.T) {
	at := func(classType string, participants ...string) *SessionSlot {
		return &SessionSlot{ClassType: classType, TimeStart: "09:00", TimeEnd: "10:00", Day: "Monday", Participants: participants}
	}

	tests := []struct {
		name  string
		slots []*SessionSlot
		want  SlotState
	}{
		{"both booked", []*SessionSlot{at(ClassPrivateTraining, "u1"), at(ClassPrivateTraining, "u2")}, SlotBooked},
		{"one booked one open", []*SessionSlot{at(ClassPrivateTraining), at(ClassPrivateTraining, "u2")}, SlotBooked},
		{"both open", []*SessionSlot{at(ClassPrivateTraining), at(ClassPrivateTraining)}, SlotBookable},
		{"multi-participant class", []*SessionSlot{at(ClassGroup, "u1"), at(ClassGroup, "u2")}, SlotBookable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildWeekGrid(tt.slots, nil)
			require.Len(t, grid[0].Cells, 1)
			assert.Equal(t, tt.want, grid[0].Cells[0].State)
			assert.Equal(t, 2, grid[0].Cells[0].Count)
		})
	}
}

func TestBuildWeekGrid_MergedBookedCellIgnoresSelection(t *testing.T) {
	open := &SessionSlot{ClassType: ClassPrivateTraining, TimeStart: "09:00", TimeEnd: "10:00", Day: "Monday"}
	taken := &SessionSlot{ClassType: ClassPrivateTraining, TimeStart: "09:00", TimeEnd: "10:00", Day: "Monday", Participants: []string{"u2"}}
	listed := NewListedSessions()
	listed.Add(open)

	grid := BuildWeekGrid([]*SessionSlot{open, taken}, listed)

	cell, ok := grid.Find(open.Key())
	require.True(t, ok)
	assert.Equal(t, SlotBooked, cell.State)
	assert.False(t, cell.State.Selectable())
}
