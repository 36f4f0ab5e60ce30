package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDay(d Weekday, location string) Day {
	return Day{
		Day:       d,
		Location:  location,
		Address:   "Av. Paulista, 1000",
		OpenTime:  "11:00",
		CloseTime: "14:00",
	}
}

func TestGroup(t *testing.T) {
	tests := []struct {
		name       string
		days       []Day
		wantRanges []string
	}{
		{
			name:       "empty week",
			days:       nil,
			wantRanges: nil,
		},
		{
			name:       "single day",
			days:       []Day{openDay(Wednesday, "Centro")},
			wantRanges: []string{"Wednesday"},
		},
		{
			name: "identical adjacent days merge",
			days: []Day{
				openDay(Monday, "Centro"),
				openDay(Tuesday, "Centro"),
			},
			wantRanges: []string{"Monday - Tuesday"},
		},
		{
			name: "different hours split",
			days: []Day{
				openDay(Monday, "Centro"),
				{Day: Tuesday, Location: "Centro", Address: "Av. Paulista, 1000", OpenTime: "12:00", CloseTime: "14:00"},
			},
			wantRanges: []string{"Monday", "Tuesday"},
		},
		{
			name: "different location splits",
			days: []Day{
				openDay(Monday, "Centro"),
				openDay(Tuesday, "Pinheiros"),
			},
			wantRanges: []string{"Monday", "Tuesday"},
		},
		{
			name: "gap in the week splits",
			days: []Day{
				openDay(Monday, "Centro"),
				openDay(Wednesday, "Centro"),
			},
			wantRanges: []string{"Monday", "Wednesday"},
		},
		{
			name: "input order does not matter",
			days: []Day{
				openDay(Wednesday, "Centro"),
				openDay(Monday, "Centro"),
				openDay(Tuesday, "Centro"),
			},
			wantRanges: []string{"Monday - Wednesday"},
		},
		{
			name: "sunday and monday never merge",
			days: []Day{
				openDay(Sunday, "Centro"),
				openDay(Monday, "Centro"),
			},
			wantRanges: []string{"Monday", "Sunday"},
		},
		{
			name: "closed run groups together",
			days: []Day{
				{Day: Monday, IsClosed: true},
				{Day: Tuesday, IsClosed: true},
				openDay(Wednesday, "Centro"),
				openDay(Thursday, "Centro"),
				openDay(Friday, "Centro"),
			},
			wantRanges: []string{"Monday - Tuesday", "Wednesday - Friday"},
		},
		{
			name: "different day timezone splits",
			days: []Day{
				openDay(Monday, "Centro"),
				func() Day {
					d := openDay(Tuesday, "Centro")
					d.Timezone = "America/Bahia"
					return d
				}(),
			},
			wantRanges: []string{"Monday", "Tuesday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Group(Week{Days: tt.days})

			var ranges []string
			for _, g := range got {
				ranges = append(ranges, g.DayRange)
			}
			assert.Equal(t, tt.wantRanges, ranges)
		})
	}
}

func TestGroup_Deterministic(t *testing.T) {
	week := Week{Days: []Day{
		openDay(Friday, "Centro"),
		openDay(Monday, "Centro"),
		openDay(Tuesday, "Centro"),
		{Day: Saturday, IsClosed: true},
	}}

	first := Group(week)
	second := Group(week)

	assert.Equal(t, first, second)
	require.Len(t, first, 3)
	assert.Equal(t, "Monday - Tuesday", first[0].DayRange)
	assert.Equal(t, "Friday", first[1].DayRange)
	assert.Equal(t, "Saturday", first[2].DayRange)
}

func TestGroup_DoesNotMutateWeek(t *testing.T) {
	stamp := time.Now()
	week := Week{Days: []Day{
		openDay(Tuesday, "Centro"),
		{Day: Monday, IsClosed: true, ClosureTimestamp: &stamp},
	}}

	_ = Group(week)

	// Agrupar nunca mexe no estado dos dias, inclusive na ordem.
	assert.Equal(t, Tuesday, week.Days[0].Day)
	assert.True(t, week.Days[1].IsClosed)
	assert.NotNil(t, week.Days[1].ClosureTimestamp)
}
