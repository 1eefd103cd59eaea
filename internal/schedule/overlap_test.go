package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	day := mustDate(t, "2024-01-01")

	tests := []struct {
		name                       string
		startA, endA, startB, endB time.Time
		want                       bool
	}{
		{
			name:   "identical intervals",
			startA: at(day, 10, 0), endA: at(day, 10, 20),
			startB: at(day, 10, 0), endB: at(day, 10, 20),
			want: true,
		},
		{
			name:   "partial overlap",
			startA: at(day, 10, 0), endA: at(day, 10, 20),
			startB: at(day, 10, 10), endB: at(day, 10, 30),
			want: true,
		},
		{
			name:   "containment",
			startA: at(day, 10, 0), endA: at(day, 10, 40),
			startB: at(day, 10, 10), endB: at(day, 10, 30),
			want: true,
		},
		{
			name:   "back to back",
			startA: at(day, 10, 0), endA: at(day, 10, 20),
			startB: at(day, 10, 20), endB: at(day, 10, 40),
			want: false,
		},
		{
			name:   "disjoint",
			startA: at(day, 10, 0), endA: at(day, 10, 20),
			startB: at(day, 12, 0), endB: at(day, 12, 20),
			want: false,
		},
		{
			name:   "inverted bounds still produce a defined answer",
			startA: at(day, 10, 20), endA: at(day, 10, 0),
			startB: at(day, 10, 0), endB: at(day, 10, 20),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.startA, tt.endA, tt.startB, tt.endB))
			assert.Equal(t, tt.want, Overlaps(tt.startB, tt.endB, tt.startA, tt.endA), "overlap must be symmetric")
		})
	}
}
