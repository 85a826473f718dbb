package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDateRange_Overlaps(t *testing.T) {
	existing := DateRange{Start: day("2024-03-01"), End: day("2024-03-05")}

	tests := []struct {
		name     string
		other    DateRange
		expected bool
	}{
		{"Overlapping tail", DateRange{day("2024-03-04"), day("2024-03-08")}, true},
		{"Touching end", DateRange{day("2024-03-05"), day("2024-03-08")}, false},
		{"Touching start", DateRange{day("2024-02-25"), day("2024-03-01")}, false},
		{"Contained", DateRange{day("2024-03-02"), day("2024-03-03")}, true},
		{"Containing", DateRange{day("2024-02-01"), day("2024-04-01")}, true},
		{"Identical", existing, true},
		{"Disjoint", DateRange{day("2024-04-01"), day("2024-04-03")}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, existing.Overlaps(tt.other))
			assert.Equal(t, tt.expected, tt.other.Overlaps(existing), "overlap must be symmetric")
		})
	}
}

func TestDateRange_Valid(t *testing.T) {
	assert.True(t, DateRange{day("2024-01-01"), day("2024-01-02")}.Valid())
	assert.False(t, DateRange{day("2024-01-02"), day("2024-01-02")}.Valid())
	assert.False(t, DateRange{day("2024-01-03"), day("2024-01-02")}.Valid())
}

func TestRental_Blocks(t *testing.T) {
	period := DateRange{day("2024-03-04"), day("2024-03-08")}
	r := &Rental{Period: DateRange{day("2024-03-01"), day("2024-03-05")}}

	for _, s := range []RentalStatus{RentalStatusPending, RentalStatusActive, RentalStatusCompleted} {
		r.Status = s
		assert.True(t, r.Blocks(period), "status %s", s)
	}
	r.Status = RentalStatusCancelled
	assert.False(t, r.Blocks(period))
}

func TestErrorKinds(t *testing.T) {
	err := fmt.Errorf("create rental: %w", NewConflictError("vehicle already booked"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "vehicle already booked", ReasonOf(err))

	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "internal error", ReasonOf(errors.New("boom")))

	cause := errors.New("connection reset")
	internal := WrapInternal("failed to load rental", cause)
	assert.ErrorIs(t, internal, cause)
	assert.Equal(t, "internal error", ReasonOf(internal))

	nf := NewNotFoundError("vehicle", int32(4))
	assert.Equal(t, "vehicle 4 not found", nf.Error())
	assert.False(t, IsKind(nil, KindNotFound))

	it := NewInvalidTransitionError("rental", RentalStatusCompleted, RentalStatusActive)
	assert.Equal(t, KindInvalidTransition, it.Kind)
	assert.Contains(t, it.Reason, "from completed to active")
}
