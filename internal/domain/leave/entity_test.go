package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(value string) time.Time {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"single day", "2026-03-02", "2026-03-02", 1},
		{"work week", "2026-03-02", "2026-03-06", 5},
		{"two weeks", "2026-03-02", "2026-03-13", 12},
		{"across month boundary", "2026-03-30", "2026-04-02", 4},
		{"across year boundary", "2026-12-30", "2027-01-02", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InclusiveDays(date(tt.start), date(tt.end)))
		})
	}
}

func TestLeaveStatusIsTerminal(t *testing.T) {
	assert.False(t, LeaveStatusPending.IsTerminal())
	assert.True(t, LeaveStatusApproved.IsTerminal())
	assert.True(t, LeaveStatusRejected.IsTerminal())
}

func TestValidLeaveType(t *testing.T) {
	assert.True(t, ValidLeaveType(LeaveTypePaid))
	assert.True(t, ValidLeaveType(LeaveTypeSick))
	assert.True(t, ValidLeaveType(LeaveTypeUnpaid))
	assert.False(t, ValidLeaveType("Vacation"))
}
