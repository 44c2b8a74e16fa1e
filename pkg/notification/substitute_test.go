package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type leaveData struct {
	FirstName      string
	StartDate      time.Time
	EndDate        time.Time
	LastWorkingDay *time.Time
	Reason         *string
	Days           int
}

func TestSubstitute(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		template string
		data     any
		want     string
	}{
		{
			name:     "renders fields and dates",
			template: "Hi {FirstName}, your leave from {StartDate} to {EndDate} is approved.",
			data:     leaveData{FirstName: "Asha", StartDate: start, EndDate: end},
			want:     "Hi Asha, your leave from 03/01/2024 to 03/03/2024 is approved.",
		},
		{
			name:     "tokens match case-insensitively",
			template: "Hello {firstname}, {FIRSTNAME}!",
			data:     leaveData{FirstName: "Asha"},
			want:     "Hello Asha, Asha!",
		},
		{
			name:     "nil pointer renders empty, never the word nil",
			template: "Last working day: {LastWorkingDay}.",
			data:     leaveData{FirstName: "Asha"},
			want:     "Last working day: .",
		},
		{
			name:     "unknown tokens pass through",
			template: "Hi {FirstName}, ref {TicketNo}.",
			data:     leaveData{FirstName: "Asha"},
			want:     "Hi Asha, ref {TicketNo}.",
		},
		{
			name:     "map data",
			template: "Role {RoleName} added.",
			data:     map[string]string{"RoleName": "Recruiter"},
			want:     "Role Recruiter added.",
		},
		{
			name:     "numeric fields use default conversion",
			template: "{Days} day(s)",
			data:     leaveData{Days: 3},
			want:     "3 day(s)",
		},
		{
			name:     "empty template",
			template: "",
			data:     leaveData{FirstName: "Asha"},
			want:     "",
		},
		{
			name:     "nil data leaves template untouched",
			template: "Hi {FirstName}",
			data:     nil,
			want:     "Hi {FirstName}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Substitute(tt.template, tt.data))
		})
	}
}

func TestSubstituteIdempotent(t *testing.T) {
	data := leaveData{FirstName: "Asha", StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	template := "Hi {FirstName}, starting {StartDate}."

	once := Substitute(template, data)
	twice := Substitute(once, data)
	assert.Equal(t, once, twice)
}

func TestSubstituteTokenCoverage(t *testing.T) {
	reason := "personal"
	data := leaveData{
		FirstName: "Asha",
		StartDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		Reason:    &reason,
	}
	rendered := Substitute("{FirstName} {StartDate} {EndDate} {Reason} {Days}", data)

	// No token with a matching field may survive rendering
	assert.NotContains(t, rendered, "{FirstName}")
	assert.NotContains(t, rendered, "{StartDate}")
	assert.NotContains(t, rendered, "{EndDate}")
	assert.NotContains(t, rendered, "{Reason}")
	assert.NotContains(t, rendered, "{Days}")
	assert.Contains(t, rendered, "personal")
}

func TestSubstituteZeroDate(t *testing.T) {
	rendered := Substitute("ends {EndDate}", leaveData{FirstName: "Asha"})
	assert.Equal(t, "ends ", rendered)
}
