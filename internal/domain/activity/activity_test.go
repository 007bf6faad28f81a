package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	for _, want := range AllTypes() {
		got, err := ParseType(string(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseType("Hobby")
	assert.ErrorIs(t, err, ErrInvalidType)

	_, err = ParseType("internship")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2023-01-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), *d)

	d, err = ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	_, err = ParseDate("01/02/2023")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestOngoingInternshipPeriod(t *testing.T) {
	start, _ := ParseDate("2023-01-01")
	a := &Activity{Title: "Intern", Type: TypeInternship, StartDate: *start}

	require.NoError(t, a.Validate())
	assert.True(t, a.Ongoing())
	assert.Nil(t, a.ImageURL)
	assert.Equal(t, "2023-01-01 → Sekarang", a.Period())
}

func TestFinishedPeriod(t *testing.T) {
	start, _ := ParseDate("2022-02-01")
	end, _ := ParseDate("2022-08-31")
	a := &Activity{Title: "Mentor", Type: TypeVolunteering, StartDate: *start, EndDate: end}
	assert.Equal(t, "2022-02-01 → 2022-08-31", a.Period())
}

func TestValidate(t *testing.T) {
	start, _ := ParseDate("2023-05-01")
	before, _ := ParseDate("2023-04-30")

	cases := []struct {
		name string
		a    Activity
		want error
	}{
		{"missing title", Activity{Type: TypeOther, StartDate: *start}, ErrTitleRequired},
		{"bad type", Activity{Title: "x", Type: "Hobby", StartDate: *start}, ErrInvalidType},
		{"missing start", Activity{Title: "x", Type: TypeOther}, ErrStartDateRequired},
		{"end before start", Activity{Title: "x", Type: TypeOther, StartDate: *start, EndDate: before}, ErrEndBeforeStart},
		{"same day", Activity{Title: "x", Type: TypeOther, StartDate: *start, EndDate: start}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.a.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
