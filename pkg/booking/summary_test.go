package booking_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/travelmail/pkg/booking"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		passengers []booking.Passenger
		want       booking.Summary
	}{
		{
			name: "family booking",
			passengers: []booking.Passenger{
				{Type: booking.TypeBooker, Title: "Mr", FirstName: "John", Surname: "Smith"},
				{Type: booking.TypeAdult, Title: "Mrs", FirstName: "Jane", Surname: "Smith"},
				{Type: booking.TypeChild, FirstName: "Billy", Surname: "Smith"},
				{Type: booking.TypeInfant, FirstName: "Molly", Surname: "Smith"},
			},
			want: booking.Summary{
				Adults:         1,
				Children:       1,
				Infants:        1,
				NonBooker:      3,
				NonBookerNames: "Mrs Jane Smith, Billy Smith, Molly Smith",
			},
		},
		{
			name: "booker only",
			passengers: []booking.Passenger{
				{Type: booking.TypeBooker, FirstName: "Solo", Surname: "Traveller"},
			},
			want: booking.Summary{},
		},
		{
			name: "type matching ignores case and padding",
			passengers: []booking.Passenger{
				{Type: " booker ", FirstName: "A", Surname: "B"},
				{Type: "ADULT", FirstName: "C", Surname: "D"},
				{Type: "child", FirstName: "E", Surname: "F"},
			},
			want: booking.Summary{
				Adults:         1,
				Children:       1,
				NonBooker:      2,
				NonBookerNames: "C D, E F",
			},
		},
		{
			name: "empty list",
			want: booking.Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, booking.Summarize(tt.passengers))
		})
	}
}

func TestBooker(t *testing.T) {
	t.Parallel()

	t.Run("returns the booker passenger", func(t *testing.T) {
		t.Parallel()

		passengers := []booking.Passenger{
			{Type: booking.TypeAdult, FirstName: "Jane"},
			{Type: booking.TypeBooker, FirstName: "John", Email: "john@example.com"},
		}

		booker, err := booking.Booker(passengers)
		require.NoError(t, err)
		assert.Equal(t, "John", booker.FirstName)
		assert.Equal(t, "john@example.com", booker.Email)
	})

	t.Run("missing booker is a data failure", func(t *testing.T) {
		t.Parallel()

		_, err := booking.Booker([]booking.Passenger{
			{Type: booking.TypeAdult, FirstName: "Jane"},
		})
		require.ErrorIs(t, err, booking.ErrNoBooker)
	})
}

func TestPassengerContactLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		phones []booking.Phone
		want   string
	}{
		{
			name: "all three numbers in fixed order",
			phones: []booking.Phone{
				{Type: booking.PhoneCellular, Number: "021 555 333"},
				{Type: booking.PhoneDaytime, Number: "09 555 111"},
				{Type: booking.PhoneHome, Number: "09 555 222"},
			},
			want: "Work Phone: 09 555 111  Home Phone: 09 555 222  Mobile Phone: 021 555 333",
		},
		{
			name: "single number has no separator",
			phones: []booking.Phone{
				{Type: booking.PhoneHome, Number: "09 555 222"},
			},
			want: "Home Phone: 09 555 222",
		},
		{
			name: "no numbers",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := booking.Passenger{Phones: tt.phones}
			assert.Equal(t, tt.want, p.ContactLine())
		})
	}
}

func TestTripCities(t *testing.T) {
	t.Parallel()

	t.Run("international trip contributes origin and destination", func(t *testing.T) {
		t.Parallel()

		items := []booking.Item{
			{Type: booking.ItemTicket, OriginCode: "AKL", DestinationCode: "LON", International: true},
			{Type: booking.ItemTicket, OriginCode: "LON", DestinationCode: "AKL", International: true},
		}
		assert.Equal(t, []string{"AKL", "LON"}, booking.TripCities(items))
	})

	t.Run("domestic trip contributes no cities", func(t *testing.T) {
		t.Parallel()

		items := []booking.Item{
			{Type: booking.ItemTicket, OriginCode: "AKL", DestinationCode: "WLG"},
		}
		assert.Nil(t, booking.TripCities(items))
	})

	t.Run("empty item list is domestic", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, booking.TripCities(nil))
		assert.False(t, booking.TripInternational(nil))
	})
}
