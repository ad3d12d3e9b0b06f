package booking

import (
	"errors"
	"fmt"
	"strings"
)

// Summary is the per-request aggregate over a booking's passenger list.
// It is computed fresh for every composition and never persisted.
type Summary struct {
	Adults         int
	Children       int
	Infants        int
	NonBooker      int
	NonBookerNames string
}

// Summarize derives passenger counts and the concatenated non-booker name
// list from a passenger list.
func Summarize(passengers []Passenger) Summary {
	var s Summary
	names := make([]string, 0, len(passengers))

	for _, p := range passengers {
		t := PassengerType(strings.TrimSpace(string(p.Type)))
		if !strings.EqualFold(string(t), string(TypeBooker)) {
			names = append(names, p.FullName())
			s.NonBooker++
		}
		switch {
		case strings.EqualFold(string(t), string(TypeAdult)):
			s.Adults++
		case strings.EqualFold(string(t), string(TypeChild)):
			s.Children++
		case strings.EqualFold(string(t), string(TypeInfant)):
			s.Infants++
		}
	}
	s.NonBookerNames = strings.Join(names, ", ")

	return s
}

// Booker returns the passenger holding the Booker type.
// Every booking must carry exactly one; absence is a data integrity failure
// that aborts composition before any send.
func Booker(passengers []Passenger) (Passenger, error) {
	for _, p := range passengers {
		if strings.EqualFold(strings.TrimSpace(string(p.Type)), string(TypeBooker)) {
			return p, nil
		}
	}
	return Passenger{}, ErrNoBooker
}

var (
	// ErrNoBooker indicates a passenger list without a Booker-type passenger.
	ErrNoBooker = errors.New("booking.errors.no_booker_passenger")

	// ErrNotFound indicates a collaborator lookup that returned no record.
	ErrNotFound = errors.New("booking.errors.not_found")
)

// NotFound wraps ErrNotFound with the missing record's identity.
func NotFound(kind string, id int) error {
	return fmt.Errorf("%w: %s for booking %d", ErrNotFound, kind, id)
}
