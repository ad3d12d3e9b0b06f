package outlet

import (
	"context"
	"errors"
	"strings"
)

// PhoneType classifies an outlet contact number.
type PhoneType string

const (
	PhonePrimary   PhoneType = "Primary"
	PhoneSecondary PhoneType = "Secondary"
)

// Phone is a typed outlet contact number.
type Phone struct {
	Type   PhoneType
	Number string
}

// Outlet is one retail branch.
type Outlet struct {
	Code            string
	Name            string
	AddressLines    []string
	POBox           string
	City            string
	Phones          []Phone
	HoursOfBusiness string
	Email           string
}

// Phone returns the first number of the given type.
func (o Outlet) Phone(t PhoneType) (string, bool) {
	for _, p := range o.Phones {
		if strings.EqualFold(string(p.Type), string(t)) {
			return p.Number, true
		}
	}
	return "", false
}

// Directory resolves outlets by code. Implementations live outside this
// module.
type Directory interface {
	Outlet(ctx context.Context, code string) (Outlet, error)
}

// ErrNotFound indicates an outlet code with no record behind it.
var ErrNotFound = errors.New("outlet.errors.not_found")
