package booking

import (
	"strings"
	"time"
)

// ItemType identifies what a booking line item represents.
type ItemType string

const (
	ItemTicket   ItemType = "Ticket"
	ItemHotel    ItemType = "Hotel"
	ItemTransfer ItemType = "Transfer"
	ItemDiscount ItemType = "Discount"
)

// PassengerType classifies a passenger on a booking.
// Exactly one passenger per booking carries the Booker type.
type PassengerType string

const (
	TypeBooker PassengerType = "Booker"
	TypeAdult  PassengerType = "Adult"
	TypeChild  PassengerType = "Child"
	TypeInfant PassengerType = "Infant"
)

// PhoneType classifies a passenger contact number.
type PhoneType string

const (
	PhoneDaytime  PhoneType = "Daytime"
	PhoneHome     PhoneType = "Home"
	PhoneCellular PhoneType = "Cellular"
)

// Booking is the header record for one travel booking.
type Booking struct {
	ID                        int
	Total                     float64
	TotalTax                  float64
	TotalInsurance            float64
	Agent                     string // non-empty when a human agent handled the booking
	OutletRef                 string
	Region                    string
	PreferredAssociatedOutlet string
}

// Item is a single line on a booking: a flight ticket, hotel stay,
// transfer or discount. Price fields are per passenger type for tickets;
// Total is the line total.
type Item struct {
	Type            ItemType
	Airline         string
	OriginCode      string
	DestinationCode string
	Via             string
	FareType        string
	BeginDate       time.Time
	EndDate         time.Time
	AdultPrice      float64
	ChildPrice      float64
	InfantPrice     float64
	Total           float64
	Vendor          string
	HotelName       string
	RoomType        string
	International   bool
}

// Phone is a typed passenger contact number.
type Phone struct {
	Type   PhoneType
	Number string
}

// Passenger is one traveller (or the booker) attached to a booking.
type Passenger struct {
	Type      PassengerType
	Title     string
	FirstName string
	Surname   string
	Email     string
	Phones    []Phone
	Addresses []string
}

// Fault is one upstream error recorded against a booking, keyed by the
// vendor that produced it.
type Fault struct {
	Vendor  string
	Message string
}

// FullName returns the passenger's display name.
func (p Passenger) FullName() string {
	return strings.TrimSpace(strings.Join([]string{p.Title, p.FirstName, p.Surname}, " "))
}

// Phone returns the first number of the given type.
func (p Passenger) Phone(t PhoneType) (string, bool) {
	for _, ph := range p.Phones {
		if ph.Type == t {
			return ph.Number, true
		}
	}
	return "", false
}

// ContactLine renders the booker's phone numbers as a single labelled line,
// in Daytime/Home/Cellular order, skipping absent numbers.
func (p Passenger) ContactLine() string {
	var b strings.Builder
	if n, ok := p.Phone(PhoneDaytime); ok {
		b.WriteString("Work Phone: " + n)
	}
	if n, ok := p.Phone(PhoneHome); ok {
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString("Home Phone: " + n)
	}
	if n, ok := p.Phone(PhoneCellular); ok {
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString("Mobile Phone: " + n)
	}
	return b.String()
}

// TripInternational reports whether the trip is international. The flag is
// carried on the first item; an empty item list is treated as domestic.
func TripInternational(items []Item) bool {
	if len(items) == 0 {
		return false
	}
	return items[0].International
}

// TripCities returns the origin and destination codes that participate in
// attachment rule matching. Domestic trips contribute no cities regardless
// of their origin and destination codes.
func TripCities(items []Item) []string {
	if !TripInternational(items) {
		return nil
	}
	var cities []string
	if c := items[0].OriginCode; c != "" {
		cities = append(cities, c)
	}
	if c := items[0].DestinationCode; c != "" {
		cities = append(cities, c)
	}
	return cities
}
