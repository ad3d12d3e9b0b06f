package compose

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/travelmail/pkg/booking"
	"github.com/dmitrymomot/travelmail/pkg/template"
)

// LocationNamer resolves an airport or city code to its display name.
type LocationNamer interface {
	LocationName(code string) string
}

// LocationNamerFunc adapts a plain function to LocationNamer.
type LocationNamerFunc func(code string) string

func (f LocationNamerFunc) LocationName(code string) string { return f(code) }

// Composer assembles the item sections of a notification body.
type Composer struct {
	locations LocationNamer
}

// New creates a Composer. A nil LocationNamer falls back to raw codes.
func New(locations LocationNamer) *Composer {
	if locations == nil {
		locations = LocationNamerFunc(func(code string) string { return code })
	}
	return &Composer{locations: locations}
}

// ItemSections composes the body between the flow intro and the grand
// total: flights, passenger prices, tax/insurance, accommodation and
// transfers, and - when withDiscounts is set - the discount lines.
func (c *Composer) ItemSections(tpl template.Sections, bk booking.Booking, items []booking.Item, sum booking.Summary, withDiscounts bool) string {
	var b strings.Builder

	totals := c.flightsSection(&b, tpl, items)
	adultsSection(&b, tpl, totals.adultUnit, sum)
	childrenAndInfants(&b, tpl, totals.childUnit, totals.infantUnit, sum)
	taxAndInsurance(&b, tpl, bk, totals.flight)
	hotelsAndTransfers(&b, tpl, items, sum, totals.depart, totals.ret)
	if withDiscounts {
		discounts(&b, tpl, items)
	}

	return b.String()
}

// flightTotals carries the accumulators of the flights pass into the later
// sections.
type flightTotals struct {
	flight     float64
	adultUnit  float64
	childUnit  float64
	infantUnit float64
	depart     time.Time
	ret        time.Time
}

// flightsSection emits one flights fragment per ticket item in input order,
// then the flights-end fragment regardless of ticket count. The first
// ticket's begin date becomes the depart date; every later ticket
// overwrites the return date, so the last one wins.
func (c *Composer) flightsSection(b *strings.Builder, tpl template.Sections, items []booking.Item) flightTotals {
	var totals flightTotals

	count := 0
	for _, item := range items {
		if item.Type != booking.ItemTicket {
			continue
		}

		totals.adultUnit += item.AdultPrice
		totals.childUnit += item.ChildPrice
		totals.infantUnit += item.InfantPrice
		totals.flight += item.Total

		if count == 0 {
			totals.depart = dateOnly(item.BeginDate)
		} else {
			totals.ret = dateOnly(item.BeginDate)
		}
		count++

		b.WriteString(template.Fill(tpl.Flights,
			"AIRLINE_NAME_HERE", item.Airline,
			"DEPART_HERE", c.locations.LocationName(item.OriginCode),
			"ARRIVE_HERE", c.locations.LocationName(item.DestinationCode),
			"VIA_HERE", item.Via,
			"FARE_TYPE_HERE", item.FareType,
			"DEPART_DATE_HERE", DayMonth(item.BeginDate),
			"DEPART_TIME_HERE", ClockTime(item.BeginDate),
			"ARRIVE_DATE_HERE", DayMonth(item.EndDate),
			"ARRIVE_TIME_HERE", ClockTime(item.EndDate),
		))
	}

	b.WriteString(tpl.FlightsEnd)

	return totals
}

// adultsSection is always emitted; the unit price is the accumulated adult
// subtotal, the total multiplies it by the adult count.
func adultsSection(b *strings.Builder, tpl template.Sections, adultUnit float64, sum booking.Summary) {
	fragment := template.Fill(tpl.Adult,
		"ADULT_NO_HERE", strconv.Itoa(sum.Adults),
		"ADULT_PRICE_HERE", Currency(adultUnit),
		"ADULT_TOTAL_HERE", Currency(adultUnit*float64(sum.Adults)),
	)
	if sum.Adults > 1 {
		fragment = strings.ReplaceAll(fragment, "Adult", "Adults")
	}
	b.WriteString(fragment)
}

// childrenAndInfants emits the child and infant fragments only when the
// respective count is above zero.
func childrenAndInfants(b *strings.Builder, tpl template.Sections, childUnit, infantUnit float64, sum booking.Summary) {
	if sum.Children > 0 {
		fragment := template.Fill(tpl.Child,
			"CHILD_NO_HERE", strconv.Itoa(sum.Children),
			"CHILD_PRICE_HERE", Currency(childUnit),
			"CHILD_TOTAL_HERE", Currency(childUnit*float64(sum.Children)),
		)
		if sum.Children > 1 {
			fragment = strings.ReplaceAll(fragment, "Child", "Children")
		}
		b.WriteString(fragment)
	}

	if sum.Infants > 0 {
		fragment := template.Fill(tpl.Infant,
			"INFANT_NO_HERE", strconv.Itoa(sum.Infants),
			"INFANT_PRICE_HERE", Currency(infantUnit),
			"INFANT_TOTAL_HERE", Currency(infantUnit*float64(sum.Infants)),
		)
		if sum.Infants > 1 {
			fragment = strings.ReplaceAll(fragment, "Infant", "Infants")
		}
		b.WriteString(fragment)
	}
}

// taxAndInsurance emits the tax fragment only when the booking carries tax,
// the flight total always, and the insurance fragment only when insurance
// was purchased.
func taxAndInsurance(b *strings.Builder, tpl template.Sections, bk booking.Booking, flightTotal float64) {
	if bk.TotalTax > 0 {
		b.WriteString(template.Fill(tpl.Tax, "TAX_TOTAL_HERE", Currency(bk.TotalTax)))
	}

	b.WriteString(template.Fill(tpl.FlightTotal, "FLIGHTS_TOTAL_HERE", Currency(flightTotal)))

	if bk.TotalInsurance > 0 {
		b.WriteString(template.Fill(tpl.Insurance, "TOTAL_INSURANCE_HERE", Currency(bk.TotalInsurance)))
	}
}

// hotelsAndTransfers emits one fragment per hotel and transfer item.
// Nights span the whole days between depart and return dates. The transfer
// per-person price divides the line total by adults plus children; with no
// participants it renders as zero rather than dividing.
func hotelsAndTransfers(b *strings.Builder, tpl template.Sections, items []booking.Item, sum booking.Summary, depart, ret time.Time) {
	for _, item := range items {
		switch item.Type {
		case booking.ItemHotel:
			nights := int(ret.Sub(depart) / (24 * time.Hour))
			b.WriteString(template.Fill(tpl.Accommodation,
				"HOTEL_NAME_HERE", item.HotelName,
				"ROOM_TYPE_HERE", item.RoomType,
				"NIGHTS_HERE", strconv.Itoa(nights),
				"TOTAL_ACCOMMODATION_HERE", Currency(item.Total),
			))
		case booking.ItemTransfer:
			people := sum.Adults + sum.Children
			perPerson := 0.0
			if people > 0 {
				perPerson = item.Total / float64(people)
			}
			b.WriteString(template.Fill(tpl.Transfer,
				"TRANSFER_NAME_HERE", item.Vendor,
				"TOTAL_TRANSFER_HERE", Currency(item.Total),
				"TRANSFER_NO_HERE", strconv.Itoa(people),
				"TRANSFER_PRICE_HERE", Currency(perPerson),
			))
		}
	}
}

// discounts emits one fragment per discount item, showing the negated
// amount.
func discounts(b *strings.Builder, tpl template.Sections, items []booking.Item) {
	for _, item := range items {
		if item.Type != booking.ItemDiscount {
			continue
		}
		b.WriteString(template.Fill(tpl.Discount, "DISCOUNT_TOTAL_HERE", "-"+Currency(item.Total)))
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
