package itinerary

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/travelmail/pkg/booking"
	"github.com/dmitrymomot/travelmail/pkg/logger"
	"github.com/dmitrymomot/travelmail/pkg/outlet"
	"github.com/dmitrymomot/travelmail/pkg/template"
)

// confirmationFooter fills the footer's outlet contact tokens. The brand's
// associated-outlet block runs before the standard outlet substitution;
// unresolvable tokens are cleared so no placeholder ever reaches a
// customer.
func (p *Pipeline) confirmationFooter(ctx context.Context, bk booking.Booking, footer string) string {
	if footer == "" {
		return footer
	}

	if code := strings.TrimSpace(bk.OutletRef); code != "" {
		if p.policy.AssociatedOutletFooter {
			footer = p.associatedOutletBlock(ctx, bk.PreferredAssociatedOutlet, footer)
		} else {
			footer = clearAssociatedTokens(footer)
		}

		o, err := p.outlets.Outlet(ctx, code)
		if err != nil {
			p.log.LogAttrs(ctx, slog.LevelWarn, "Failed to resolve outlet for confirmation footer",
				logger.BookingID(bk.ID),
				slog.String("outlet_code", code),
				logger.Error(err),
			)
			footer = clearOutletTokens(footer)
		} else {
			footer = fillOutletTokens(footer, o)
		}
	}

	itineraryID := strconv.Itoa(bk.ID)
	if bk.ID <= 0 {
		itineraryID = uuid.NewString()[:6]
	}
	return strings.ReplaceAll(footer, "[ITINERARYID]", itineraryID)
}

func fillOutletTokens(footer string, o outlet.Outlet) string {
	primary, hasPrimary := o.Phone(outlet.PhonePrimary)
	secondary, hasSecondary := o.Phone(outlet.PhoneSecondary)

	var phone, phoneList, phoneList2 string
	if len(o.Phones) > 1 {
		// Multiple numbers: primary and secondary render as their own
		// lines with distinct separators; the single-phone token clears.
		if hasPrimary {
			if hasSecondary {
				phoneList = "<br>Ph " + primary + ", or<br>"
			} else {
				phoneList = "<br>Ph " + primary + "<br>"
			}
		}
		if hasSecondary {
			phoneList2 = "Ph " + secondary + "<br>"
		}
	} else if hasPrimary {
		phone = "Ph " + primary
	}

	return template.Fill(footer,
		"[OutletName]", o.Name+"<br>",
		"[OutletAddress]", strings.Join(o.AddressLines, ", ")+"<br>",
		"[OutletPOBox]", "P.O. Box "+o.POBox+"<br>",
		"[OutletCity]", o.City+"<br>",
		"[OutletPhone]", phone,
		"[OutletPhones]", phoneList,
		"[OutletPhones2]", phoneList2,
		"[OutletHours]", o.HoursOfBusiness+"<br>",
		"[OutletEmail]", o.Email,
	)
}

func clearOutletTokens(footer string) string {
	return template.Fill(footer,
		"[OutletName]", "",
		"[OutletAddress]", "",
		"[OutletPOBox]", "",
		"[OutletCity]", "",
		"[OutletPhone]", "",
		"[OutletPhones]", "",
		"[OutletPhones2]", "",
		"[OutletHours]", "",
		"[OutletEmail]", "",
	)
}

// associatedOutletBlock fills the associated-outlet footer tokens from the
// booking's preferred associated outlet. With no preference set, or when
// the lookup misses, the tokens clear.
func (p *Pipeline) associatedOutletBlock(ctx context.Context, preferredOutlet, footer string) string {
	if preferredOutlet = strings.TrimSpace(preferredOutlet); preferredOutlet == "" {
		return clearAssociatedTokens(footer)
	}

	o, err := p.outlets.Outlet(ctx, preferredOutlet)
	if err != nil {
		p.log.LogAttrs(ctx, slog.LevelWarn, "Failed to resolve associated outlet",
			slog.String("outlet_code", preferredOutlet),
			logger.Error(err),
		)
		return clearAssociatedTokens(footer)
	}

	primary, hasPrimary := o.Phone(outlet.PhonePrimary)
	secondary, hasSecondary := o.Phone(outlet.PhoneSecondary)

	var phone, phone2 string
	if hasPrimary {
		if hasSecondary {
			phone = "<br>Ph " + primary + ", or<br>"
		} else {
			phone = "<br>Ph " + primary
		}
	}
	if hasSecondary {
		phone2 = "Ph " + secondary + "<br>"
	}

	return template.Fill(footer,
		"[AssociatedOutletName]", o.Name+"<br>",
		"[AssociatedOutletPhone]", phone,
		"[AssociatedOutletPhone2]", phone2,
		"[AssociatedOutletEmail]", o.Email,
		"[AssociatedOutletHours]", o.HoursOfBusiness+"<br>",
	)
}

func clearAssociatedTokens(footer string) string {
	return template.Fill(footer,
		"[AssociatedOutletName]", "",
		"[AssociatedOutletPhone]", "",
		"[AssociatedOutletPhone2]", "",
		"[AssociatedOutletEmail]", "",
		"[AssociatedOutletHours]", "",
	)
}
