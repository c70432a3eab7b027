package services

import (
	"fmt"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

var hungarianMonths = [...]string{
	"január", "február", "március", "április", "május", "június",
	"július", "augusztus", "szeptember", "október", "november", "december",
}

// FormatHungarianDate formats t as "2026. május 7.".
func FormatHungarianDate(t time.Time) string {
	return fmt.Sprintf("%d. %s %d.", t.Year(), hungarianMonths[t.Month()-1], t.Day())
}

// FormatHungarianDateTime formats t as "2026. május 7. 15:00".
func FormatHungarianDateTime(t time.Time) string {
	return FormatHungarianDate(t) + " " + t.Format("15:04")
}

func yesNo(v bool) string {
	if v {
		return "Igen"
	}
	return "Nem"
}

func accommodationText(r *domain.RSVP) string {
	if !r.NeedsAccommodation {
		return "Nem"
	}
	return fmt.Sprintf("Igen, %d éjszakára", r.AccommodationNights)
}

func venueText(ev domain.EventDetails) string {
	parts := make([]string, 0, 2)
	if ev.VenueName != "" {
		parts = append(parts, ev.VenueName)
	}
	if ev.VenueAddress != "" {
		parts = append(parts, ev.VenueAddress)
	}
	return strings.Join(parts, ", ")
}

// BuildConfirmationEmail derives the localized email fields for r.
func BuildConfirmationEmail(r *domain.RSVP, ev domain.EventDetails) *domain.RSVPConfirmationEmailData {
	total := r.TotalGuests
	if total <= 0 {
		total = 1
	}
	data := &domain.RSVPConfirmationEmailData{
		Email:               r.Email,
		Name:                r.Name,
		TotalGuests:         total,
		AccommodationText:   accommodationText(r),
		PizzaPartyText:      yesNo(r.StayingForPizzaParty),
		DietaryRestrictions: r.DietaryRestrictions,
		CoupleNames:         ev.CoupleNames,
		VenueText:           venueText(ev),
	}
	if !ev.Date.IsZero() {
		data.EventDateText = FormatHungarianDate(ev.Date)
	}
	return data
}
