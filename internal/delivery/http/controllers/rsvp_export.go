package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"weddingrsvp/internal/domain"
)

const (
	csvTimeLayout = "2006.01.02 15:04"
	utf8BOM       = "\ufeff"
)

var csvHeader = []string{
	"Név",
	"E-mail",
	"Vendégek száma",
	"Ételérzékenység",
	"Kísérők",
	"Szállás",
	"Pizza party",
	"Üzenet",
	"Beküldve",
}

// exportFilename names the download after the export day in loc.
func exportFilename(now time.Time, loc *time.Location) string {
	return "rsvp-export-" + now.In(loc).Format("2006-01-02") + ".csv"
}

// writeRSVPCSV writes the export, prefixed with a UTF-8 BOM.
func writeRSVPCSV(w io.Writer, list []*domain.RSVP, loc *time.Location) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range list {
		if err := cw.Write(csvRecord(r, loc)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRecord(r *domain.RSVP, loc *time.Location) []string {
	accommodation := "Nem"
	if r.NeedsAccommodation {
		accommodation = fmt.Sprintf("Igen (%d éj)", r.AccommodationNights)
	}
	pizza := "Nem"
	if r.StayingForPizzaParty {
		pizza = "Igen"
	}
	return []string{
		csvSafe(r.Name),
		csvSafe(r.Email),
		strconv.Itoa(r.TotalGuests),
		orDash(csvSafe(r.DietaryRestrictions)),
		orDash(csvSafe(guestsText(r.AdditionalGuests))),
		accommodation,
		pizza,
		orDash(csvSafe(r.Message)),
		r.SubmittedAt.In(loc).Format(csvTimeLayout),
	}
}

func guestsText(guests []domain.Guest) string {
	parts := make([]string, 0, len(guests))
	for _, g := range guests {
		diet := g.DietaryRestrictions
		if diet == "" {
			diet = "nincs allergia"
		}
		parts = append(parts, g.Name+" ("+diet+")")
	}
	return strings.Join(parts, "; ")
}

// csvSafe quotes guest text that a spreadsheet would evaluate as a formula.
func csvSafe(s string) string {
	if s != "" && strings.ContainsRune("=+-@\t\r", rune(s[0])) {
		return "'" + s
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
