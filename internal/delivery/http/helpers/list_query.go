package helpers

import (
	"net/http"
	"strings"

	"weddingrsvp/internal/domain"
)

// ParseRSVPListQuery reads q, sort and order from the query string. Unknown
// sort fields fall back to submittedAt; order defaults to desc.
func ParseRSVPListQuery(r *http.Request) domain.RSVPListQuery {
	v := r.URL.Query()
	q := domain.RSVPListQuery{
		Search: strings.TrimSpace(v.Get("q")),
		SortBy: domain.SortBySubmittedAt,
		Desc:   true,
	}
	switch domain.RSVPSortField(v.Get("sort")) {
	case domain.SortByName:
		q.SortBy = domain.SortByName
	case domain.SortByTotalGuests:
		q.SortBy = domain.SortByTotalGuests
	}
	if strings.EqualFold(v.Get("order"), "asc") {
		q.Desc = false
	}
	return q
}

// BearerToken returns the token of an "Authorization: Bearer <token>" header,
// or "" when the header is missing or malformed.
func BearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
