// Package handlers translates the HTTP surface into store and billing calls.
// Every protected handler reads the authenticated user id from the request
// context and passes it down as the owner; handlers never query unscoped.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/edualcrd/invoicemaker/internal/httpx"
	"github.com/edualcrd/invoicemaker/internal/store"
	"go.uber.org/zap"
)

// dateFormats accepted for date fields: the SPA's <input type="date"> value
// first, full RFC 3339 as a fallback.
var dateFormats = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateFormats {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// pathID parses the :id segment. Non-numeric ids behave like ids that do not
// exist.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// writeStoreError maps persistence outcomes to responses: a missing or
// foreign-owned row is a plain 404, anything else a generic 500. Internals
// are logged, never returned to the caller.
func writeStoreError(w http.ResponseWriter, log *zap.SugaredLogger, op string, err error) {
	if errors.Is(err, store.ErrNotFound) {
		httpx.JSONError(w, http.StatusNotFound, "not found", nil)
		return
	}
	log.Errorw(op+" failed", "err", err)
	httpx.JSONError(w, http.StatusInternalServerError, "internal error", nil)
}
