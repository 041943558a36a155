package mux

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"president-server/pkg/record"
)

const maxRows = 100
const defaultRows = 25

var (
	errNegativeStart = errors.New("start cannot be less than zero")
	errNoRows        = errors.New("rows must be greater than zero")
	errTooManyRows   = fmt.Errorf("rows cannot be greater than %d", maxRows)
)

// page is a window into a listing, taken from the start and rows query parameters
type page struct {
	start int
	rows  int
}

func parsePage(r *http.Request) (page, error) {
	p := page{rows: defaultRows}

	var err error
	if p.start, err = intParam(r, "start", 0); err != nil {
		return page{}, err
	}

	if p.rows, err = intParam(r, "rows", defaultRows); err != nil {
		return page{}, err
	}

	switch {
	case p.start < 0:
		return page{}, errNegativeStart
	case p.rows <= 0:
		return page{}, errNoRows
	case p.rows > maxRows:
		return page{}, errTooManyRows
	}

	return p, nil
}

func intParam(r *http.Request, key string, fallback int) (int, error) {
	val := r.FormValue(key)
	if val == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", key)
	}

	return n, nil
}

// end is how many items must be fetched to fill the page
func (p page) end() int {
	return p.start + p.rows
}

// bounds returns the slice bounds of the page within n items
func (p page) bounds(n int) (int, int) {
	if p.start >= n {
		return n, n
	}

	if p.end() > n {
		return p.start, n
	}

	return p.start, p.end()
}

func remoteAddr(r *http.Request) string {
	parts := strings.Split(r.RemoteAddr, ":")
	if len(parts) == 1 {
		return parts[0]
	}

	return strings.Join(parts[0:len(parts)-1], ":")
}

func decodeRequest(w http.ResponseWriter, r *http.Request, payload interface{}) bool {
	ct := strings.TrimSpace(strings.Split(r.Header.Get("Content-Type"), ";")[0])
	if ct != "application/json" && ct != "text/json" {
		writeJSONError(w, http.StatusUnsupportedMediaType, nil)
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		writeJSONError(w, http.StatusBadRequest, err)
		return false
	}

	return true
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("could not write JSON response")
	}
}

type errorResponse struct {
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// if err is record.ErrNotFound, treat as 404, otherwise treat as a 500
func writeMaybeNotFoundError(w http.ResponseWriter, err error) {
	if errors.Is(err, record.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, nil)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

func writeJSONError(w http.ResponseWriter, statusCode int, err error) {
	var msg string

	if statusCode < 500 && err != nil {
		msg = err.Error()
	} else {
		msg = http.StatusText(statusCode)
	}

	if statusCode >= 500 {
		logrus.WithField("statusCode", statusCode).Error(err)
	}

	writeJSON(w, statusCode, errorResponse{
		Message:    msg,
		StatusCode: statusCode,
	})
}
