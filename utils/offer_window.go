package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MalformedTimeError reports a start or end time that could not be
// parsed as a valid HH:MM value.
type MalformedTimeError struct {
	Value string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("malformed time value %q", e.Value)
}

// ParseClock parses an HH:MM string into its hour and minute parts.
func ParseClock(value string) (int, int, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, &MalformedTimeError{Value: value}
	}
	hour, errHour := strconv.Atoi(parts[0])
	minute, errMin := strconv.Atoi(parts[1])
	if errHour != nil || errMin != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, &MalformedTimeError{Value: value}
	}
	return hour, minute, nil
}

// OfferWindow resolves the start and end instants of an offer window
// anchored on createdDate. A window whose end is not after its start
// spans midnight and ends on the following day, so equal start and end
// times describe a full 24-hour window rather than a zero-length one.
func OfferWindow(startTime, endTime string, createdDate time.Time) (time.Time, time.Time, error) {
	startHour, startMin, err := ParseClock(startTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endHour, endMin, err := ParseClock(endTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	start := time.Date(createdDate.Year(), createdDate.Month(), createdDate.Day(),
		startHour, startMin, 0, 0, createdDate.Location())
	end := time.Date(createdDate.Year(), createdDate.Month(), createdDate.Day(),
		endHour, endMin, 0, 0, createdDate.Location())
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}
	return start, end, nil
}

// IsOfferExpired reports whether the offer's window has lapsed at
// instant now. Unparseable time values fail safe: a malformed offer is
// never considered expired, so the sweeper will not delete it.
func IsOfferExpired(startTime, endTime string, createdDate, now time.Time) bool {
	_, end, err := OfferWindow(startTime, endTime, createdDate)
	if err != nil {
		LogError("Could not resolve offer window [%s, %s]: %v", startTime, endTime, err)
		return false
	}
	return now.After(end)
}

// IsOfferActive reports whether instant now falls within the offer's
// window, inclusive on both ends. Malformed offers are never active.
func IsOfferActive(startTime, endTime string, createdDate, now time.Time) bool {
	start, end, err := OfferWindow(startTime, endTime, createdDate)
	if err != nil {
		return false
	}
	return !now.Before(start) && !now.After(end)
}
