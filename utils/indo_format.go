package utils

import (
	"strconv"
	"time"
)

var indoMonths = []string{
	"Januari",
	"Februari",
	"Maret",
	"April",
	"Mei",
	"Juni",
	"Juli",
	"Agustus",
	"September",
	"Oktober",
	"November",
	"Desember",
}

// FormatIndoDate returns the date with the Indonesian month name, as
// printed on certificates and letters.
func FormatIndoDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	localTime := t.In(time.Local)
	monthIndex := int(localTime.Month()) - 1
	if monthIndex < 0 || monthIndex >= len(indoMonths) {
		return localTime.Format("02/01/2006")
	}

	return strconv.Itoa(localTime.Day()) + " " + indoMonths[monthIndex] + " " + strconv.Itoa(localTime.Year())
}

// FormatIndoDatePtr returns the formatted date for pointer values.
func FormatIndoDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatIndoDate(*t)
}
