package services

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// HolidayService answers public-holiday lookups against the Nager.Date
// API, cached per year. Lookup failures degrade to "no holidays" so
// working-day math keeps functioning when the API is down.
type HolidayService struct {
	client  *resty.Client
	country string

	mu    sync.RWMutex
	years map[int]map[string]bool
}

type nagerHoliday struct {
	Date      string `json:"date"`
	LocalName string `json:"localName"`
	Name      string `json:"name"`
}

func NewHolidayService() *HolidayService {
	country := os.Getenv("HOLIDAY_COUNTRY")
	if country == "" {
		country = "ID"
	}
	client := resty.New().
		SetBaseURL("https://date.nager.at/api/v3").
		SetTimeout(10 * time.Second).
		SetRetryCount(2)

	return &HolidayService{
		client:  client,
		country: country,
		years:   make(map[int]map[string]bool),
	}
}

// IsHoliday implements utils.HolidaySource.
func (s *HolidayService) IsHoliday(date time.Time) (bool, error) {
	set, err := s.yearSet(date.Year())
	if err != nil {
		return false, err
	}
	return set[date.Format("2006-01-02")], nil
}

func (s *HolidayService) yearSet(year int) (map[string]bool, error) {
	s.mu.RLock()
	set, ok := s.years[year]
	s.mu.RUnlock()
	if ok {
		return set, nil
	}

	// Fetch without holding the lock; the round-trip can take seconds
	// with retries and must not block concurrent lookups. Racing callers
	// may fetch the same year twice, the first insert wins.
	fetched := s.fetchYear(year)

	s.mu.Lock()
	defer s.mu.Unlock()
	if set, ok := s.years[year]; ok {
		return set, nil
	}
	s.years[year] = fetched
	return fetched, nil
}

func (s *HolidayService) fetchYear(year int) map[string]bool {
	var holidays []nagerHoliday
	resp, err := s.client.R().
		SetResult(&holidays).
		Get(fmt.Sprintf("/PublicHolidays/%d/%s", year, s.country))
	if err != nil || resp.IsError() {
		if err == nil {
			err = fmt.Errorf("holiday api returned %s", resp.Status())
		}
		log.Printf("holiday lookup failed for %d/%s: %v", year, s.country, err)
		// Cache the empty set so a flapping API is not hit per day.
		return map[string]bool{}
	}

	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[h.Date] = true
	}
	return set
}
