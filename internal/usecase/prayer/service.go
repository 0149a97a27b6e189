package prayer

import (
	"context"
	"fmt"
	"strings"
	"time"

	authdomain "tijaniyah/backend/internal/domain/auth"
	domain "tijaniyah/backend/internal/domain/prayer"

	"github.com/google/uuid"
)

// DefaultLocation is used when clients do not name one.
const DefaultLocation = "default"

const maxListDays = 31

// Service encapsulates prayer-schedule use cases. Reads are public; the azan
// player polls upcoming days, while admins upsert the timetable.
type Service struct {
	repo    domain.Repository
	nowFunc func() time.Time
}

// NewService constructs a prayer service.
func NewService(repo domain.Repository) *Service {
	return &Service{
		repo:    repo,
		nowFunc: time.Now,
	}
}

// UpsertInput contains one day's timetable.
type UpsertInput struct {
	Date     string `json:"date"`
	Location string `json:"location"`
	Fajr     string `json:"fajr"`
	Dhuhr    string `json:"dhuhr"`
	Asr      string `json:"asr"`
	Maghrib  string `json:"maghrib"`
	Isha     string `json:"isha"`
}

// Upsert validates and stores the timetable for one day, replacing any
// existing row for the same (date, location).
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (*domain.Schedule, error) {
	date := strings.TrimSpace(input.Date)
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", authdomain.ErrInvalidInput)
	}

	location := strings.TrimSpace(strings.ToLower(input.Location))
	if location == "" {
		location = DefaultLocation
	}

	times := map[string]string{
		"fajr":    input.Fajr,
		"dhuhr":   input.Dhuhr,
		"asr":     input.Asr,
		"maghrib": input.Maghrib,
		"isha":    input.Isha,
	}
	for name, value := range times {
		value = strings.TrimSpace(value)
		if _, err := time.Parse("15:04", value); err != nil {
			return nil, fmt.Errorf("%w: %s must be HH:MM", authdomain.ErrInvalidInput, name)
		}
		times[name] = value
	}

	now := s.nowFunc().UTC()
	schedule := &domain.Schedule{
		ID:        uuid.NewString(),
		Date:      date,
		Location:  location,
		Fajr:      times["fajr"],
		Dhuhr:     times["dhuhr"],
		Asr:       times["asr"],
		Maghrib:   times["maghrib"],
		Isha:      times["isha"],
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Upsert(ctx, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Today returns the schedule for the current date.
func (s *Service) Today(ctx context.Context, location string) (*domain.Schedule, error) {
	location = strings.TrimSpace(strings.ToLower(location))
	if location == "" {
		location = DefaultLocation
	}
	today := s.nowFunc().UTC().Format("2006-01-02")
	return s.repo.Get(ctx, today, location)
}

// Upcoming returns schedules for the next days, starting today. days is
// clamped to a sane window.
func (s *Service) Upcoming(ctx context.Context, location string, days int) ([]*domain.Schedule, error) {
	location = strings.TrimSpace(strings.ToLower(location))
	if location == "" {
		location = DefaultLocation
	}
	if days < 1 {
		days = 7
	}
	if days > maxListDays {
		days = maxListDays
	}
	today := s.nowFunc().UTC().Format("2006-01-02")
	return s.repo.ListFrom(ctx, location, today, days)
}
