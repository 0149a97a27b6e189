package prayer

import (
	"errors"
	"time"
)

var (
	// ErrNotFound indicates no schedule exists for the requested day.
	ErrNotFound = errors.New("prayer schedule not found")
)

// Schedule holds the five daily prayer times for one date at one location.
// Times are stored as local wall-clock strings ("HH:MM"); the azan player on
// the client interprets them in the location's timezone.
type Schedule struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Location  string    `json:"location"`
	Fajr      string    `json:"fajr"`
	Dhuhr     string    `json:"dhuhr"`
	Asr       string    `json:"asr"`
	Maghrib   string    `json:"maghrib"`
	Isha      string    `json:"isha"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
