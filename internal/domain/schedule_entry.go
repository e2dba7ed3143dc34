package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

type ScheduleEntry struct {
	ID      int64  `db:"id" json:"id"`
	Topic   string `db:"topic" json:"topic"`
	Speaker string `db:"speaker" json:"speaker"`
	Venue   string `db:"venue" json:"venue"`
	Date    Date   `db:"date" json:"date"`
	Time    Clock  `db:"time" json:"time"`
}

// Date adalah tanggal kalender tanpa komponen jam.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("format tanggal harus YYYY-MM-DD: %q", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MarshalJSON menutupi method milik time.Time agar hasilnya "YYYY-MM-DD".
// Tanggal kosong menjadi null.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	return d.UnmarshalText([]byte(strings.Trim(string(data), `"`)))
}

// UnmarshalText menerima teks kosong sebagai tanggal kosong.
func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Scan menerima time.Time (kolom DATE postgres) maupun teks (sqlite).
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = Date{}
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
	case string:
		return d.scanText(v)
	case []byte:
		return d.scanText(string(v))
	default:
		return fmt.Errorf("tidak dapat membaca tanggal dari %T", src)
	}
	return nil
}

func (d *Date) scanText(s string) error {
	// sebagian driver mengembalikan tanggal lengkap dengan jam
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Clock adalah jam dalam format HH:MM:SS.
type Clock string

func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ClockLayout, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Clock(t.Format(ClockLayout)), nil
		}
	}
	return "", fmt.Errorf("format waktu harus HH:MM atau HH:MM:SS: %q", s)
}

func (c Clock) String() string {
	return string(c)
}

func (c *Clock) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*c = ""
		return nil
	case time.Time:
		*c = Clock(v.Format(ClockLayout))
		return nil
	case string:
		return c.scanText(v)
	case []byte:
		return c.scanText(string(v))
	default:
		return fmt.Errorf("tidak dapat membaca waktu dari %T", src)
	}
}

func (c *Clock) scanText(s string) error {
	// postgres dapat mengembalikan pecahan detik, mis. 07:00:00.000000
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
