package utils

import (
	"math/rand"
	"strings"
	"time"

	"github.com/db-agama/kajian-manager/internal/domain"
)

var commonFirstNames = []string{
	"Ahmad", "Muhammad", "Abdullah", "Fauzan", "Hasan", "Husain", "Umar", "Ali",
	"Yusuf", "Ibrahim", "Ismail", "Hamzah", "Bilal", "Zaid", "Salman", "Rizki",
	"Fatimah", "Aisyah", "Khadijah", "Maryam", "Zainab", "Nur", "Siti", "Hafsah",
}
var commonLastNames = []string{
	"Hidayat", "Saputra", "Nugroho", "Pratama", "Setiawan", "Wibowo", "Kurniawan",
	"Ramadhan", "Syahputra", "Firmansyah", "Hakim", "Rahman", "Lestari", "Rahmawati",
}

func GenerateRandomName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var digits = "0123456789"

// GenerateUsernameFromName membentuk username dari nama depan ditambah
// beberapa digit acak, mis. "Ahmad Hidayat" menjadi "ahmad42".
func GenerateUsernameFromName(name string) string {
	username := strings.ToLower(strings.Fields(name)[0])

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		username += string(digits[rand.Intn(len(digits))])
	}

	return username
}

var topics = []string{
	"Tafsir Juz Amma", "Kitab Riyadhus Shalihin", "Fiqih Shalat", "Fiqih Puasa",
	"Sirah Nabawiyah", "Aqidah Wasithiyah", "Bulughul Maram", "Tazkiyatun Nafs",
	"Adab Penuntut Ilmu", "Tahsin Al-Quran", "Hadits Arbain", "Fiqih Muamalah",
}
var venues = []string{
	"Masjid Raya", "Masjid Al-Ikhlas", "Masjid Nurul Huda", "Musholla At-Taqwa",
	"Aula Kampus", "Masjid Baitussalam",
}

// jam kajian yang umum: ba'da subuh, pagi, sore dan ba'da maghrib
var clocks = []domain.Clock{
	"05:30:00", "07:00:00", "09:00:00", "16:00:00", "18:30:00", "19:30:00",
}

// GenerateRandomScheduleEntry membuat jadwal acak dalam 60 hari ke depan.
func GenerateRandomScheduleEntry() *domain.ScheduleEntry {
	day := time.Now().AddDate(0, 0, rand.Intn(60))

	return &domain.ScheduleEntry{
		Topic:   topics[rand.Intn(len(topics))],
		Speaker: "Ust. " + GenerateRandomName(),
		Venue:   venues[rand.Intn(len(venues))],
		Date:    domain.NewDate(day.Year(), day.Month(), day.Day()),
		Time:    clocks[rand.Intn(len(clocks))],
	}
}
