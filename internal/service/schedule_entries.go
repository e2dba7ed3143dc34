package service

import (
	"log/slog"
	"strings"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/policy"
)

type ScheduleEntryInput struct {
	Topic   string `validate:"required,max=200" label:"Tema"`
	Speaker string `validate:"required,max=100" label:"Pemateri"`
	Venue   string `validate:"required,max=200" label:"Tempat"`
	Date    string `validate:"required" label:"Tanggal"`
	Time    string `validate:"required" label:"Waktu"`
}

func (s *Service) scheduleEntryFromInput(input ScheduleEntryInput) (*domain.ScheduleEntry, error) {
	input.Topic = strings.TrimSpace(input.Topic)
	input.Speaker = strings.TrimSpace(input.Speaker)
	input.Venue = strings.TrimSpace(input.Venue)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)

	if err := s.validateStruct(input); err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, invalid("Tanggal", err.Error())
	}
	clock, err := domain.ParseClock(input.Time)
	if err != nil {
		return nil, invalid("Waktu", err.Error())
	}

	return &domain.ScheduleEntry{
		Topic:   input.Topic,
		Speaker: input.Speaker,
		Venue:   input.Venue,
		Date:    date,
		Time:    clock,
	}, nil
}

func (s *Service) ListScheduleEntries(session *domain.Session) ([]*domain.ScheduleEntry, error) {
	if err := policy.Authorize(session, policy.ScheduleRead); err != nil {
		return nil, err
	}

	return s.repository.GetAllScheduleEntries()
}

// SearchScheduleEntries mencari berdasarkan tema, pemateri atau tempat. Kata
// kunci kosong mengembalikan semua jadwal.
func (s *Service) SearchScheduleEntries(session *domain.Session, term string) ([]*domain.ScheduleEntry, error) {
	if err := policy.Authorize(session, policy.ScheduleRead); err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return s.repository.GetAllScheduleEntries()
	}

	return s.repository.SearchScheduleEntries(term)
}

func (s *Service) GetScheduleEntry(session *domain.Session, id int64) (*domain.ScheduleEntry, error) {
	if err := policy.Authorize(session, policy.ScheduleRead); err != nil {
		return nil, err
	}

	return s.repository.GetScheduleEntryByID(id)
}

func (s *Service) CreateScheduleEntry(session *domain.Session, input ScheduleEntryInput) (*domain.ScheduleEntry, error) {
	if err := policy.Authorize(session, policy.ScheduleCreate); err != nil {
		return nil, err
	}

	entry, err := s.scheduleEntryFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := s.repository.CreateScheduleEntry(entry); err != nil {
		return nil, err
	}

	slog.Info("jadwal kajian ditambahkan", "by", session.Account.Username, "id", entry.ID)
	return entry, nil
}

func (s *Service) UpdateScheduleEntry(session *domain.Session, id int64, input ScheduleEntryInput) (*domain.ScheduleEntry, error) {
	if err := policy.Authorize(session, policy.ScheduleUpdate); err != nil {
		return nil, err
	}

	entry, err := s.scheduleEntryFromInput(input)
	if err != nil {
		return nil, err
	}
	entry.ID = id

	if err := s.repository.UpdateScheduleEntry(entry); err != nil {
		return nil, err
	}

	slog.Info("jadwal kajian diubah", "by", session.Account.Username, "id", id)
	return entry, nil
}

func (s *Service) DeleteScheduleEntry(session *domain.Session, id int64) error {
	if err := policy.Authorize(session, policy.ScheduleDelete); err != nil {
		return err
	}

	if err := s.repository.DeleteScheduleEntry(id); err != nil {
		return err
	}

	slog.Info("jadwal kajian dihapus", "by", session.Account.Username, "id", id)
	return nil
}
