package service

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/policy"
)

var csvHeader = []string{"id", "topic", "speaker", "venue", "date", "time"}

// ExportScheduleEntries menulis semua jadwal ke w dalam format CSV dan
// mengembalikan jumlah baris data yang ditulis.
func (s *Service) ExportScheduleEntries(session *domain.Session, w io.Writer) (int, error) {
	entries, err := s.ListScheduleEntries(session)
	if err != nil {
		return 0, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(csvHeader); err != nil {
		return 0, err
	}

	for _, entry := range entries {
		record := []string{
			strconv.FormatInt(entry.ID, 10),
			entry.Topic,
			entry.Speaker,
			entry.Venue,
			entry.Date.String(),
			entry.Time.String(),
		}
		if err := writer.Write(record); err != nil {
			return 0, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return 0, err
	}

	return len(entries), nil
}

// ImportScheduleEntries membaca CSV dengan format yang sama seperti hasil
// ekspor. Kolom id diabaikan. Proses berhenti pada baris pertama yang gagal;
// baris sebelumnya tetap tersimpan.
func (s *Service) ImportScheduleEntries(session *domain.Session, r io.Reader) (int, error) {
	if err := policy.Authorize(session, policy.ScheduleCreate); err != nil {
		return 0, err
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	// membaca header
	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, errors.New("file CSV kosong")
		}
		return 0, err
	}

	columns := make(map[string]int, len(headers))
	for i, header := range headers {
		columns[header] = i
	}
	for _, name := range csvHeader[1:] {
		if _, ok := columns[name]; !ok {
			return 0, fmt.Errorf("kolom %q tidak ditemukan pada header", name)
		}
	}

	count := 0
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return count, err
		}
		line, _ := reader.FieldPos(0)

		input := ScheduleEntryInput{
			Topic:   row[columns["topic"]],
			Speaker: row[columns["speaker"]],
			Venue:   row[columns["venue"]],
			Date:    row[columns["date"]],
			Time:    row[columns["time"]],
		}
		if _, err := s.CreateScheduleEntry(session, input); err != nil {
			return count, fmt.Errorf("baris %d: %w", line, err)
		}
		count++
	}

	return count, nil
}
