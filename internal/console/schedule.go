package console

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/service"
)

func (c *Console) schedule(args []string) {
	if len(args) == 0 {
		c.printf("Gunakan: kajian list|search|add|edit|delete|export|import\n")
		return
	}

	var err error
	switch args[0] {
	case "list":
		err = c.listScheduleEntries()
	case "search":
		err = c.searchScheduleEntries(strings.Join(args[1:], " "))
	case "add":
		err = c.addScheduleEntry()
	case "edit":
		err = c.editScheduleEntry(args[1:])
	case "delete":
		err = c.deleteScheduleEntry(args[1:])
	case "export":
		err = c.exportScheduleEntries(args[1:])
	case "import":
		err = c.importScheduleEntries(args[1:])
	default:
		c.printf("Perintah kajian tidak dikenal: %s\n", args[0])
		return
	}

	if err != nil {
		c.printError(err)
	}
}

func (c *Console) printScheduleEntries(entries []*domain.ScheduleEntry) {
	if len(entries) == 0 {
		c.printf("Tidak ada jadwal.\n")
		return
	}

	w := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTANGGAL\tWAKTU\tTEMA\tPEMATERI\tTEMPAT")
	for _, entry := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", entry.ID, entry.Date, entry.Time, entry.Topic, entry.Speaker, entry.Venue)
	}
	w.Flush()
}

func (c *Console) listScheduleEntries() error {
	entries, err := c.service.ListScheduleEntries(c.session)
	if err != nil {
		return err
	}

	c.printScheduleEntries(entries)
	return nil
}

func (c *Console) searchScheduleEntries(term string) error {
	entries, err := c.service.SearchScheduleEntries(c.session, term)
	if err != nil {
		return err
	}

	c.printScheduleEntries(entries)
	return nil
}

// askScheduleEntry membaca isian form jadwal. Nilai pada current dipakai jika
// pengguna mengosongkan isian.
func (c *Console) askScheduleEntry(current service.ScheduleEntryInput) (service.ScheduleEntryInput, error) {
	var input service.ScheduleEntryInput
	fields := []struct {
		label   string
		current string
		target  *string
	}{
		{"Tema", current.Topic, &input.Topic},
		{"Pemateri", current.Speaker, &input.Speaker},
		{"Tempat", current.Venue, &input.Venue},
		{"Tanggal (YYYY-MM-DD)", current.Date, &input.Date},
		{"Waktu (HH:MM)", current.Time, &input.Time},
	}

	for _, field := range fields {
		var value string
		var err error
		if field.current == "" {
			value, err = c.ask(field.label + ": ")
		} else {
			value, err = c.askDefault(field.label, field.current)
		}
		if err != nil {
			return input, err
		}
		*field.target = value
	}

	return input, nil
}

func (c *Console) addScheduleEntry() error {
	input, err := c.askScheduleEntry(service.ScheduleEntryInput{})
	if err != nil {
		return err
	}

	entry, err := c.service.CreateScheduleEntry(c.session, input)
	if err != nil {
		return err
	}

	c.printf("Jadwal berhasil ditambahkan dengan id %d.\n", entry.ID)
	return nil
}

func (c *Console) editScheduleEntry(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	// cek hak akses sebelum menampilkan form
	if !c.capabilities().EditSchedule {
		return domain.ErrPermissionDenied
	}

	entry, err := c.service.GetScheduleEntry(c.session, id)
	if err != nil {
		return err
	}

	input, err := c.askScheduleEntry(service.ScheduleEntryInput{
		Topic:   entry.Topic,
		Speaker: entry.Speaker,
		Venue:   entry.Venue,
		Date:    entry.Date.String(),
		Time:    entry.Time.String(),
	})
	if err != nil {
		return err
	}

	if _, err := c.service.UpdateScheduleEntry(c.session, id, input); err != nil {
		return err
	}

	c.printf("Jadwal berhasil diubah.\n")
	return nil
}

func (c *Console) deleteScheduleEntry(args []string) error {
	id, err := parseID(args)
	if err != nil {
		return err
	}

	if !c.capabilities().EditSchedule {
		return domain.ErrPermissionDenied
	}

	if !c.confirm() {
		c.printf("Dibatalkan.\n")
		return nil
	}

	if err := c.service.DeleteScheduleEntry(c.session, id); err != nil {
		return err
	}

	c.printf("Jadwal berhasil dihapus.\n")
	return nil
}

func (c *Console) exportScheduleEntries(args []string) error {
	if len(args) == 0 {
		_, err := c.service.ExportScheduleEntries(c.session, c.out)
		return err
	}

	file, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	n, err := c.service.ExportScheduleEntries(c.session, file)
	if err != nil {
		return err
	}

	c.printf("%d jadwal diekspor ke %s.\n", n, args[0])
	return nil
}

func (c *Console) importScheduleEntries(args []string) error {
	if len(args) == 0 {
		c.printf("Gunakan: kajian import <file>\n")
		return nil
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	n, err := c.service.ImportScheduleEntries(c.session, file)
	c.printf("%d jadwal diimpor dari %s.\n", n, args[0])
	return err
}
