// Package console adalah antarmuka terminal interaktif untuk mengelola jadwal
// kajian dan akun pengguna.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/db-agama/kajian-manager/internal/policy"
	"github.com/db-agama/kajian-manager/internal/service"
	"golang.org/x/term"
)

const prompt = "kajian> "

type Console struct {
	service *service.Service
	in      *bufio.Reader
	out     io.Writer
	session *domain.Session

	// file descriptor terminal untuk membaca password tanpa echo, -1 jika
	// input bukan terminal
	fd int
}

func New(svc *service.Service, in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	return &Console{
		service: svc,
		in:      bufio.NewReader(in),
		out:     out,
		fd:      fd,
	}
}

// Run menjalankan loop login dan perintah sampai pengguna keluar atau input
// habis. Kesalahan yang bisa dipulihkan hanya dicetak.
func (c *Console) Run() error {
	c.printf("Aplikasi Jadwal Kajian\n")

	for {
		if !c.session.Authenticated() {
			ok, err := c.login()
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
			continue
		}

		line, err := c.ask(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		if quit := c.dispatch(args); quit {
			c.printf("Sampai jumpa.\n")
			return nil
		}
	}
}

// login mengembalikan false jika input habis sebelum login berhasil.
func (c *Console) login() (bool, error) {
	username, err := c.ask("Username: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	password, err := c.askPassword("Password: ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	session, err := c.service.Login(service.LoginInput{Username: username, Password: password})
	if err != nil {
		c.printError(err)
		return true, nil
	}

	c.session = session
	c.printf("Selamat datang, %s (%s). Ketik \"help\" untuk melihat perintah.\n", session.Account.Name, session.Account.Role)
	return true, nil
}

func (c *Console) dispatch(args []string) (quit bool) {
	switch args[0] {
	case "quit", "exit":
		return true
	case "help":
		c.help()
	case "whoami":
		account := c.session.Account
		c.printf("%s (%s), role: %s\n", account.Name, account.Username, account.Role)
	case "logout":
		slog.Info("pengguna logout", "username", c.session.Account.Username)
		c.session = nil
		c.printf("Anda telah logout.\n")
	case "kajian":
		c.schedule(args[1:])
	case "user":
		if !c.capabilities().ManageAccounts {
			c.printError(domain.ErrPermissionDenied)
			return false
		}
		c.accounts(args[1:])
	default:
		c.printf("Perintah tidak dikenal: %s. Ketik \"help\".\n", args[0])
	}
	return false
}

func (c *Console) capabilities() policy.Capabilities {
	return policy.CapabilitiesOf(c.session.Account.Role)
}

func (c *Console) help() {
	caps := c.capabilities()

	c.printf("Perintah:\n")
	c.printf("  kajian list                 daftar semua jadwal\n")
	c.printf("  kajian search <kata kunci>  cari berdasarkan tema, pemateri atau tempat\n")
	c.printf("  kajian add                  tambah jadwal\n")
	if caps.EditSchedule {
		c.printf("  kajian edit <id>            ubah jadwal\n")
		c.printf("  kajian delete <id>          hapus jadwal\n")
	}
	c.printf("  kajian export [file]        ekspor jadwal ke CSV\n")
	c.printf("  kajian import <file>        impor jadwal dari CSV\n")
	if caps.ManageAccounts {
		c.printf("  user list                   daftar pengguna\n")
		c.printf("  user add                    tambah pengguna\n")
		c.printf("  user edit <id>              ubah pengguna\n")
		c.printf("  user delete <id>            hapus pengguna\n")
	}
	c.printf("  whoami                      pengguna yang sedang login\n")
	c.printf("  logout                      keluar dari akun\n")
	c.printf("  quit                        keluar dari aplikasi\n")
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// printError membedakan kesalahan yang disebabkan pengguna dengan kesalahan
// internal. Hanya kesalahan internal yang dicatat ke log.
func (c *Console) printError(err error) {
	var validationErr *domain.ValidationError
	var storeErr *domain.StoreError

	switch {
	case errors.As(err, &validationErr):
		c.printf("Input tidak valid: %s\n", validationErr.Message)
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrPermissionDenied),
		errors.Is(err, domain.ErrUnauthenticated),
		errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUsernameTaken):
		c.printf("Gagal: %s\n", err)
	case errors.As(err, &storeErr):
		slog.Error("database menolak operasi", "op", storeErr.Op, "error", storeErr.Err)
		c.printf("%s\n", storeErr)
	default:
		slog.Error("kesalahan internal", "error", err)
		c.printf("Terjadi kesalahan: %s\n", err)
	}
}

func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) ask(label string) (string, error) {
	c.printf("%s", label)
	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askDefault mengembalikan current jika pengguna tidak mengisi apa pun.
func (c *Console) askDefault(label, current string) (string, error) {
	value, err := c.ask(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

func (c *Console) askPassword(label string) (string, error) {
	if c.fd < 0 {
		c.printf("%s", label)
		return c.readLine()
	}

	c.printf("%s", label)
	password, err := term.ReadPassword(c.fd)
	c.printf("\n")
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func (c *Console) confirm() bool {
	answer, err := c.ask("Yakin ingin menghapus? (y/N): ")
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "ya":
		return true
	default:
		return false
	}
}

func parseID(args []string) (int64, error) {
	if len(args) == 0 {
		return 0, &domain.ValidationError{Field: "id", Message: "id wajib diisi"}
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, &domain.ValidationError{Field: "id", Message: fmt.Sprintf("id tidak valid: %q", args[0])}
	}
	return id, nil
}
