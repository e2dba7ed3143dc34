// Package policy berisi aturan otorisasi berbasis peran. Semua fungsi di sini
// murni dan tidak menyentuh database.
package policy

import (
	"slices"

	"github.com/db-agama/kajian-manager/internal/domain"
)

type Operation string

const (
	ScheduleCreate Operation = "schedule:create"
	ScheduleRead   Operation = "schedule:read"
	ScheduleUpdate Operation = "schedule:update"
	ScheduleDelete Operation = "schedule:delete"

	AccountCreate      Operation = "account:create"
	AccountRead        Operation = "account:read"
	AccountUpdate      Operation = "account:update"
	AccountDeleteOther Operation = "account:delete-other"
	AccountDeleteSelf  Operation = "account:delete-self"
)

var rules = map[domain.Role][]Operation{
	domain.RoleAdministrator: {
		ScheduleCreate, ScheduleRead, ScheduleUpdate, ScheduleDelete,
		AccountCreate, AccountRead, AccountUpdate, AccountDeleteOther,
	},
	domain.RoleStaff: {
		ScheduleCreate, ScheduleRead,
	},
}

// Allowed melaporkan apakah peran boleh menjalankan operasi. Peran yang tidak
// dikenal tidak diizinkan apa pun.
func Allowed(role domain.Role, op Operation) bool {
	return slices.Contains(rules[role], op)
}

func Authorize(session *domain.Session, op Operation) error {
	if !session.Authenticated() {
		return domain.ErrUnauthenticated
	}
	if !Allowed(session.Account.Role, op) {
		return domain.ErrPermissionDenied
	}
	return nil
}

// CanDeleteAccount memeriksa penghapusan akun targetID. Menghapus akun sendiri
// selalu ditolak, apa pun perannya.
func CanDeleteAccount(session *domain.Session, targetID int64) error {
	if !session.Authenticated() {
		return domain.ErrUnauthenticated
	}
	if targetID == session.Account.ID {
		return domain.ErrSelfDeletion
	}
	return Authorize(session, AccountDeleteOther)
}

// Capabilities menentukan menu apa saja yang ditampilkan ke pengguna.
type Capabilities struct {
	EditSchedule   bool
	ManageAccounts bool
}

func CapabilitiesOf(role domain.Role) Capabilities {
	return Capabilities{
		EditSchedule:   Allowed(role, ScheduleUpdate) && Allowed(role, ScheduleDelete),
		ManageAccounts: Allowed(role, AccountRead) && Allowed(role, AccountCreate),
	}
}
