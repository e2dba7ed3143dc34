package domain

type Role string

const (
	RoleAdministrator Role = "admin"
	RoleStaff         Role = "petugas"
)

func (r Role) Valid() bool {
	return r == RoleAdministrator || r == RoleStaff
}

// Account adalah akun pengguna aplikasi. PasswordHash tidak pernah ikut
// diserialisasi maupun ditampilkan.
type Account struct {
	ID           int64  `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Role         Role   `db:"role" json:"role"`
}

func (a *Account) IsAdministrator() bool {
	return a.Role == RoleAdministrator
}
