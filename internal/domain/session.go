package domain

// Session menyimpan pengguna yang sedang login. Session dibuat saat login
// berhasil dan diteruskan secara eksplisit ke setiap operasi yang butuh otorisasi.
type Session struct {
	Account *Account
}

func NewSession(account *Account) *Session {
	return &Session{Account: account}
}

func (s *Session) Authenticated() bool {
	return s != nil && s.Account != nil
}
