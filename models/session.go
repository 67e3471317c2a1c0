package models

// Session nosi podatke o prijavljenom korisniku kroz request context.
// Postavlja se na uspešan login (token), briše na logout (blacklist tokena) -
// nema globalnog stanja o trenutnom korisniku.
type Session struct {
	UserID string
	Email  string
	Role   string
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
