package ports

// PasswordEncoder hashea y verifica contraseñas.
type PasswordEncoder interface {
	Encode(raw string) (string, error)
	Matches(raw, encoded string) bool
}
