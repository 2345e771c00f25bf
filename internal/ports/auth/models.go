package auth

// Claims es la información extraída del token de sesión.
// Name/Email/Photo se usan para crear el perfil en el primer sign-in.
type Claims struct {
	UserID string
	Email  string
	Name   string
	Photo  string
}
