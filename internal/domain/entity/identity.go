package entity

// Identity es el contexto de identidad establecido al verificar el token del llamador.
// CompanyID es el único tenant válido para cualquier consulta de la petición.
type Identity struct {
	UserID    string
	CompanyID string
	Role      string
}

// HasRole indica si el rol de la identidad está en allowed.
func (i Identity) HasRole(allowed ...string) bool {
	for _, r := range allowed {
		if i.Role == r {
			return true
		}
	}
	return false
}
