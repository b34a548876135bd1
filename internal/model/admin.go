package model

// Admin администратор, первичный ключ - username
type Admin struct {
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

// Public возвращает копию без пароля для отдачи наружу
func (a *Admin) Public() *Admin {
	if a == nil {
		return nil
	}
	out := *a
	out.Password = ""
	return &out
}
