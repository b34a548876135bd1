package model

type Student struct {
	ID       int64  `json:"s_id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"` // на входе - открытый текст, в БД - bcrypt хэш
	Email    string `json:"email"`
	Phone    string `json:"ph_no"`
	Age      int    `json:"age"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Gender   string `json:"gender"`
}

// Public возвращает копию без пароля для отдачи наружу
func (s *Student) Public() *Student {
	if s == nil {
		return nil
	}
	out := *s
	out.Password = ""
	return &out
}
