package model

type Tutor struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email"`
	Mobile   string `json:"mobileno"`
	Name     string `json:"tutor_name"`
	Location string `json:"tutor_location"`
	Gender   string `json:"gender"`
}

// Public возвращает копию без пароля для отдачи наружу
func (t *Tutor) Public() *Tutor {
	if t == nil {
		return nil
	}
	out := *t
	out.Password = ""
	return &out
}
