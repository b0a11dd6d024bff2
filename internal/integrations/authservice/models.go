package authservice

// User модель аутентифицированного пользователя из AuthService
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"` // "user" или "admin"
}

// IsAdmin возвращает true для администратора
func (u *User) IsAdmin() bool {
	return u.Role == "admin"
}

// ErrorResponse модель ошибки от AuthService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
