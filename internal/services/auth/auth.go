package auth

import (
	"crypto/subtle"
)

// SharedSecret проверяет админский пароль, переданный клиентом.
// Пустой настроенный пароль закрывает все защищенные операции.
type SharedSecret struct {
	password string
}

func New(password string) *SharedSecret {
	return &SharedSecret{
		password: password,
	}
}

// Authorize сравнивает переданный пароль с настроенным
func (a *SharedSecret) Authorize(credential string) bool {
	if a.password == "" || credential == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(credential), []byte(a.password)) == 1
}
