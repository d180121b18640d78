package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"a_notes_go/auth"
	"a_notes_go/pkg/log"

	"golang.org/x/crypto/bcrypt"
)

// LoginRequest — тело запроса входа владельца.
type LoginRequest struct {
	Password string `json:"password"`
}

// LoginResponse — выданный токен и момент его истечения.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// LoginHandler обрабатывает вход владельца: пароль сверяется с
// bcrypt-хешем из конфигурации, в ответ выдаётся JWT. Если пароль в
// конфигурации не задан, API открыт и этот маршрут не регистрируется.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "Метод не разрешен. Используйте POST.")
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := bcrypt.CompareHashAndPassword([]byte(cfg.Auth.PasswordHash), []byte(req.Password)); err != nil {
		log.S.Warnf("LoginHandler: неверный пароль с %s", r.RemoteAddr)
		respondError(w, http.StatusUnauthorized, "Неверный пароль.")
		return
	}

	tokenString, expiresAt, err := auth.GenerateToken(cfg.Auth.Username)
	if err != nil {
		log.S.Errorf("LoginHandler: ошибка генерации токена: %v", err)
		respondError(w, http.StatusInternalServerError, "Не удалось сгенерировать токен доступа.")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{Token: tokenString, ExpiresAt: expiresAt})
}
