package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// statusResponse — единый формат служебных ответов API.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// writeJSON сериализует v в тело ответа с указанным HTTP-статусом.
func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Статус уже отправлен клиенту, остается только залогировать
		log.Printf("[Handlers] Ошибка кодирования ответа: %v", err)
	}
}

// writeError отправляет ответ об ошибке в формате {"status":"error","message":...}.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, statusResponse{Status: "error", Message: message})
}

// writeSuccess отправляет служебный успешный ответ.
func writeSuccess(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, statusResponse{Status: "success", Message: message})
}
