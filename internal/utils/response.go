package utils

import (
	"encoding/json"
	"net/http"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// Error répond avec le message et log la cause sous-jacente
func Error(w http.ResponseWriter, status int, msg string, err error) {
	LogError("[%d] %s: %v", status, msg, err)
	JSON(w, status, APIResponse{Success: false, Error: msg})
}

// ErrorSimple répond avec le message, sans cause à logger
func ErrorSimple(w http.ResponseWriter, status int, msg string) {
	LogError("[%d] %s", status, msg)
	JSON(w, status, APIResponse{Success: false, Error: msg})
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
