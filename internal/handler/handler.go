package handler

import (
	"encoding/json"
	"net/http"

	"github.com/ulbra-election/voter/internal/api"
	"github.com/ulbra-election/voter/internal/domain"
	"github.com/ulbra-election/voter/internal/logger"
	"github.com/ulbra-election/voter/internal/service"
)

type Handler struct {
	voter service.VoterService
	login service.LoginService
}

func New(voter service.VoterService, login service.LoginService) *Handler {
	return &Handler{voter: voter, login: login}
}

func toVoterResponse(v domain.Voter) api.VoterResponse {
	return api.VoterResponse{Id: v.Id, Name: v.Name, Email: v.Email}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
