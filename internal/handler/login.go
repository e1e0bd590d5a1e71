package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ulbra-election/voter/internal/api"
	"github.com/ulbra-election/voter/internal/utils"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	token, voter, err := h.login.Login(creds.Email, creds.Password)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.LoginResponse{Token: token, Voter: toVoterResponse(voter)})
}

func (h *Handler) CheckToken(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	voter, err := h.login.CheckToken(token)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toVoterResponse(voter))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var body api.LogoutRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.login.Logout(body.Token); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.GenericResponse{Message: "Logged out"})
}
