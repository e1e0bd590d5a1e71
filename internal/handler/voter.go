package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ulbra-election/voter/internal/api"
	"github.com/ulbra-election/voter/internal/domain"
	internal_errors "github.com/ulbra-election/voter/internal/errors"
	"github.com/ulbra-election/voter/internal/utils"
)

// voterIdParam parses the {voterId} route parameter. A non-numeric id is
// indistinguishable from a malformed one, so both map to the same 400.
func voterIdParam(r *http.Request) (domain.VoterId, error) {
	raw := chi.URLParam(r, "voterId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &internal_errors.ErrorWithStatusCode{
			Kind:       internal_errors.KindInvalidId,
			Message:    "Invalid id",
			StatusCode: http.StatusBadRequest,
		}
	}
	return id, nil
}

func (h *Handler) CreateVoter(w http.ResponseWriter, r *http.Request) {
	var body api.VoterRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	voter, err := h.voter.Create(body.Input())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toVoterResponse(voter))
}

func (h *Handler) GetVoters(w http.ResponseWriter, r *http.Request) {
	voters, err := h.voter.GetAll()
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	response := make([]api.VoterResponse, len(voters))
	for i, v := range voters {
		response[i] = toVoterResponse(v)
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetVoter(w http.ResponseWriter, r *http.Request) {
	id, err := voterIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	voter, err := h.voter.Get(id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toVoterResponse(voter))
}

func (h *Handler) UpdateVoter(w http.ResponseWriter, r *http.Request) {
	id, err := voterIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	var body api.VoterRequest
	if err := utils.Decode(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	voter, err := h.voter.Update(id, body.Input())
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toVoterResponse(voter))
}

func (h *Handler) DeleteVoter(w http.ResponseWriter, r *http.Request) {
	id, err := voterIdParam(r)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	if err := h.voter.Delete(id); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.GenericResponse{Message: "Voter deleted"})
}
