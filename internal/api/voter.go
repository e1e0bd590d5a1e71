// Package api defines the request/response DTOs for the HTTP surface.
package api

import "github.com/ulbra-election/voter/internal/domain"

// VoterRequest carries no validate tags on purpose. Field-level rules
// (email, name, password pairing) belong to the validation package so the
// client always receives the domain error kinds, not a generic 400.
type VoterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"passwordConfirm"`
}

func (r VoterRequest) Input() domain.VoterInput {
	return domain.VoterInput{
		Name:            r.Name,
		Email:           r.Email,
		Password:        r.Password,
		PasswordConfirm: r.PasswordConfirm,
	}
}

type LoginRequest struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type LogoutRequest struct {
	Token string `validate:"required" json:"token"`
}

// VoterResponse deliberately omits the password digest.
type VoterResponse struct {
	Id    domain.VoterId `json:"id"`
	Name  string         `json:"name"`
	Email string         `json:"email"`
}

type LoginResponse struct {
	Token domain.SessionToken `json:"token"`
	Voter VoterResponse       `json:"voter"`
}

type GenericResponse struct {
	Message string `json:"message"`
}
