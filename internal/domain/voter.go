package domain

import "time"

type VoterId = int64
type Email = string
type SessionToken = string

// Voter is the persisted account record. PassHash never leaves the service
// layer; outward mapping goes through api.VoterResponse.
type Voter struct {
	Id        VoterId
	Name      string
	Email     Email
	PassHash  string
	CreatedAt time.Time
}

// VoterInput is the transient create/update payload. Password may be blank on
// update, which keeps the stored hash unchanged.
type VoterInput struct {
	Name            string
	Email           Email
	Password        string
	PasswordConfirm string
}
