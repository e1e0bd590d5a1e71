package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/ulbra-election/voter/internal/domain"
	"github.com/stretchr/testify/require"
)

type MockVoterService struct {
	CreateFunc func(input domain.VoterInput) (domain.Voter, error)
	GetAllFunc func() ([]domain.Voter, error)
	GetFunc    func(id domain.VoterId) (domain.Voter, error)
	UpdateFunc func(id domain.VoterId, input domain.VoterInput) (domain.Voter, error)
	DeleteFunc func(id domain.VoterId) error
}

func (m *MockVoterService) Create(input domain.VoterInput) (domain.Voter, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(input)
	}
	return domain.Voter{Id: 1, Name: input.Name, Email: input.Email}, nil
}

func (m *MockVoterService) GetAll() ([]domain.Voter, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc()
	}
	return nil, nil
}

func (m *MockVoterService) Get(id domain.VoterId) (domain.Voter, error) {
	if m.GetFunc != nil {
		return m.GetFunc(id)
	}
	return domain.Voter{Id: id, Name: "Jane Doe", Email: "jane@x.com"}, nil
}

func (m *MockVoterService) Update(id domain.VoterId, input domain.VoterInput) (domain.Voter, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(id, input)
	}
	return domain.Voter{Id: id, Name: input.Name, Email: input.Email}, nil
}

func (m *MockVoterService) Delete(id domain.VoterId) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(id)
	}
	return nil
}

type MockLoginService struct {
	LoginFunc      func(email domain.Email, password string) (domain.SessionToken, domain.Voter, error)
	CheckTokenFunc func(token domain.SessionToken) (domain.Voter, error)
	LogoutFunc     func(token domain.SessionToken) error
}

func (m *MockLoginService) Login(email domain.Email, password string) (domain.SessionToken, domain.Voter, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return "token-1", domain.Voter{Id: 1, Name: "Jane Doe", Email: email}, nil
}

func (m *MockLoginService) CheckToken(token domain.SessionToken) (domain.Voter, error) {
	if m.CheckTokenFunc != nil {
		return m.CheckTokenFunc(token)
	}
	return domain.Voter{Id: 1, Name: "Jane Doe", Email: "jane@x.com"}, nil
}

func (m *MockLoginService) Logout(token domain.SessionToken) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(token)
	}
	return nil
}

func setupTestRouter(voter *MockVoterService, login *MockLoginService) *chi.Mux {
	h := New(voter, login)

	router := chi.NewRouter()
	router.Get("/health", h.Health)
	router.Post("/login", h.Login)
	router.Get("/check/{token}", h.CheckToken)
	router.Post("/logout", h.Logout)
	router.Route("/v1/voter", func(r chi.Router) {
		r.Post("/", h.CreateVoter)
		r.Get("/", h.GetVoters)
		r.Get("/{voterId}", h.GetVoter)
		r.Put("/{voterId}", h.UpdateVoter)
		r.Delete("/{voterId}", h.DeleteVoter)
	})
	return router
}

func createRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, target, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *chi.Mux, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestHealth(t *testing.T) {
	router := setupTestRouter(&MockVoterService{}, &MockLoginService{})

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "ok", rr.Body.String())
}
