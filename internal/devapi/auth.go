package devapi

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"holidaze/internal/domain"
	"holidaze/internal/validation"
)

var registerMessages = map[string]string{
	"name":     "Name can only use a-Z, 0-9, and _",
	"email":    "Only stud.noroff.no emails are allowed to register",
	"password": "Password must be at least 8 characters",
}

type registerBody struct {
	domain.Registration
	Bio    string        `json:"bio"`
	Avatar *domain.Media `json:"avatar"`
	Banner *domain.Media `json:"banner"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in registerBody
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if errs := validation.Struct(in.Registration, registerMessages); errs != nil {
		writeError(w, http.StatusBadRequest, errs.Messages()...)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.accounts[in.Name]; taken || s.emailTaken(in.Email) {
		writeError(w, http.StatusBadRequest, "Profile already exists")
		return
	}
	p := domain.Profile{
		Name:         in.Name,
		Email:        in.Email,
		Bio:          in.Bio,
		Avatar:       in.Avatar,
		Banner:       in.Banner,
		VenueManager: in.VenueManager,
	}
	s.accounts[in.Name] = &account{profile: p, hash: hash}
	writeData(w, http.StatusCreated, p, nil)
}

// emailTaken reports whether email is registered. Caller holds s.mu.
func (s *Server) emailTaken(email string) bool {
	for _, a := range s.accounts {
		if a.profile.Email == email {
			return true
		}
	}
	return false
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in domain.Credentials
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	var acc *account
	for _, a := range s.accounts {
		if a.profile.Email == in.Email {
			acc = a
			break
		}
	}
	if acc == nil || bcrypt.CompareHashAndPassword(acc.hash, []byte(in.Password)) != nil {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	tok, err := s.issueToken(acc.profile)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, http.StatusOK, domain.AuthResult{Profile: acc.profile, AccessToken: tok}, nil)
}
