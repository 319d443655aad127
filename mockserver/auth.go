package mockserver

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/kyunghoonkook/directional/resp"
	"github.com/kyunghoonkook/directional/types"
	"github.com/kyunghoonkook/directional/validation"
)

func (s *Server) login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest("invalid request body"))
		return
	}
	if errs := validation.ValidateStruct(req); errs != nil {
		resp.Fail(c.Writer, resp.BadRequest("email and password are required", errs))
		return
	}

	account, ok := s.accounts[strings.ToLower(strings.TrimSpace(req.Email))]
	if !ok || account.Password != req.Password {
		resp.Fail(c.Writer, resp.BadRequest("invalid email or password"))
		return
	}

	token, err := s.issueToken(account.User)
	if err != nil {
		resp.Fail(c.Writer, resp.InternalServer("failed to issue token"))
		return
	}
	resp.Success(c.Writer, types.LoginResponse{Token: token, User: account.User})
}

// issueToken signs a JWT for user and records it as active
func (s *Server) issueToken(user types.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
		"jti":   newID(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.tokens[token] = user
	s.mu.Unlock()
	return token, nil
}

// userForToken returns the user of an active, unexpired token
func (s *Server) userForToken(token string) (types.User, bool) {
	s.mu.RLock()
	user, ok := s.tokens[token]
	s.mu.RUnlock()
	if !ok {
		return types.User{}, false
	}

	parsed, err := jwt.Parse(token, func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return types.User{}, false
	}
	return user, true
}

// Revoke invalidates token, later requests with it get 401
func (s *Server) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// RevokeAll invalidates every issued token
func (s *Server) RevokeAll() {
	s.mu.Lock()
	s.tokens = make(map[string]types.User)
	s.mu.Unlock()
}
