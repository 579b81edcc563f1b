package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/iffertmedia/dashboard-backend/internal/auth"
)

type AuthController struct {
	Auth *auth.Service
}

// Login checks the static admin credentials and returns a bearer token. A
// failed login reports success=false with a user-facing message, matching
// the boundary contract.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if body.Username == "" || body.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"error":   "Please enter both username and password",
		})
		return
	}

	token, err := c.Auth.Login(body.Username, body.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"success": false,
				"error":   "Invalid username or password",
			})
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"token":   token,
	})
}
