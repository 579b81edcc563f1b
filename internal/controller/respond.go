package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/iffertmedia/dashboard-backend/internal/errors"
	"github.com/iffertmedia/dashboard-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps service errors onto HTTP statuses: validation failures are
// 400, unknown IDs are 404, everything else is 500.
func writeError(w http.ResponseWriter, err error) {
	var (
		validation *service.ValidationError
		noCampaign *appErrors.ErrCampaignNotFound
		noProduct  *appErrors.ErrProductNotFound
		noCreator  *appErrors.ErrCreatorNotFound
		noText     *appErrors.ErrTextNotFound
	)
	switch {
	case errors.As(err, &validation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &noCampaign),
		errors.As(err, &noProduct),
		errors.As(err, &noCreator),
		errors.As(err, &noText):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
