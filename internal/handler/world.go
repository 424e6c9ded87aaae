package handler

import (
	"net/http"

	"github.com/ldanko/idleheroes/internal/engine"
)

// HandleGetGlobalEvent returns the most recent world-wide announcement.
func HandleGetGlobalEvent(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg, ok := eng.LastGlobalEvent()
		if !ok {
			respondJSON(w, http.StatusOK, DataResponse{Message: "All is quiet in the realm"})
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: msg})
	}
}
