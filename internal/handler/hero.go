package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ldanko/idleheroes/internal/engine"
	"github.com/ldanko/idleheroes/internal/hero"
	"github.com/ldanko/idleheroes/internal/logger"
)

// CreateHeroRequest represents the request to create a hero.
type CreateHeroRequest struct {
	OwnerID string `json:"owner_id" validate:"required,min=1,max=64"`
	Name    string `json:"name" validate:"required,min=2,max=32"`
}

// HandleCreateHero creates a new level 1 hero for an owner.
func HandleCreateHero(heroService hero.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateHeroRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode create hero request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Invalid request",
				"fields": FormatValidationError(err),
			})
			return
		}

		h, err := heroService.CreateHero(r.Context(), req.OwnerID, req.Name)
		if err != nil {
			respondServiceError(w, log, "Failed to create hero", err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: "Hero created",
			Data:    h,
		})
	}
}

// HandleGetHero returns one hero by ID.
func HandleGetHero(heroService hero.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		h, err := heroService.GetHero(r.Context(), chi.URLParam(r, "heroID"))
		if err != nil {
			respondServiceError(w, log, "Failed to get hero", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: h})
	}
}

// HandleListHeroes returns every hero, for the roster view.
func HandleListHeroes(heroService hero.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		heroes, err := heroService.ListHeroes(r.Context())
		if err != nil {
			respondServiceError(w, log, "Failed to list heroes", err)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: heroes})
	}
}

// HandleGetLastAction returns the hero's most recent turn log line, if one
// is still retained.
func HandleGetLastAction(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		line, ok := eng.LastAction(chi.URLParam(r, "heroID"))
		if !ok {
			respondJSON(w, http.StatusOK, DataResponse{Message: "No recent activity"})
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: line})
	}
}

// ItemRequest addresses one item in the hero's possession.
type ItemRequest struct {
	ItemID int `json:"item_id" validate:"required,min=1"`
}

// HandleUseItem consumes one usable item from the hero's inventory.
func HandleUseItem(heroService hero.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode use item request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Invalid request",
				"fields": FormatValidationError(err),
			})
			return
		}

		msg, err := heroService.UseItem(r.Context(), chi.URLParam(r, "heroID"), req.ItemID)
		if err != nil {
			respondServiceError(w, log, "Failed to use item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
	}
}

// HandleEquipItem equips a weapon or armor piece from the inventory.
func HandleEquipItem(heroService hero.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req ItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode equip item request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Invalid request",
				"fields": FormatValidationError(err),
			})
			return
		}

		msg, err := heroService.EquipItem(r.Context(), chi.URLParam(r, "heroID"), req.ItemID)
		if err != nil {
			respondServiceError(w, log, "Failed to equip item", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
	}
}

// HandleSmite strikes the hero with divine lightning.
func HandleSmite(heroService hero.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		msg, err := heroService.Smite(r.Context(), chi.URLParam(r, "heroID"))
		if err != nil {
			respondServiceError(w, log, "Failed to smite hero", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
	}
}

// DivineSpeechRequest carries the words whispered to the hero.
type DivineSpeechRequest struct {
	Message string `json:"message" validate:"required,min=1,max=500"`
}

// HandleDivineSpeech blesses the hero with wisdom and a little healing.
func HandleDivineSpeech(heroService hero.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req DivineSpeechRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode divine speech request", "error", err)
			respondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  "Invalid request",
				"fields": FormatValidationError(err),
			})
			return
		}

		msg, err := heroService.DivineSpeech(r.Context(), chi.URLParam(r, "heroID"), req.Message)
		if err != nil {
			respondServiceError(w, log, "Failed to deliver divine speech", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: msg})
	}
}
