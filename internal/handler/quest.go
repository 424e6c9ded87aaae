package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ldanko/idleheroes/internal/domain"
	"github.com/ldanko/idleheroes/internal/logger"
	"github.com/ldanko/idleheroes/internal/quest"
)

// CreateQuestRequest represents a quest submission. User-submitted quests
// start unapproved and only enter the eligible pool once approved.
type CreateQuestRequest struct {
	Title            string `json:"title" validate:"required,min=3,max=120"`
	Description      string `json:"description" validate:"max=2000"`
	RequiredLevel    int    `json:"required_level" validate:"min=1,max=100"`
	RewardExperience int    `json:"reward_experience" validate:"min=0,max=10000"`
	RewardGold       int    `json:"reward_gold" validate:"min=0,max=10000"`
	CreatedBy        string `json:"created_by" validate:"required,min=1,max=64"`
}

// HandleCreateQuest accepts a new user-submitted quest.
func HandleCreateQuest(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateQuestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode create quest request", "error", err)
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

		q := &domain.Quest{
			Title:            req.Title,
			Description:      req.Description,
			Type:             domain.QuestTypeUserGenerated,
			RequiredLevel:    req.RequiredLevel,
			RewardExperience: req.RewardExperience,
			RewardGold:       req.RewardGold,
			CreatedBy:        req.CreatedBy,
		}
		if err := questService.CreateQuest(r.Context(), q); err != nil {
			respondServiceError(w, log, "Failed to create quest", err)
			return
		}

		respondJSON(w, http.StatusCreated, DataResponse{
			Message: "Quest submitted for approval",
			Data:    q,
		})
	}
}

// ApproveQuestRequest records who approved the quest.
type ApproveQuestRequest struct {
	ApprovedBy string `json:"approved_by" validate:"required,min=1,max=64"`
}

// HandleApproveQuest marks a quest approved, making it eligible for heroes.
func HandleApproveQuest(questService quest.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		questID, err := strconv.Atoi(chi.URLParam(r, "questID"))
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid quest ID")
			return
		}

		var req ApproveQuestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Warn("Failed to decode approve quest request", "error", err)
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

		if err := questService.ApproveQuest(r.Context(), questID, req.ApprovedBy); err != nil {
			respondServiceError(w, log, "Failed to approve quest", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Quest approved"})
	}
}
