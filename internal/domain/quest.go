package domain

import "time"

// QuestType distinguishes operator-authored quests from player submissions.
type QuestType string

const (
	QuestTypeSystem        QuestType = "system"
	QuestTypeUserGenerated QuestType = "user_generated"
)

// Quest is a catalog definition. Only approved quests are eligible for
// automatic assignment.
type Quest struct {
	ID               int       `json:"quest_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Type             QuestType `json:"type"`
	RequiredLevel    int       `json:"required_level"`
	RewardExperience int       `json:"reward_experience"`
	RewardGold       int       `json:"reward_gold"`
	IsApproved       bool      `json:"is_approved"`
	CreatedBy        string    `json:"created_by,omitempty"`
	ApprovedBy       string    `json:"approved_by,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// QuestStatus is the lifecycle of one hero's attempt at one quest.
type QuestStatus string

const (
	QuestNotStarted QuestStatus = "not_started"
	QuestInProgress QuestStatus = "in_progress"
	QuestCompleted  QuestStatus = "completed"
	QuestFailed     QuestStatus = "failed"
)

// QuestProgressTarget is the fixed completion threshold. Progress is not
// configurable per quest.
const QuestProgressTarget = 10

// HeroQuest records one hero's attempt at one quest. The (hero, quest) pair
// is unique forever: a hero is never assigned the same quest twice, even
// after completing or failing it.
type HeroQuest struct {
	HeroID      string      `json:"hero_id"`
	QuestID     int         `json:"quest_id"`
	Status      QuestStatus `json:"status"`
	Progress    int         `json:"progress"`
	StartedAt   time.Time   `json:"started_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`

	// Joined fields
	Title            string `json:"title,omitempty"`
	RewardExperience int    `json:"reward_experience,omitempty"`
	RewardGold       int    `json:"reward_gold,omitempty"`
}
