package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgHeroNotFound      = "hero not found"
	ErrMsgHeroNameTaken     = "hero name already taken"
	ErrMsgOwnerHasHero      = "owner already has a hero"
	ErrMsgItemNotFound      = "item not found"
	ErrMsgNotInInventory    = "item not in inventory"
	ErrMsgUnknownItemType   = "unknown item type"
	ErrMsgInvalidSlot       = "invalid equipment slot"
	ErrMsgQuestNotFound     = "quest not found"
	ErrMsgQuestAssigned     = "quest already assigned to hero"
	ErrMsgNoActiveQuest     = "no active quest"
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgGuildNotFound     = "guild not found"
	ErrMsgNotGuildMember    = "hero is not a guild member"
)

// Common domain errors. Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, detail)
// when extra context helps the caller.
var (
	ErrHeroNotFound    = errors.New(ErrMsgHeroNotFound)
	ErrHeroNameTaken   = errors.New(ErrMsgHeroNameTaken)
	ErrOwnerHasHero    = errors.New(ErrMsgOwnerHasHero)
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrNotInInventory  = errors.New(ErrMsgNotInInventory)
	ErrUnknownItemType = errors.New(ErrMsgUnknownItemType)
	ErrInvalidSlot     = errors.New(ErrMsgInvalidSlot)
	ErrQuestNotFound   = errors.New(ErrMsgQuestNotFound)
	ErrQuestAssigned   = errors.New(ErrMsgQuestAssigned)
	ErrNoActiveQuest   = errors.New(ErrMsgNoActiveQuest)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrGuildNotFound   = errors.New(ErrMsgGuildNotFound)
	ErrNotGuildMember  = errors.New(ErrMsgNotGuildMember)
)
