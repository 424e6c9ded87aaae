package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ldanko/idleheroes/internal/concurrency"
	"github.com/ldanko/idleheroes/internal/domain"
)

func newTestEngine(repo *fakeHeroRepo, heroSvc *fakeHeroService, questSvc *fakeQuestService) (*Engine, *fakeNotifier) {
	notifier := &fakeNotifier{}
	eng := New(repo, heroSvc, questSvc, notifier, newTestPublisher(), concurrency.NewLockManager())
	return eng, notifier
}

func testHero(id string) *domain.Hero {
	h := domain.NewHero("owner-"+id, "Hero-"+id)
	h.ID = id
	return h
}

// actionDraw returns an rnd value that selects the pool entry at idx.
func actionDraw(idx int) float64 {
	return (float64(idx) + 0.5) / float64(len(actionPool))
}

func TestProcessHeroTurn_DeadHeroUntouched(t *testing.T) {
	h := testHero("h1")
	h.Health = 0
	h.State = domain.StateDead
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "is dead")
	assert.Equal(t, 0, repo.updates, "dead branch must not write the hero")
}

func TestProcessHeroTurn_ActiveQuestTakesPriority(t *testing.T) {
	h := testHero("h1")
	h.State = domain.StateFight
	repo := newFakeHeroRepo(h)
	quests := &fakeQuestService{
		active:     &domain.HeroQuest{HeroID: "h1", QuestID: 7, Status: domain.QuestInProgress},
		advanceMsg: "Hero-h1 works on the quest.",
	}

	eng, _ := newTestEngine(repo, &fakeHeroService{}, quests)
	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Equal(t, "Hero-h1 works on the quest.", line)
	assert.Equal(t, 1, quests.advanced, "an active quest preempts the fight state")
	assert.Equal(t, 1, repo.updates)
}

func TestProcessHeroTurn_Rest(t *testing.T) {
	h := testHero("h1")
	h.State = domain.StateRest
	h.Health = 50
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{bonus: domain.EquipmentBonus{Defense: 8}}, &fakeQuestService{})
	eng.roll = rollSeq(10) // heal 10 + 8/2 = 14

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "recovers 14 health (64/100)")
	stored := repo.stored("h1")
	assert.Equal(t, 64, stored.Health)
	assert.Equal(t, domain.StateAdventure, stored.State)
}

func TestProcessHeroTurn_FightWin(t *testing.T) {
	h := testHero("h1")
	h.State = domain.StateFight
	repo := newFakeHeroRepo(h)

	eng, notifier := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.roll = rollSeq(10, 20, 5) // damage, experience, gold
	eng.rnd = rndSeq(0.4)         // below 0.5 wins the round

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "slays the monster")
	stored := repo.stored("h1")
	assert.Equal(t, 90, stored.Health, "the exchange is simultaneous, winners bleed too")
	assert.Equal(t, 5, stored.Gold)
	assert.Equal(t, 20, stored.Experience)
	assert.Equal(t, 1, stored.MonstersKilled)
	assert.Equal(t, domain.StateAdventure, stored.State)
	assert.Contains(t, notifier.sent, "Victory!")
}

func TestProcessHeroTurn_FightLoss(t *testing.T) {
	h := testHero("h1")
	h.State = domain.StateFight
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.roll = rollSeq(12)
	eng.rnd = rndSeq(0.9)

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "takes 12 damage")
	stored := repo.stored("h1")
	assert.Equal(t, 88, stored.Health)
	assert.Equal(t, domain.StateFight, stored.State, "a lost round keeps the fight going")
	assert.Equal(t, 0, stored.MonstersKilled)
}

func TestProcessHeroTurn_FightDamageFloor(t *testing.T) {
	h := testHero("h1")
	h.State = domain.StateFight
	repo := newFakeHeroRepo(h)

	// Heavy armor soaks the whole roll; damage still floors at 1.
	eng, _ := newTestEngine(repo, &fakeHeroService{bonus: domain.EquipmentBonus{Defense: 60}}, &fakeQuestService{})
	eng.roll = rollSeq(5)
	eng.rnd = rndSeq(0.9)

	eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Equal(t, 99, repo.stored("h1").Health)
}

func TestProcessHeroTurn_FightDeath(t *testing.T) {
	h := testHero("h1")
	h.State = domain.StateFight
	h.Health = 10
	repo := newFakeHeroRepo(h)

	eng, notifier := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.roll = rollSeq(20)
	eng.rnd = rndSeq(0.9)

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "has died")
	stored := repo.stored("h1")
	assert.Equal(t, 0, stored.Health)
	assert.Equal(t, domain.StateDead, stored.State)
	assert.Equal(t, 1, stored.Deaths)
	assert.Contains(t, notifier.sent, "Hero has fallen")

	// The next turn observes the dead state and leaves the hero alone.
	updatesBefore := repo.updates
	line = eng.ProcessHeroTurn(context.Background(), "h1")
	assert.Contains(t, line, "is dead")
	assert.Equal(t, updatesBefore, repo.updates)
}

func TestProcessHeroTurn_ExploreGold(t *testing.T) {
	h := testHero("h1")
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(3)) // the gold find
	eng.roll = rollSeq(4)

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "+4 gold")
	assert.Equal(t, 4, repo.stored("h1").Gold)
}

func TestProcessHeroTurn_ExploreMonsterEncounter(t *testing.T) {
	h := testHero("h1")
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(4))

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "Battle begins")
	stored := repo.stored("h1")
	assert.Equal(t, domain.StateFight, stored.State)
	assert.Equal(t, 100, stored.Health, "the encounter itself deals no damage")
}

func TestProcessHeroTurn_ExploreQuestStart(t *testing.T) {
	h := testHero("h1")
	repo := newFakeHeroRepo(h)
	quests := &fakeQuestService{startMsg: `Hero-h1 takes on the quest "Rats in the Cellar".`}

	eng, _ := newTestEngine(repo, &fakeHeroService{}, quests)
	eng.rnd = rndSeq(actionDraw(5))

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Equal(t, quests.startMsg, line)
}

func TestProcessHeroTurn_ExploreQuestBoardEmpty(t *testing.T) {
	h := testHero("h1")
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(5))

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	// No eligible quest keeps the flavor line.
	assert.Contains(t, line, "notice board")
}

func TestProcessHeroTurn_ExploreItemFind(t *testing.T) {
	h := testHero("h1")
	repo := newFakeHeroRepo(h)
	heroSvc := &fakeHeroService{foundMsg: "Hero-h1 finds Rusty Sword! (now carrying 1)"}

	eng, _ := newTestEngine(repo, heroSvc, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(6))

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Equal(t, heroSvc.foundMsg, line)
}

func TestProcessHeroTurn_ExploreFishing(t *testing.T) {
	h := testHero("h1")
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(7), 0.2) // a catch

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "Sold for 2 gold")
	assert.Equal(t, 2, repo.stored("h1").Gold)
}

func TestProcessHeroTurn_FatigueForcesRest(t *testing.T) {
	h := testHero("h1")
	h.Health = 20 // below 30% of 100
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(0), 0.1) // wander, then the 30% fatigue chance hits

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Contains(t, line, "makes camp")
	assert.Equal(t, domain.StateRest, repo.stored("h1").State)
}

func TestProcessHeroTurn_QuestStartSuppressesFatigue(t *testing.T) {
	h := testHero("h1")
	h.Health = 20
	repo := newFakeHeroRepo(h)
	quests := &fakeQuestService{startMsg: `Hero-h1 takes on the quest "Rats in the Cellar".`}

	eng, _ := newTestEngine(repo, &fakeHeroService{}, quests)
	eng.rnd = rndSeq(actionDraw(5), 0.1)

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	// Picking up a quest commits the hero to it, wounded or not.
	assert.Equal(t, quests.startMsg, line)
	assert.Equal(t, domain.StateAdventure, repo.stored("h1").State)
}

func TestProcessHeroTurn_EmptyQuestBoardAllowsFatigue(t *testing.T) {
	h := testHero("h1")
	h.Health = 20
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(5), 0.1)

	line := eng.ProcessHeroTurn(context.Background(), "h1")

	// With nothing started, the notice-board visit is plain wandering and
	// exhaustion still applies.
	assert.Contains(t, line, "makes camp")
	assert.Equal(t, domain.StateRest, repo.stored("h1").State)
}

func TestProcessHeroTurn_NoFatigueAtHighHealth(t *testing.T) {
	h := testHero("h1")
	repo := newFakeHeroRepo(h)

	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(0), 0.1)

	eng.ProcessHeroTurn(context.Background(), "h1")

	assert.Equal(t, domain.StateAdventure, repo.stored("h1").State)
}

func TestProcessHeroTurn_UnknownHero(t *testing.T) {
	repo := newFakeHeroRepo()
	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})

	line := eng.ProcessHeroTurn(context.Background(), "nobody")

	assert.Equal(t, "turn processing failed for hero nobody", line)
}

func TestProcessAllHeroes(t *testing.T) {
	repo := newFakeHeroRepo(testHero("h1"), testHero("h2"))
	eng, _ := newTestEngine(repo, &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(actionDraw(0))

	processed := eng.ProcessAllHeroes(context.Background())

	require.Equal(t, 2, processed)
	for _, id := range []string{"h1", "h2"} {
		line, ok := eng.LastAction(id)
		assert.True(t, ok, id)
		assert.NotEmpty(t, line)
	}
}

func TestLastAction_UnknownHero(t *testing.T) {
	eng, _ := newTestEngine(newFakeHeroRepo(), &fakeHeroService{}, &fakeQuestService{})

	_, ok := eng.LastAction("nobody")
	assert.False(t, ok)
}

func TestRunGlobalEvent(t *testing.T) {
	eng, _ := newTestEngine(newFakeHeroRepo(), &fakeHeroService{}, &fakeQuestService{})
	eng.rnd = rndSeq(0.0)

	msg := eng.RunGlobalEvent(context.Background())

	assert.Equal(t, globalEvents[0], msg)
	last, ok := eng.LastGlobalEvent()
	require.True(t, ok)
	assert.Equal(t, msg, last)
}
