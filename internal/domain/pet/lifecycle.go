package pet

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrUnknownToken rejects food or activity tokens outside the catalogs.
var ErrUnknownToken = errors.New("unknown token")

// NewState creates a fresh baby pet of the given species.
func NewState(name string, species Species) State {
	return State{
		Lifecycle: StateBaby,
		Species:   species,
		Name:      name,
		Stamina:   InitialStamina,
		Happiness: InitialHappiness,
		Health:    InitialHealth,
		Turn:      0,
	}
}

// RandomSpecies picks uniformly from the species catalog. Creation is the
// one intentionally randomized input of the engine; callers needing
// determinism supply their own picker instead.
func RandomSpecies(r *rand.Rand) Species {
	if r == nil {
		return AllSpecies[rand.Intn(len(AllSpecies))]
	}
	return AllSpecies[r.Intn(len(AllSpecies))]
}

// ApplyFood advances the pet by one food action. Unknown tokens are
// rejected without touching the state.
func ApplyFood(state State, food string) (State, error) {
	effect, ok := FoodEffects[food]
	if !ok {
		return State{}, fmt.Errorf("%w: food %s", ErrUnknownToken, food)
	}
	return applyAction(state, effect, food), nil
}

// ApplyPlay advances the pet by one play action.
func ApplyPlay(state State, activity string) (State, error) {
	effect, ok := PlayEffects[activity]
	if !ok {
		return State{}, fmt.Errorf("%w: activity %s", ErrUnknownToken, activity)
	}
	return applyAction(state, effect, activity), nil
}

// applyAction is the shared transition. The check order is load-bearing:
// terminal no-op, baby skiing, overfed (pre-clamp), skiing crash (pre-action
// values), then clamp + turn increment, low-stat deaths, phase from turn.
// The three pre-clamp deaths leave turn and stats at their prior values.
func applyAction(state State, effect Effect, token string) State {
	if state.Terminal() {
		return state
	}

	if token == ActivitySkiing && state.Lifecycle == StateBaby {
		state.Lifecycle = StateDead
		state.DeathReason = DeathReasonBabySkiing
		return state
	}

	newStamina := state.Stamina + effect.Stamina
	newHappiness := state.Happiness + effect.Happiness
	newHealth := state.Health + effect.Health

	if newStamina > OverfedThreshold {
		state.Lifecycle = StateDead
		state.DeathReason = DeathReasonOverfed
		return state
	}

	if token == ActivitySkiing {
		if (state.Turn*7+state.Stamina)%SkiCrashModulus == 0 {
			state.Lifecycle = StateDead
			state.DeathReason = DeathReasonSkiCrash
			return state
		}
	}

	state.Stamina = clampStat(newStamina)
	state.Happiness = clampStat(newHappiness)
	state.Health = clampStat(newHealth)
	state.Turn++

	switch {
	case state.Stamina < MinStat:
		state.Lifecycle = StateDead
		state.DeathReason = DeathReasonStarved
	case state.Happiness < MinStat:
		state.Lifecycle = StateDead
		state.DeathReason = DeathReasonSadness
	case state.Health < MinStat:
		state.Lifecycle = StateDead
		state.DeathReason = DeathReasonPoorHealth
	default:
		state.Lifecycle = lifecycleForTurn(state.Turn)
	}
	return state
}

func lifecycleForTurn(turn int) LifecycleState {
	switch {
	case turn <= BabyMaxTurn:
		return StateBaby
	case turn <= ChildMaxTurn:
		return StateChild
	case turn <= AdultMaxTurn:
		return StateAdult
	default:
		return StateComplete
	}
}

func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}
