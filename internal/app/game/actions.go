package game

import (
	"context"
	"time"

	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"
)

// FeedPet applies one food action. A nil result with nil error means no pet
// exists yet and the caller should tell the user to start a game.
func (u UseCase) FeedPet(ctx context.Context, userID, food string) (*Result, error) {
	return u.applyAction(ctx, userID, actionSpec{
		token:     food,
		eventType: EventPetFed,
		apply:     pet.ApplyFood,
		phrase: func(p pet.State) string {
			return "Fed " + p.Name + " " + food + "!"
		},
	})
}

// PlayWithPet applies one play action, with the same no-pet contract as
// FeedPet.
func (u UseCase) PlayWithPet(ctx context.Context, userID, activity string) (*Result, error) {
	return u.applyAction(ctx, userID, actionSpec{
		token:     activity,
		eventType: EventPetPlayed,
		apply:     pet.ApplyPlay,
		phrase: func(p pet.State) string {
			return p.Name + " did " + activity + "!"
		},
	})
}

type actionSpec struct {
	token     string
	eventType string
	apply     func(pet.State, string) (pet.State, error)
	phrase    func(pet.State) string
}

func (u UseCase) applyAction(ctx context.Context, userID string, spec actionSpec) (*Result, error) {
	userID, err := resolveUser(userID)
	if err != nil {
		return nil, err
	}

	var out *Result
	var applied bool
	err = u.TxManager.RunInTx(ctx, func(txCtx context.Context) error {
		record, err := u.loadRecord(txCtx, userID)
		if err != nil {
			return err
		}
		if record.Pet == nil {
			out = nil
			return nil
		}
		current := *record.Pet
		if current.Terminal() {
			out = &Result{
				Pet:             current,
				NewAchievements: []string{},
				Message:         terminalMessage(current),
			}
			return nil
		}

		next, err := spec.apply(current, spec.token)
		if err != nil {
			return err
		}

		achievements := achievementsOrEmpty(record)
		earned := pet.CheckAchievements(next, achievements)
		if len(earned) > 0 {
			achievements.Unlocked = append(achievements.Unlocked, earned...)
		}

		saved := record
		saved.Pet = &next
		saved.Achievements = &achievements
		saved.Version = record.Version + 1
		saved.UpdatedAt = u.now()
		if err := u.Records.SaveWithVersion(txCtx, saved, record.Version); err != nil {
			return err
		}
		if err := u.appendActionEvents(txCtx, userID, spec, next, earned, saved.UpdatedAt); err != nil {
			return err
		}

		if earned == nil {
			earned = []string{}
		}
		applied = true
		out = &Result{
			Pet:             next,
			NewAchievements: earned,
			Message:         actionMessage(next, spec.phrase(next), earned),
		}
		return nil
	})
	if err != nil {
		u.recordError(err)
		return nil, err
	}
	if applied && u.Metrics != nil {
		u.Metrics.RecordAction(outcomeFor(out.Pet))
	}
	return out, nil
}

func (u UseCase) appendActionEvents(ctx context.Context, userID string, spec actionSpec, next pet.State, earned []string, at time.Time) error {
	if u.Events == nil {
		return nil
	}
	events := []ports.GameEvent{{
		Type:       spec.eventType,
		OccurredAt: at,
		Payload:    map[string]any{"token": spec.token, "turn": next.Turn},
	}}
	switch next.Lifecycle {
	case pet.StateDead:
		events = append(events, ports.GameEvent{
			Type:       EventPetDied,
			OccurredAt: at,
			Payload:    map[string]any{"reason": next.DeathReason, "turn": next.Turn},
		})
	case pet.StateComplete:
		events = append(events, ports.GameEvent{
			Type:       EventPetCompleted,
			OccurredAt: at,
			Payload:    map[string]any{"species": string(next.Species), "turn": next.Turn},
		})
	}
	if len(earned) > 0 {
		ids := make([]any, 0, len(earned))
		for _, id := range earned {
			ids = append(ids, id)
		}
		events = append(events, ports.GameEvent{
			Type:       EventAchievementUnlocked,
			OccurredAt: at,
			Payload:    map[string]any{"ids": ids},
		})
	}
	return u.Events.Append(ctx, userID, events)
}

func outcomeFor(p pet.State) ports.ActionOutcome {
	switch p.Lifecycle {
	case pet.StateDead:
		return ports.OutcomeDied
	case pet.StateComplete:
		return ports.OutcomeCompleted
	default:
		return ports.OutcomeAlive
	}
}
