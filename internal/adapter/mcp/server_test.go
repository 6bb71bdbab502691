package mcpadapter

import (
	"context"
	"strings"
	"testing"

	"chatagotchi/internal/adapter/repo/memory"
	"chatagotchi/internal/app/game"
	"chatagotchi/internal/domain/pet"
)

func testUseCase() game.UseCase {
	store := memory.NewStore()
	return game.UseCase{
		TxManager:   memory.NewTxManager(store),
		Records:     memory.NewGameRecordRepo(store),
		Events:      memory.NewEventRepo(store),
		PickSpecies: func() pet.Species { return pet.SpeciesDog },
	}
}

func TestStaticUserResolver_Empty(t *testing.T) {
	resolve := StaticUserResolver("  ")
	if _, err := resolve(context.Background()); err != game.ErrAuthInfoMissing {
		t.Fatalf("expected ErrAuthInfoMissing, got %v", err)
	}
}

func TestNewGameHandler_StartsGame(t *testing.T) {
	uc := testUseCase()
	handler := NewGameHandler(uc, StaticUserResolver("usr-1"))

	_, result, err := handler(context.Background(), nil, NewGameInput{Name: "Mochi"})
	if err != nil {
		t.Fatalf("new game error: %v", err)
	}
	if result.PetState == nil {
		t.Fatalf("expected pet state")
	}
	if result.PetState.Name != "Mochi" || result.PetState.Lifecycle != pet.StateBaby {
		t.Fatalf("unexpected pet: %+v", result.PetState)
	}
	if got, want := result.Message, "Say hello to Mochi"; got != want {
		t.Fatalf("message mismatch: got=%q want=%q", got, want)
	}
}

func TestFeedHandler_WithoutPetReturnsPrompt(t *testing.T) {
	uc := testUseCase()
	handler := FeedHandler(uc, StaticUserResolver("usr-1"))

	_, result, err := handler(context.Background(), nil, FeedInput{Food: pet.FoodApple})
	if err != nil {
		t.Fatalf("feed error: %v", err)
	}
	if result.PetState != nil {
		t.Fatalf("expected nil pet state, got %+v", result.PetState)
	}
	if got, want := result.Message, game.NoPetMessage; got != want {
		t.Fatalf("message mismatch: got=%q want=%q", got, want)
	}
}

func TestFeedHandler_AdvancesTurn(t *testing.T) {
	uc := testUseCase()
	ctx := context.Background()
	if _, err := uc.StartNewGame(ctx, "usr-1", "Mochi"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	handler := FeedHandler(uc, StaticUserResolver("usr-1"))

	_, result, err := handler(ctx, nil, FeedInput{Food: pet.FoodApple})
	if err != nil {
		t.Fatalf("feed error: %v", err)
	}
	if result.PetState == nil || result.PetState.Turn != 1 {
		t.Fatalf("expected turn 1, got %+v", result.PetState)
	}
	if !strings.Contains(result.Message, "Fed Mochi") {
		t.Fatalf("unexpected message: %q", result.Message)
	}
}

func TestFeedHandler_UnknownFoodFails(t *testing.T) {
	uc := testUseCase()
	ctx := context.Background()
	if _, err := uc.StartNewGame(ctx, "usr-1", "Mochi"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	handler := FeedHandler(uc, StaticUserResolver("usr-1"))

	_, _, err := handler(ctx, nil, FeedInput{Food: "🌮"})
	if err == nil {
		t.Fatalf("expected error for unknown food")
	}
}

func TestStatusHandler_ReportsSnapshot(t *testing.T) {
	uc := testUseCase()
	ctx := context.Background()
	handler := StatusHandler(uc, StaticUserResolver("usr-1"))

	_, result, err := handler(ctx, nil, StatusInput{})
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	if result.PetState != nil {
		t.Fatalf("expected nil pet before game start")
	}

	if _, err := uc.StartNewGame(ctx, "usr-1", "Mochi"); err != nil {
		t.Fatalf("start game: %v", err)
	}
	_, result, err = handler(ctx, nil, StatusInput{})
	if err != nil {
		t.Fatalf("status error: %v", err)
	}
	if result.PetState == nil || result.Glyph == "" {
		t.Fatalf("expected pet with glyph, got %+v", result)
	}
}

func TestAchievementsHandler_ListsCatalog(t *testing.T) {
	uc := testUseCase()
	handler := AchievementsHandler(uc, StaticUserResolver("usr-1"))

	_, result, err := handler(context.Background(), nil, AchievementsInput{})
	if err != nil {
		t.Fatalf("achievements error: %v", err)
	}
	if got, want := len(result.Achievements), len(pet.Catalog); got != want {
		t.Fatalf("catalog size mismatch: got=%d want=%d", got, want)
	}
	if len(result.UnlockedAchievements) != 0 {
		t.Fatalf("expected no unlocks, got %v", result.UnlockedAchievements)
	}
}

func TestHandlers_RejectMissingUser(t *testing.T) {
	uc := testUseCase()
	handler := NewGameHandler(uc, StaticUserResolver(""))

	_, _, err := handler(context.Background(), nil, NewGameInput{Name: "Mochi"})
	if err != game.ErrAuthInfoMissing {
		t.Fatalf("expected ErrAuthInfoMissing, got %v", err)
	}
}
