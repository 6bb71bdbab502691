package mcpadapter

import (
	"context"
	"fmt"

	"chatagotchi/internal/app/game"
	"chatagotchi/internal/domain/pet"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewGameInput names the pet for a fresh game.
type NewGameInput struct {
	Name string `json:"name" jsonschema:"the name for the new pet"`
}

// FeedInput selects the food glyph to feed.
type FeedInput struct {
	Food string `json:"food" jsonschema:"the food to feed: 🍎 apple, 🍪 cookie, 🥗 salad, or 🍕 pizza"`
}

// PlayInput selects the activity glyph to play.
type PlayInput struct {
	Activity string `json:"activity" jsonschema:"the activity to do: 🎮 video games, 🏃 go for a run, or 🎿 skiing"`
}

// StatusInput has no arguments.
type StatusInput struct{}

// AchievementsInput has no arguments.
type AchievementsInput struct{}

// ActionResult mirrors the game service result, with a nil pet when no game
// has been started.
type ActionResult struct {
	PetState        *pet.State `json:"petState" jsonschema:"pet snapshot after the action, null when no game exists"`
	NewAchievements []string   `json:"newAchievements" jsonschema:"achievement ids unlocked by this action"`
	Message         string     `json:"message" jsonschema:"human-readable outcome"`
}

// StatusResult is a read-only pet snapshot.
type StatusResult struct {
	PetState *pet.State `json:"petState" jsonschema:"current pet snapshot, null when no game exists"`
	Glyph    string     `json:"glyph,omitempty" jsonschema:"display glyph for the pet's species and stage"`
}

// AchievementsResult lists the catalog alongside the user's unlocks.
type AchievementsResult struct {
	Achievements         []pet.Achievement `json:"achievements" jsonschema:"the full achievement catalog"`
	UnlockedAchievements []string          `json:"unlockedAchievements" jsonschema:"ids the user has unlocked"`
}

func NewGameTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "new-game",
		Description: "Kicks off a new game with a brand new pet. Be sure to name them!",
	}
}

func FeedTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "pet-feed",
		Description: "Feed your pet with 🍎 Apple, 🍪 Cookie, 🥗 Salad, or 🍕 Pizza",
	}
}

func PlayTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "pet-play",
		Description: "Play with your pet: 🎮 Video Games, 🏃 Go for Run, or 🎿 Skiing in Alps",
	}
}

func StatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "pet-status",
		Description: "Check on your pet's current stats and lifecycle stage",
	}
}

func AchievementsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "achievements",
		Description: "View all your unlocked and locked achievements",
	}
}

// NewGameHandler starts a fresh game for the resolved user.
func NewGameHandler(uc game.UseCase, resolve UserResolver) mcp.ToolHandlerFor[NewGameInput, ActionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input NewGameInput) (*mcp.CallToolResult, ActionResult, error) {
		userID, err := resolve(ctx)
		if err != nil {
			return nil, ActionResult{}, err
		}
		res, err := uc.StartNewGame(ctx, userID, input.Name)
		if err != nil {
			return nil, ActionResult{}, err
		}
		state := res.Pet
		result := ActionResult{
			PetState:        &state,
			NewAchievements: res.NewAchievements,
			Message:         res.Message,
		}
		return textResult(res.Message), result, nil
	}
}

// FeedHandler feeds the user's pet.
func FeedHandler(uc game.UseCase, resolve UserResolver) mcp.ToolHandlerFor[FeedInput, ActionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FeedInput) (*mcp.CallToolResult, ActionResult, error) {
		userID, err := resolve(ctx)
		if err != nil {
			return nil, ActionResult{}, err
		}
		res, err := uc.FeedPet(ctx, userID, input.Food)
		if err != nil {
			return nil, ActionResult{}, err
		}
		return actionToolResult(res)
	}
}

// PlayHandler plays an activity with the user's pet.
func PlayHandler(uc game.UseCase, resolve UserResolver) mcp.ToolHandlerFor[PlayInput, ActionResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PlayInput) (*mcp.CallToolResult, ActionResult, error) {
		userID, err := resolve(ctx)
		if err != nil {
			return nil, ActionResult{}, err
		}
		res, err := uc.PlayWithPet(ctx, userID, input.Activity)
		if err != nil {
			return nil, ActionResult{}, err
		}
		return actionToolResult(res)
	}
}

// StatusHandler reports the pet snapshot without mutating anything.
func StatusHandler(uc game.UseCase, resolve UserResolver) mcp.ToolHandlerFor[StatusInput, StatusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusResult, error) {
		userID, err := resolve(ctx)
		if err != nil {
			return nil, StatusResult{}, err
		}
		res, err := uc.Status(ctx, userID)
		if err != nil {
			return nil, StatusResult{}, err
		}
		result := StatusResult{PetState: res.Pet, Glyph: res.Glyph}
		if res.Pet == nil {
			return textResult(game.NoPetMessage), result, nil
		}
		msg := fmt.Sprintf("%s %s is %s (stamina %d, happiness %d, health %d, turn %d)",
			res.Glyph, res.Pet.Name, res.Pet.Lifecycle,
			res.Pet.Stamina, res.Pet.Happiness, res.Pet.Health, res.Pet.Turn)
		return textResult(msg), result, nil
	}
}

// AchievementsHandler lists the catalog and the user's unlocks.
func AchievementsHandler(uc game.UseCase, resolve UserResolver) mcp.ToolHandlerFor[AchievementsInput, AchievementsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ AchievementsInput) (*mcp.CallToolResult, AchievementsResult, error) {
		userID, err := resolve(ctx)
		if err != nil {
			return nil, AchievementsResult{}, err
		}
		res, err := uc.Achievements(ctx, userID)
		if err != nil {
			return nil, AchievementsResult{}, err
		}
		result := AchievementsResult{
			Achievements:         res.Achievements,
			UnlockedAchievements: res.UnlockedAchievements,
		}
		msg := fmt.Sprintf("You've unlocked %d out of %d achievements!", res.UnlockedCount, res.TotalCount)
		return textResult(msg), result, nil
	}
}

func actionToolResult(res *game.Result) (*mcp.CallToolResult, ActionResult, error) {
	if res == nil {
		result := ActionResult{NewAchievements: []string{}, Message: game.NoPetMessage}
		return textResult(game.NoPetMessage), result, nil
	}
	state := res.Pet
	result := ActionResult{
		PetState:        &state,
		NewAchievements: res.NewAchievements,
		Message:         res.Message,
	}
	return textResult(res.Message), result, nil
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}
