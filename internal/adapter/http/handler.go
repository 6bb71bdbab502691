package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"chatagotchi/internal/app/auth"
	"chatagotchi/internal/app/game"
	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const userIDHeader = "X-User-ID"
const userKeyHeader = "X-User-Key"

type Handler struct {
	RegisterUC auth.RegisterUseCase
	AuthUC     auth.VerifyUseCase
	GameUC     game.UseCase
	KPI        kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	api := s.Group("/api/game")
	api.POST("/new", h.newGame)
	api.POST("/feed", h.feed)
	api.POST("/play", h.play)
	api.GET("/status", h.status)
	api.GET("/achievements", h.achievements)
	api.GET("/history", h.history)

	s.POST("/api/register", h.register)
	s.GET("/ops/kpi", h.kpi)
}

type newGameRequest struct {
	Name string `json:"name"`
}

type feedRequest struct {
	Food string `json:"food"`
}

type playRequest struct {
	Activity string `json:"activity"`
}

// noPetResponse matches the action result shape so clients can render both
// with the same code path.
type noPetResponse struct {
	Pet             *pet.State `json:"petState"`
	NewAchievements []string   `json:"newAchievements"`
	Message         string     `json:"message"`
}

func (h Handler) newGame(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireAuthenticatedUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body newGameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.GameUC.StartNewGame(c, userID, body.Name)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) feed(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireAuthenticatedUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body feedRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.GameUC.FeedPet(c, userID, body.Food)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeActionResult(ctx, resp)
}

func (h Handler) play(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireAuthenticatedUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}

	var body playRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	resp, err := h.GameUC.PlayWithPet(c, userID, body.Activity)
	if err != nil {
		writeError(ctx, err)
		return
	}
	writeActionResult(ctx, resp)
}

func writeActionResult(ctx *app.RequestContext, resp *game.Result) {
	if resp == nil {
		ctx.JSON(consts.StatusOK, noPetResponse{
			NewAchievements: []string{},
			Message:         game.NoPetMessage,
		})
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireAuthenticatedUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.GameUC.Status(c, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) achievements(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireAuthenticatedUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.GameUC.Achievements(c, userID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) history(c context.Context, ctx *app.RequestContext) {
	userID, err := h.requireAuthenticatedUser(c, ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	limit, _ := strconv.Atoi(string(ctx.Query("limit")))
	resp, err := h.GameUC.History(c, userID, limit)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) register(c context.Context, ctx *app.RequestContext) {
	resp, err := h.RegisterUC.Execute(c, auth.RegisterRequest{})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingUserIDHeader = errors.New("missing x-user-id header")
var ErrMissingUserKeyHeader = errors.New("missing x-user-key header")
var ErrMissingUserCredentials = errors.New("missing user credentials")

func (h Handler) requireAuthenticatedUser(c context.Context, ctx *app.RequestContext) (string, error) {
	userID := strings.TrimSpace(string(ctx.GetHeader(userIDHeader)))
	userKey := strings.TrimSpace(string(ctx.GetHeader(userKeyHeader)))
	if userID == "" && userKey == "" {
		return "", ErrMissingUserCredentials
	}
	if userID == "" {
		return "", ErrMissingUserIDHeader
	}
	if userKey == "" {
		return "", ErrMissingUserKeyHeader
	}
	if err := h.AuthUC.Execute(c, auth.VerifyRequest{
		UserID:  userID,
		UserKey: userKey,
	}); err != nil {
		return "", err
	}
	return userID, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingUserCredentials):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_user_credentials", err.Error())
	case errors.Is(err, ErrMissingUserIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_user_id", err.Error())
	case errors.Is(err, ErrMissingUserKeyHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_user_key", err.Error())
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeErrorBody(ctx, consts.StatusUnauthorized, "invalid_user_credentials", err.Error())
	case errors.Is(err, game.ErrAuthInfoMissing):
		writeErrorBody(ctx, consts.StatusUnauthorized, "auth_info_missing", err.Error())
	case errors.Is(err, pet.ErrUnknownToken):
		writeErrorBody(ctx, consts.StatusBadRequest, "unknown_token", err.Error())
	case errors.Is(err, game.ErrInvalidRequest), errors.Is(err, auth.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
