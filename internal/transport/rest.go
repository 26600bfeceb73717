// Package transport exposes the game over HTTP/JSON and the gRPC health service.
package transport

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/passblock-backend/internal/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// UserHeader carries the caller id established by the authentication proxy.
const UserHeader = "X-User-Id"

const maxBodyBytes = 4 << 10

// RESTHandler serves the /v1 JSON surface.
type RESTHandler struct {
	game      Game
	budgets   Budgets
	ranks     Ranks
	marshaler gwruntime.Marshaler
	logger    *zap.Logger
}

// NewRESTHandler builds the handler and registers its routes on a gateway mux.
func NewRESTHandler(game Game, budgets Budgets, ranks Ranks, logger *zap.Logger) (http.Handler, error) {
	switch {
	case game == nil:
		return nil, errors.New("game is required")
	case budgets == nil:
		return nil, errors.New("budgets is required")
	case ranks == nil:
		return nil, errors.New("ranks is required")
	case logger == nil:
		return nil, errors.New("logger is required")
	}
	h := &RESTHandler{
		game:      game,
		budgets:   budgets,
		ranks:     ranks,
		marshaler: &gwruntime.JSONBuiltin{},
		logger:    logger.Named("rest"),
	}

	mux := gwruntime.NewServeMux()
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodPost, "/v1/users", h.registerUser},
		{http.MethodGet, "/v1/users/{id}/budget", h.userBudget},
		{http.MethodGet, "/v1/users/{id}/rank", h.userRank},
		{http.MethodGet, "/v1/blocks/{ref}", h.block},
		{http.MethodGet, "/v1/blocks/{id}/attempts", h.attempts},
		{http.MethodPost, "/v1/blocks/{id}/submissions", h.submit},
		{http.MethodPost, "/v1/blocks/{id}/hint", h.hint},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return nil, fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return mux, nil
}

type registerRequest struct {
	UserID uint64     `json:"user_id"`
	Tier   model.Tier `json:"tier"`
}

func (h *RESTHandler) registerUser(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req registerRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	budget, err := h.budgets.Register(r.Context(), req.UserID, req.Tier)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusCreated, budget)
}

func (h *RESTHandler) userBudget(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := parseID(params["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	budget, err := h.budgets.Budget(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, budget)
}

func (h *RESTHandler) userRank(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := parseID(params["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rank, err := h.ranks.Rank(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, rank)
}

// block resolves "active", "latest" or a numeric id.
func (h *RESTHandler) block(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var (
		b   model.Block
		err error
	)
	switch ref := params["ref"]; ref {
	case "active":
		b, err = h.game.ActiveBlock(r.Context())
	case "latest":
		b, err = h.game.LatestBlock(r.Context())
	default:
		var id uint64
		if id, err = parseID(ref); err == nil {
			b, err = h.game.Block(r.Context(), id)
		}
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, b.Public())
}

func (h *RESTHandler) attempts(w http.ResponseWriter, r *http.Request, params map[string]string) {
	id, err := parseID(params["id"])
	if err != nil {
		h.fail(w, r, err)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit < 0 {
			h.fail(w, r, fmt.Errorf("limit %q: %w", raw, model.ErrInvalidArgument))
			return
		}
	}
	attempts, err := h.game.Attempts(r.Context(), id, limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, attempts)
}

type submitRequest struct {
	Value string `json:"value"`
}

func (h *RESTHandler) submit(w http.ResponseWriter, r *http.Request, params map[string]string) {
	blockID, userID, err := h.caller(r, params)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req submitRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	result, err := h.game.Submit(r.Context(), blockID, userID, req.Value)
	if errors.Is(err, model.ErrAlreadySolved) {
		h.write(w, http.StatusConflict, errorBody{
			Kind:    model.KindAlreadySolved,
			Message: "another player solved the block first; your compute power was refunded",
			Result:  &result,
		})
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, result)
}

type hintRequest struct {
	Hint string `json:"hint"`
}

func (h *RESTHandler) hint(w http.ResponseWriter, r *http.Request, params map[string]string) {
	blockID, userID, err := h.caller(r, params)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	var req hintRequest
	if err := h.decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	b, err := h.game.SubmitHint(r.Context(), blockID, userID, req.Hint)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.write(w, http.StatusOK, b.Public())
}

func (h *RESTHandler) caller(r *http.Request, params map[string]string) (blockID, userID uint64, err error) {
	if blockID, err = parseID(params["id"]); err != nil {
		return 0, 0, err
	}
	raw := strings.TrimSpace(r.Header.Get(UserHeader))
	if raw == "" {
		return 0, 0, fmt.Errorf("missing %s header: %w", UserHeader, model.ErrInvalidArgument)
	}
	if userID, err = parseID(raw); err != nil {
		return 0, 0, err
	}
	return blockID, userID, nil
}

func (h *RESTHandler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := h.marshaler.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode request body: %v: %w", err, model.ErrInvalidArgument)
	}
	return nil
}

func (h *RESTHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	kind := model.Kind(err)
	status := httpStatus(kind)
	message := err.Error()
	if status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		message = "internal error"
	} else {
		h.logger.Debug("request rejected",
			zap.String("path", r.URL.Path),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
	}
	h.write(w, status, errorBody{Kind: kind, Message: message})
}

func (h *RESTHandler) write(w http.ResponseWriter, status int, v any) {
	payload, err := h.marshaler.Marshal(v)
	if err != nil {
		h.logger.Error("marshal response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		h.logger.Debug("write response", zap.Error(err))
	}
}

func parseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id %q: %w", raw, model.ErrInvalidArgument)
	}
	return id, nil
}
