// Package api exposes the block registry and the code generator over HTTP
// for editor frontends: block definitions as JSON, and program-to-Lua
// generation on demand.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/blocklua-lang/blocklua/internal/introspect"
	"github.com/blocklua-lang/blocklua/internal/web/reload"
	"github.com/blocklua-lang/blocklua/pkg/block"
	"github.com/blocklua-lang/blocklua/pkg/luacheck"
	"github.com/blocklua-lang/blocklua/pkg/registry"
	"github.com/blocklua-lang/blocklua/pkg/workspace"
)

// Handler serves the editor-facing endpoints.
type Handler struct {
	reg    *registry.Registry
	hub    *reload.Hub
	logger *zap.Logger
}

// NewRouter builds the chi router for the dev server. The hub is optional;
// without it the /ws endpoint is not mounted.
func NewRouter(reg *registry.Registry, hub *reload.Hub, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{reg: reg, hub: hub, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/blocks", h.listBlocks)
	r.Get("/blocks/{name}", h.getBlock)
	r.Post("/generate", h.generate)
	if hub != nil {
		r.Get("/ws", hub.Handler)
	}
	return r
}

func (h *Handler) listBlocks(w http.ResponseWriter, r *http.Request) {
	infos, err := introspect.DescribeAll(h.reg)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"blocks": infos})
}

func (h *Handler) getBlock(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	t, ok := h.reg.Lookup(name)
	if !ok {
		h.writeError(w, http.StatusNotFound, block.NewDefinitionError(
			block.KindConfiguration, block.ErrUnregisteredBlock, name,
			"block type %q is not registered", name))
		return
	}
	info, err := introspect.Describe(t)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeJSON(w, http.StatusOK, info)
}

type generateResponse struct {
	Code string `json:"code"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	ws, err := workspace.Load(body, h.reg)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	code, err := workspace.NewCodeGen(h.logger).Program(ws)
	if err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err := luacheck.Check(code); err != nil {
		h.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if h.hub != nil {
		h.hub.BroadcastGenerated(code)
	}
	h.writeJSON(w, http.StatusOK, generateResponse{Code: code})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	var defErr *block.DefinitionError
	if errors.As(err, &defErr) {
		json.NewEncoder(w).Encode(map[string]any{"error": defErr})
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
