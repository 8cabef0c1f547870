// Package handlers provides HTTP handlers for the tool API
package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/alchemorsel/personal-chef/internal/ports/inbound"
	"github.com/alchemorsel/personal-chef/pkg/errors"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// maxBodyBytes caps tool request bodies
const maxBodyBytes = 1 << 20

// ToolHandlers exposes the chef tools over HTTP
type ToolHandlers struct {
	service inbound.ChefService
	logger  *zap.Logger
}

// NewToolHandlers creates a new tool handlers instance
func NewToolHandlers(service inbound.ChefService, logger *zap.Logger) *ToolHandlers {
	return &ToolHandlers{
		service: service,
		logger:  logger.Named("tool-handlers"),
	}
}

// Routes registers the tool endpoints
func (h *ToolHandlers) Routes(r chi.Router) {
	r.Post("/tools/recipe", h.PresentRecipe)
	r.Post("/tools/generate_shopping_list", h.GenerateShoppingList)
	r.Post("/tools/send_shopping_list_email", h.SendShoppingList)
	r.Post("/recipes/scale", h.ScaleRecipe)
}

// PresentRecipe handles POST /api/v1/tools/recipe
func (h *ToolHandlers) PresentRecipe(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.PresentRecipeCommand
	if !h.decode(w, r, &cmd) {
		return
	}

	result, err := h.service.PresentRecipe(r.Context(), cmd)
	h.writeToolResult(w, r, result, err)
}

// GenerateShoppingList handles POST /api/v1/tools/generate_shopping_list
func (h *ToolHandlers) GenerateShoppingList(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.ShoppingListCommand
	if !h.decode(w, r, &cmd) {
		return
	}

	result, err := h.service.GenerateShoppingList(r.Context(), cmd)
	h.writeToolResult(w, r, result, err)
}

// SendShoppingList handles POST /api/v1/tools/send_shopping_list_email
func (h *ToolHandlers) SendShoppingList(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.SendShoppingListCommand
	if !h.decode(w, r, &cmd) {
		return
	}

	result, err := h.service.SendShoppingList(r.Context(), cmd)
	h.writeToolResult(w, r, result, err)
}

// ScaleRecipe handles POST /api/v1/recipes/scale
func (h *ToolHandlers) ScaleRecipe(w http.ResponseWriter, r *http.Request) {
	var cmd inbound.ScaleRecipeCommand
	if !h.decode(w, r, &cmd) {
		return
	}

	scaled, err := h.service.ScaleRecipe(r.Context(), cmd)
	if err != nil {
		h.writeError(w, r, errors.Wrap(err, ""))
		return
	}

	h.writeJSON(w, http.StatusOK, scaled)
}

// decode reads a JSON body into dst and writes a 400 on failure
func (h *ToolHandlers) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		details := "invalid JSON body"
		if err == io.EOF {
			details = "request body is empty"
		}
		h.logger.Debug("Rejected request body", zap.String("path", r.URL.Path), zap.Error(err))
		h.writeError(w, r, errors.NewAppError(errors.CodeBadRequest, "Bad request", details).WithCause(err))
		return false
	}
	return true
}

// writeToolResult writes the tool envelope. Failed calls still carry the
// envelope so the chat client can show the error text.
func (h *ToolHandlers) writeToolResult(w http.ResponseWriter, r *http.Request, result *inbound.ToolResult, err error) {
	if err == nil {
		h.writeJSON(w, http.StatusOK, result)
		return
	}

	appErr := errors.Wrap(err, "")
	if result == nil {
		h.writeError(w, r, appErr)
		return
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		h.logger.Error("Tool call failed",
			zap.String("request_id", chimiddleware.GetReqID(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
	h.writeJSON(w, appErr.StatusCode(), result)
}

func (h *ToolHandlers) writeError(w http.ResponseWriter, r *http.Request, appErr *errors.AppError) {
	h.writeJSON(w, appErr.StatusCode(), errors.ToErrorResponse(appErr, chimiddleware.GetReqID(r.Context())))
}

// writeJSON writes a JSON response
func (h *ToolHandlers) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}
