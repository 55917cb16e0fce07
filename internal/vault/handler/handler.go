// Package handler is the thin HTTP layer over the vault facade. It translates
// wire shapes into domain values and delegates; no authorization decisions
// live here.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"warden/internal/platform/secrets"
	"warden/internal/vault/models"
	"warden/pkg/domain"
	dErrors "warden/pkg/domain-errors"
	"warden/pkg/platform/httputil"
	"warden/pkg/requestcontext"
)

// BootstrapSecretHeader carries the shared secret that protects Initialize.
const BootstrapSecretHeader = "X-Bootstrap-Secret"

// Service defines the vault operations the handler exposes.
type Service interface {
	Initialize(ctx context.Context, admin domain.Principal) error
	GrantRole(ctx context.Context, caller, account domain.Principal, role domain.Role) error
	RevokeRole(ctx context.Context, caller, account domain.Principal, role domain.Role) error
	HasRole(ctx context.Context, account domain.Principal, role domain.Role) (bool, error)
	GetAdmin(ctx context.Context) (domain.Principal, error)
}

// Handler handles the vault endpoints.
type Handler struct {
	vault  Service
	logger *slog.Logger

	// bcrypt hash of the bootstrap secret; empty disables the check, which is
	// only acceptable for local development.
	bootstrapHash string
}

// New creates a vault Handler.
func New(vault Service, logger *slog.Logger, bootstrapHash string) *Handler {
	return &Handler{
		vault:         vault,
		logger:        logger,
		bootstrapHash: bootstrapHash,
	}
}

// Register registers the vault routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/vault/initialize", h.handleInitialize)
	r.Post("/vault/roles/grant", h.handleGrantRole)
	r.Post("/vault/roles/revoke", h.handleRevokeRole)
	r.Get("/vault/roles/{role}/{principal}", h.handleHasRole)
	r.Get("/vault/admin", h.handleGetAdmin)
}

// handleInitialize bootstraps the vault with its admin principal. The call is
// gated by the deployment's bootstrap secret rather than the role guard,
// because no admin exists yet.
func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.bootstrapHash != "" {
		if err := secrets.Verify(r.Header.Get(BootstrapSecretHeader), h.bootstrapHash); err != nil {
			h.logger.WarnContext(ctx, "initialize rejected: bad bootstrap secret",
				"request_id", requestcontext.RequestID(ctx),
			)
			httputil.WriteError(w, err)
			return
		}
	}

	var req models.InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	admin, err := domain.ParsePrincipal(req.Admin)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.vault.Initialize(ctx, admin); err != nil {
		h.writeFailure(ctx, w, "initialize", err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, models.AdminResponse{Admin: admin.String()})
}

func (h *Handler) handleGrantRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := h.decodeRoleChange(w, r)
	if !ok {
		return
	}

	if err := h.vault.GrantRole(ctx, req.caller, req.account, req.role); err != nil {
		h.writeFailure(ctx, w, "grant_role", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRevokeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := h.decodeRoleChange(w, r)
	if !ok {
		return
	}

	if err := h.vault.RevokeRole(ctx, req.caller, req.account, req.role); err != nil {
		h.writeFailure(ctx, w, "revoke_role", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleHasRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	role, err := domain.ParseRole(chi.URLParam(r, "role"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	account, err := domain.ParsePrincipal(chi.URLParam(r, "principal"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	has, err := h.vault.HasRole(ctx, account, role)
	if err != nil {
		h.writeFailure(ctx, w, "has_role", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.HasRoleResponse{
		Account: account.String(),
		Role:    role.String(),
		HasRole: has,
	})
}

func (h *Handler) handleGetAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	admin, err := h.vault.GetAdmin(ctx)
	if err != nil {
		h.writeFailure(ctx, w, "get_admin", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, models.AdminResponse{Admin: admin.String()})
}

type roleChange struct {
	caller  domain.Principal
	account domain.Principal
	role    domain.Role
}

// decodeRoleChange parses the shared grant/revoke request shape. It writes the
// error response itself and reports whether the caller should proceed.
func (h *Handler) decodeRoleChange(w http.ResponseWriter, r *http.Request) (roleChange, bool) {
	var req models.RoleChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return roleChange{}, false
	}

	caller, err := domain.ParsePrincipal(req.Caller)
	if err != nil {
		httputil.WriteError(w, err)
		return roleChange{}, false
	}
	account, err := domain.ParsePrincipal(req.Account)
	if err != nil {
		httputil.WriteError(w, err)
		return roleChange{}, false
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		httputil.WriteError(w, err)
		return roleChange{}, false
	}
	return roleChange{caller: caller, account: account, role: role}, true
}

// writeFailure logs the rejection and writes the error envelope. Expected
// domain rejections log at warn; anything else is an internal failure.
func (h *Handler) writeFailure(ctx context.Context, w http.ResponseWriter, operation string, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, "vault operation failed",
			"operation", operation,
			"error", err.Error(),
			"request_id", requestcontext.RequestID(ctx),
		)
	} else {
		h.logger.WarnContext(ctx, "vault operation rejected",
			"operation", operation,
			"code", string(code),
			"request_id", requestcontext.RequestID(ctx),
		)
	}
	httputil.WriteError(w, err)
}
