package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/medvault/medvault-backend/internal/domain"
	"github.com/medvault/medvault-backend/internal/service/deletion"
	"github.com/medvault/medvault-backend/pkg/ctxutil"
)

// deletionService defines the minimal interface needed by DeletionHandler.
type deletionService interface {
	DeleteAccount(ctx context.Context, input deletion.DeleteAccountInput) (*deletion.AccountResult, error)
	DeleteProfile(ctx context.Context, input deletion.DeleteProfileInput) (*deletion.ProfileResult, error)
}

// DeletionHandler serves the account and profile deletion endpoints.
type DeletionHandler struct {
	svc deletionService
	log *slog.Logger
}

// NewDeletionHandler creates a DeletionHandler.
func NewDeletionHandler(svc deletionService, logger *slog.Logger) *DeletionHandler {
	return &DeletionHandler{svc: svc, log: logger.With("handler", "deletion")}
}

type deleteAccountRequest struct {
	Confirmation string `json:"confirmation"`
}

type deleteAccountResponse struct {
	Message string `json:"message"`
	Mode    string `json:"mode"`
}

type deleteProfileRequest struct {
	ProfileID string `json:"profileId"`
}

type deleteProfileResponse struct {
	Deleted           bool `json:"deleted"`
	RemovedVaultFiles int  `json:"removedVaultFiles"`
}

type residueResponse struct {
	Error     string   `json:"error"`
	Remaining int      `json:"remaining"`
	Sample    []string `json:"sample"`
}

// DeleteAccount handles POST /account/delete.
func (h *DeletionHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.AccountIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req deleteAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.DeleteAccount(r.Context(), deletion.DeleteAccountInput{
		Confirmation: req.Confirmation,
	})
	if err != nil {
		h.handleError(w, r, domain.DeletionFlowAccount, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteAccountResponse{
		Message: "Account deleted",
		Mode:    result.Mode.String(),
	})
}

// DeleteProfile handles POST /profile/delete.
func (h *DeletionHandler) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	if _, ok := ctxutil.AccountIDFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req deleteProfileRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	raw := strings.TrimSpace(req.ProfileID)
	if raw == "" {
		writeError(w, http.StatusBadRequest, "profileId is required")
		return
	}
	profileID, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "profileId must be a UUID")
		return
	}

	result, err := h.svc.DeleteProfile(r.Context(), deletion.DeleteProfileInput{ProfileID: profileID})
	if err != nil {
		h.handleError(w, r, domain.DeletionFlowProfile, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteProfileResponse{
		Deleted:           true,
		RemovedVaultFiles: result.RemovedVaultFiles,
	})
}

// handleError maps a deletion error to a response. Only the rejections a
// deletion raises before mutating anything are client errors. Everything a
// stage fails with is a 500 carrying the cause, whatever the adapter
// classified it as.
func (h *DeletionHandler) handleError(w http.ResponseWriter, r *http.Request, flow domain.DeletionFlow, err error) {
	var (
		residue *domain.ResidueError
		staged  *deletion.StageError
	)
	inStage := errors.As(err, &staged)

	switch {
	case errors.Is(err, domain.ErrProfileNotOwned), errors.Is(err, domain.ErrPrimaryProfile):
		writeError(w, http.StatusForbidden, causeMessage(err))
	case errors.Is(err, domain.ErrDeletionInProgress):
		writeError(w, http.StatusConflict, domain.ErrDeletionInProgress.Error())
	case !inStage && errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case !inStage && errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.As(err, &residue):
		if flow == domain.DeletionFlowProfile {
			writeJSON(w, http.StatusInternalServerError, residueResponse{
				Error:     "Could not fully remove vault files",
				Remaining: residue.Remaining(),
				Sample:    residue.Sample(),
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "vault cleanup incomplete: "+residue.Error())
	default:
		stage, _ := deletion.FailedStage(err)
		h.log.ErrorContext(r.Context(), "deletion failed",
			slog.String("flow", flow.String()),
			slog.String("stage", stage.String()),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, flow.String()+" deletion failed: "+causeMessage(err))
	}
}

// causeMessage strips the stage prefix from a deletion error.
func causeMessage(err error) string {
	var se *deletion.StageError
	if errors.As(err, &se) {
		return se.Err.Error()
	}
	return err.Error()
}
