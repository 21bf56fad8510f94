package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/keymaster/pos/internal/backup"
	"github.com/keymaster/pos/pkg/web"
)

// maxBackupBytes bounds import uploads.
const maxBackupBytes = 32 << 20

// ExportBackup downloads the full shop state as one JSON document.
func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	doc, err := h.backups.Export(r.Context())
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error exporting backup", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to export backup")
		return
	}

	filename := fmt.Sprintf("KeyMaster_Backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	web.RespondJSON(w, mLogger, http.StatusOK, doc)
}

// ImportBackup restores the full shop state from an uploaded document.
// Incomplete or malformed documents are rejected without touching state.
func (h *Handler) ImportBackup(w http.ResponseWriter, r *http.Request) {
	mLogger := h.loggerWithReqID(r)
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxBackupBytes))
	if err != nil {
		mLogger.ErrorContext(r.Context(), "Error reading backup upload", "error", err)
		web.RespondError(w, mLogger, http.StatusBadRequest, "Failed to read backup file")
		return
	}

	if err := h.backups.Import(r.Context(), raw); err != nil {
		if errors.Is(err, backup.ErrInvalidDocument) {
			mLogger.WarnContext(r.Context(), "Backup import rejected", "error", err)
			web.RespondError(w, mLogger, http.StatusBadRequest, "The backup file is not valid")
			return
		}
		mLogger.ErrorContext(r.Context(), "Error importing backup", "error", err)
		web.RespondError(w, mLogger, http.StatusInternalServerError, "Failed to import backup")
		return
	}
	web.RespondJSON(w, mLogger, http.StatusOK, map[string]string{"status": "restored"})
}
