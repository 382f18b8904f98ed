package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/rifqialifauzan/football-data-service/internal/usecase"
)

const maxImportBodySize = 1 << 20

type importLeagueRequest struct {
	LeagueCode string `json:"league_code" validate:"required"`
}

// ImportLeague triggers a synchronous competition import. The request blocks
// until the whole pipeline finishes, upstream backoff waits included.
func (h *Handler) ImportLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportLeague")
	defer span.End()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBodySize))
	if err != nil {
		writeMessage(ctx, w, http.StatusBadRequest, "read request body failed")
		return
	}

	var req importLeagueRequest
	if len(body) > 0 {
		if err := sonic.Unmarshal(body, &req); err != nil {
			writeMessage(ctx, w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	if err := h.validateRequest(ctx, req); err != nil {
		writeMessage(ctx, w, http.StatusBadRequest, "League code is required!")
		return
	}

	result, err := h.importService.ImportCompetition(ctx, req.LeagueCode)
	if err != nil {
		h.logger.ErrorContext(ctx, "import league failed", "league_code", req.LeagueCode, "error", err)

		status := http.StatusInternalServerError
		if errors.Is(err, usecase.ErrInvalidInput) {
			status = http.StatusBadRequest
		}
		writeMessage(ctx, w, status, fmt.Sprintf("Error processing data: %s", err.Error()))
		return
	}

	writeData(ctx, w, http.StatusOK, result)
}
