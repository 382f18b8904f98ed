package httpapi

import "net/http"

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, leagues)
}

func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByLeague")
	defer span.End()

	code := r.PathValue("code")
	teamName := r.URL.Query().Get("team_name")

	players, err := h.leagueService.ListPlayersByLeagueCode(ctx, code, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by league failed", "code", code, "team_name", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, players)
}
