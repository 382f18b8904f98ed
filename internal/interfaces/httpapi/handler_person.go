package httpapi

import "net/http"

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	people, err := h.personService.ListPeople(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, people)
}

func (h *Handler) ListPlayersByTeamName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeamName")
	defer span.End()

	teamName := r.PathValue("team_name")

	people, err := h.personService.ListByTeamName(ctx, teamName)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by team failed", "team_name", teamName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, people)
}

func (h *Handler) ListCoaches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListCoaches")
	defer span.End()

	coaches, err := h.personService.ListCoaches(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list coaches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, coaches)
}
