package httpapi

import (
	"net/http"
	"strconv"
	"strings"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetTeamByID(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamByID")
	defer span.End()

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeMessage(ctx, w, http.StatusBadRequest, "team id must be numeric")
		return
	}

	item, err := h.teamService.GetTeamByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get team by id failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetTeamByName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamByName")
	defer span.End()

	name := r.URL.Query().Get("name")
	resolvePlayers := strings.EqualFold(r.URL.Query().Get("resolve_players"), "true")

	item, err := h.teamService.GetTeamByName(ctx, name, resolvePlayers)
	if err != nil {
		h.logger.WarnContext(ctx, "get team by name failed", "team_name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeData(ctx, w, http.StatusOK, item)
}
