package httpapi

import (
	"net/http"

	"github.com/rifqialifauzan/football-data-service/internal/platform/logging"
)

func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerImportRoutes(mux, handler)
	registerQueryRoutes(mux, handler)

	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux))))
}

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerImportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /import_league", handler.ImportLeague)
}

func registerQueryRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /leagues", handler.ListLeagues)
	mux.HandleFunc("GET /league/{code}/players", handler.ListPlayersByLeague)
	mux.HandleFunc("GET /players", handler.ListPlayers)
	mux.HandleFunc("GET /players/{team_name}", handler.ListPlayersByTeamName)
	mux.HandleFunc("GET /coaches", handler.ListCoaches)
	mux.HandleFunc("GET /teams", handler.ListTeams)
	mux.HandleFunc("GET /team", handler.GetTeamByName)
	mux.HandleFunc("GET /team/{id}", handler.GetTeamByID)
}
