package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rifqialifauzan/football-data-service/external/footballdata"
	"github.com/rifqialifauzan/football-data-service/internal/config"
	"github.com/rifqialifauzan/football-data-service/internal/infrastructure/repository/memory"
	mongorepo "github.com/rifqialifauzan/football-data-service/internal/infrastructure/repository/mongo"
	"github.com/rifqialifauzan/football-data-service/internal/interfaces/httpapi"
	"github.com/rifqialifauzan/football-data-service/internal/platform/logging"
	"github.com/rifqialifauzan/football-data-service/internal/usecase"
)

// Build wires the service together: a long-lived store for the query side, a
// per-import store opener for ingestion, the upstream client, and the HTTP
// router. The returned cleanup releases the query-side store.
func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}
	if logger == nil {
		logger = logging.Default()
	}

	var (
		queryStore usecase.ImportStore
		opener     usecase.StoreOpener
		cleanup    func(context.Context) error
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := memory.NewStore()
		queryStore = store
		opener = store
		cleanup = func(context.Context) error { return nil }
	default:
		store, err := mongorepo.Open(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return nil, nil, fmt.Errorf("open document store: %w", err)
		}
		queryStore = store
		opener = mongorepo.Opener{URI: cfg.MongoURI, Database: cfg.MongoDatabase}
		cleanup = store.Close
	}

	upstream := footballdata.NewClient(footballdata.ClientConfig{
		BaseURL: cfg.FootballDataBaseURL,
		Token:   cfg.FootballDataToken,
		Timeout: cfg.FootballDataTimeout,
		Retry: footballdata.RetryPolicy{
			MaxTries: cfg.FootballDataMaxTries,
			Delays:   footballdata.DefaultRetryPolicy().Delays,
		},
		Logger: logger,
	})

	importSvc := usecase.NewImportService(upstream, opener, logger)
	leagueSvc := usecase.NewLeagueService(queryStore.Leagues(), queryStore.Teams(), queryStore.People())
	teamSvc := usecase.NewTeamService(queryStore.Teams(), queryStore.People())
	personSvc := usecase.NewPersonService(queryStore.Teams(), queryStore.People())

	handler := httpapi.NewHandler(importSvc, leagueSvc, teamSvc, personSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}
