package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/rifqialifauzan/football-data-service/internal/platform/logging"
	"github.com/rifqialifauzan/football-data-service/internal/usecase"
)

type Handler struct {
	importService *usecase.ImportService
	leagueService *usecase.LeagueService
	teamService   *usecase.TeamService
	personService *usecase.PersonService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	importService *usecase.ImportService,
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	personService *usecase.PersonService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		importService: importService,
		leagueService: leagueService,
		teamService:   teamService,
		personService: personService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeData(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
