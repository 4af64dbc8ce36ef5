package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	advisorinadapter "studyplanner/internal/modules/advisor/adapter/in"
	advisoroutadapter "studyplanner/internal/modules/advisor/adapter/out"
	advisorservice "studyplanner/internal/modules/advisor/service"
	advisorusecase "studyplanner/internal/modules/advisor/usecase"
	authinadapter "studyplanner/internal/modules/auth/adapter/in"
	authoutadapter "studyplanner/internal/modules/auth/adapter/out"
	authservice "studyplanner/internal/modules/auth/service"
	authusecase "studyplanner/internal/modules/auth/usecase"
	cataloginadapter "studyplanner/internal/modules/catalog/adapter/in"
	catalogoutadapter "studyplanner/internal/modules/catalog/adapter/out"
	catalogservice "studyplanner/internal/modules/catalog/service"
	catalogusecase "studyplanner/internal/modules/catalog/usecase"
	plannerinadapter "studyplanner/internal/modules/planner/adapter/in"
	planneroutadapter "studyplanner/internal/modules/planner/adapter/out"
	plannerservice "studyplanner/internal/modules/planner/service"
	plannerusecase "studyplanner/internal/modules/planner/usecase"
	plansinadapter "studyplanner/internal/modules/plans/adapter/in"
	plansoutadapter "studyplanner/internal/modules/plans/adapter/out"
	plansdomain "studyplanner/internal/modules/plans/domain"
	plansservice "studyplanner/internal/modules/plans/service"
	plansusecase "studyplanner/internal/modules/plans/usecase"
	"studyplanner/internal/platform/clock"
	"studyplanner/internal/platform/config"
	"studyplanner/internal/platform/id"
	"studyplanner/internal/platform/rest"
	uiapp "studyplanner/internal/ui/app"
)

type App struct {
	AuthCLI    authinadapter.CLIHandler
	PlansCLI   plansinadapter.CLIHandler
	PlannerCLI plannerinadapter.CLIHandler
	CatalogCLI cataloginadapter.CLIHandler
	AdvisorCLI advisorinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}

	sessionStore := authoutadapter.NewFileSessionStore(cfg.SessionPath)
	token := sessionStore.Token

	authClient := rest.New(cfg.Endpoints.Auth, token)
	planClient := rest.New(cfg.Endpoints.StudyPlan, token)
	catalogClient := rest.New(cfg.Endpoints.Catalog, token)
	advisorClient := rest.New(cfg.Endpoints.Advisor, token)

	authSvc := authservice.NewAuthService(sessionStore, authoutadapter.NewHTTPAuthAPI(authClient))
	authUC := authusecase.NewInteractor(authSvc)

	planProjector, err := plansoutadapter.NewSQLitePlanProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new plan projector: %w", err)
	}
	plansSvc := plansservice.NewPlanService(
		plansdomain.NewCache(),
		plansoutadapter.NewHTTPPlanAPI(planClient),
		planProjector,
	)
	// Seed the cache from the local read model so the plan list renders
	// before the first round trip to the study-plan service.
	_ = plansSvc.WarmUp(context.Background())
	plansUC := plansusecase.NewInteractor(plansSvc)

	synchronizer := plannerservice.NewSynchronizer(clk, ids, planneroutadapter.NewHTTPDetailAPI(planClient))
	plannerUC := plannerusecase.NewInteractor(synchronizer)

	catalogSvc := catalogservice.NewCatalogService(catalogoutadapter.NewHTTPCatalogAPI(catalogClient))
	catalogUC := catalogusecase.NewInteractor(catalogSvc)

	advisorSvc := advisorservice.NewAdvisorService(clk, ids, advisoroutadapter.NewHTTPAdvisorAPI(advisorClient))
	advisorUC := advisorusecase.NewInteractor(advisorSvc)

	return &App{
		AuthCLI:    authinadapter.NewCLIHandler(authUC),
		PlansCLI:   plansinadapter.NewCLIHandler(plansUC),
		PlannerCLI: plannerinadapter.NewCLIHandler(plannerUC),
		CatalogCLI: cataloginadapter.NewCLIHandler(catalogUC),
		AdvisorCLI: advisorinadapter.NewCLIHandler(advisorUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.AuthCLI, app.PlansCLI, app.PlannerCLI, app.CatalogCLI, app.AdvisorCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
