// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/madrasah-accounts/backend/internal/application/usecase/auth"
	"github.com/madrasah-accounts/backend/internal/application/usecase/counterparty"
	"github.com/madrasah-accounts/backend/internal/application/usecase/report"
	"github.com/madrasah-accounts/backend/internal/application/usecase/table"
	"github.com/madrasah-accounts/backend/internal/application/usecase/transaction"
	"github.com/madrasah-accounts/backend/internal/infra/server/router"
	"github.com/madrasah-accounts/backend/internal/integration/adapters"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/controller"
	"github.com/madrasah-accounts/backend/internal/integration/entrypoint/middleware"
	"github.com/madrasah-accounts/backend/internal/integration/persistence"
	"github.com/madrasah-accounts/backend/test/integration/mock"
)

// adminPassword is the shared credential scenarios log in with.
const adminPassword = "integration-test-password"

var adminHashOnce sync.Once
var adminHash string

func adminPasswordHash() string {
	adminHashOnce.Do(func() {
		hash, err := adapters.NewPasswordService().HashPassword(adminPassword)
		if err != nil {
			panic(err)
		}
		adminHash = hash
	})
	return adminHash
}

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	db           *mock.Db
	response     *http.Response
	responseBody []byte
	sessionToken string
}

type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		// Disables the login rate limiter.
		_ = os.Setenv("ENV", "test")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc := newTestContext()
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerDataSteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires the full application against the in-process mocks.
func newTestContext() *TestContext {
	database := mock.NewDb()
	if err := database.Reset(); err != nil {
		panic(err)
	}
	redisClient := mock.NewRedis()
	if err := mock.ClearRedis(redisClient); err != nil {
		panic(err)
	}

	transactionRepo := persistence.NewTransactionRepository(database.DbConn)
	counterpartyRepo := persistence.NewCounterpartyRepository(database.DbConn)
	savedSenderRepo := persistence.NewSavedSenderRepository(database.DbConn)

	sessionStore := adapters.NewRedisSessionStore(redisClient)
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService("integration-test-secret", time.Hour, sessionStore)

	healthController := controller.NewHealthController(func() bool { return true })
	authController := controller.NewAuthController(
		auth.NewLoginUseCase(adminPasswordHash(), passwordService, tokenService),
		auth.NewLogoutUseCase(tokenService),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewCreateTransactionUseCase(transactionRepo, savedSenderRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
		table.NewBrowseTransactionsUseCase(transactionRepo),
		table.NewExportCSVUseCase(transactionRepo),
	)
	reportController := controller.NewReportController(
		report.NewGetSummaryUseCase(transactionRepo),
		report.NewGetBreakdownUseCase(transactionRepo),
		report.NewGetReceiverStatsUseCase(transactionRepo),
	)
	counterpartyController := controller.NewCounterpartyController(
		counterparty.NewListCounterpartiesUseCase(counterpartyRepo),
		counterparty.NewListSavedSendersUseCase(savedSenderRepo),
		counterparty.NewSaveSenderUseCase(savedSenderRepo),
		counterparty.NewDeleteSenderUseCase(savedSenderRepo),
	)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		reportController,
		counterpartyController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
	)
	engine := r.Setup("test")

	return &TestContext{
		server: httptest.NewServer(engine),
		db:     database,
	}
}

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I am logged in as admin$`, iAmLoggedInAsAdmin)
	ctx.Step(`^I am logged in as a trial user$`, iAmLoggedInAsATrialUser)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following transactions exist:$`, theFollowingTransactionsExist)
	ctx.Step(`^the following counterparties exist:$`, theFollowingCounterpartiesExist)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}
