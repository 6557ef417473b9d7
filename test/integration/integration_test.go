//go:build integration

// Package integration runs the Godog BDD suite against a fully wired
// in-process API server.
package integration

import (
	"os"
	"testing"

	"github.com/cucumber/godog"
	"github.com/cucumber/godog/colors"

	"github.com/madrasah-accounts/backend/test/integration/steps"
)

// TestFeatures executes every feature file under features/. Scenarios
// run sequentially because they share one in-memory database.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                 "madrasah-accounts-api",
		TestSuiteInitializer: steps.InitializeTestSuite,
		ScenarioInitializer:  steps.InitializeScenario,
		Options: &godog.Options{
			Format:      "pretty",
			Paths:       []string{"features"},
			Output:      colors.Colored(os.Stdout),
			Tags:        os.Getenv("GODOG_TAGS"),
			Concurrency: 1,
			Strict:      true,
			TestingT:    t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
