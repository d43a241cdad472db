// Package testutil provides test fixtures and utilities.
//
// This package contains embedded TOML fixtures and helper functions for
// loading project files in unit tests, plus a TestEnv that wires a mock
// runner into the default application context.
//
// # Fixtures
//
// TOML fixtures are embedded using go:embed:
//
//	fixtures/valid_project.toml
//	fixtures/minimal_project.toml
//	fixtures/invalid_project.toml
//
// # Loading Fixtures
//
//	pf, err := testutil.ValidProjectFile()
//	data, err := testutil.LoadFixture("invalid_project.toml")
//
// # Test Environment
//
//	env := testutil.NewTestEnv(t)
//	defer env.Cleanup()
//	env.Runner.AddResponse("bash", 1, nil)
//	env.CreateSandbox()
package testutil
