// Package app provides the application context for xvenv.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds the collaborators that touch the outside world:
//
//	type App struct {
//	    Runner    system.Runner      // External process execution
//	    Locator   system.SelfLocator // Path of the running binary
//	    Confirmer tui.Confirmer      // Yes/no prompts
//	    Audit     *audit.Logger      // Run history
//	}
//
// Nil fields are resolved on demand by RunnerFor, ConfirmerFor and AuditFor.
//
// # Creating an App
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithRunner(system.NewMockRunner()),
//	    app.WithConfirmer(tui.AssumeYes{}),
//	)
package app
