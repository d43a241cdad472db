// Package workflow runs xvenv operations as named steps.
//
// Every subcommand is a Step: a name and a function that returns the
// result of one external program. Steps are either run on their own with
// RunSingle or grouped into a Chain.
//
// # Chains
//
// A Chain runs its steps in order and stops at the first failure. There is
// no rollback: steps that already succeeded keep their effects.
//
//	env, err := workflow.NewEnv(settings, runner, auditLogger)
//	err = env.Make(workflow.MakeOptions{Quick: true}).Run(ctx, env)
//
// The failure of a chained step is reported as errors.StepFailed, which
// exits with status 1 even when the step could not start its program.
//
// # Step results
//
// A step fails when its function returns an error or when the program
// exits with a non-zero status. Outside verbose mode the tail of the
// program output is printed with the failure. Every step outcome is
// appended to the audit log.
package workflow
