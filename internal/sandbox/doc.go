// Package sandbox provides sandbox lifecycle management for xvenv.
//
// A sandbox is the Python virtual environment kept in config.SandboxDirName
// below the working directory.
//
// # Descriptor
//
// Descriptor ties a working directory to its sandbox root:
//
//	d := sandbox.NewDescriptor(settings)
//	root := d.Root()
//
// # Creation
//
// CreateInvocation builds the `python -m venv` invocation. It is run directly
// through a system.Runner, never through a shell script, because there is no
// sandbox to activate yet.
//
// # Destruction
//
// Destroy asks a Confirmer before deleting anything. Removal is best effort:
// every entry is attempted, failures are collected and returned together.
//
//	res, err := sandbox.Destroy(d, tui.NewConfirmer(os.Stdin, os.Stdout))
//	if res.Declined {
//	    // nothing was touched
//	}
package sandbox
