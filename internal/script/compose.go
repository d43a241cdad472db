package script

import (
	"path"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/kr-g/xvenv/internal/config"
)

const shebang = "#!/usr/bin/env bash"

// ActivateLine is the line that activates the sandbox.
var ActivateLine = ". " + path.Join(config.SandboxDirName, "bin", "activate")

// Compose returns the script that runs payload inside the sandbox of workDir.
// The payload is written as given.
func Compose(workDir, payload string) string {
	var b strings.Builder
	b.WriteString(shebang + "\n")
	b.WriteString("cd " + shellquote.Join(workDir) + "\n")
	b.WriteString(ActivateLine + "\n")
	b.WriteString(payload + "\n")
	return b.String()
}

// JoinArgs quotes each token so the shell splits the result back into
// exactly the same tokens.
func JoinArgs(args ...string) string {
	return shellquote.Join(args...)
}
