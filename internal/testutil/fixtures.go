package testutil

import (
	"embed"

	"github.com/kr-g/xvenv/internal/config"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadProjectFixture loads and parses a project file fixture.
func LoadProjectFixture(name string) (*config.ProjectFile, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	return config.DecodeProjectFile(string(data))
}

// ValidProjectFile returns the fully populated project file fixture.
func ValidProjectFile() (*config.ProjectFile, error) {
	return LoadProjectFixture("valid_project.toml")
}

// MinimalProjectFile returns the project file fixture that only sets tools.
func MinimalProjectFile() (*config.ProjectFile, error) {
	return LoadProjectFixture("minimal_project.toml")
}
