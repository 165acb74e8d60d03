// Package config loads the YAML-driven agent and task definitions that the
// marketing workflows are assembled from. Defaults are embedded in the
// binary and can be overridden from a directory on disk.
//
// Load precedence: embedded defaults, then an optional config directory.
package config

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed agents.yaml tasks.yaml
var defaults embed.FS

// AgentConfig declares one agent: its role framing and execution parameters.
// Tools are referenced by name and bound in code.
type AgentConfig struct {
	Role            string   `yaml:"role"`
	Goal            string   `yaml:"goal"`
	Backstory       string   `yaml:"backstory"`
	AllowDelegation bool     `yaml:"allow_delegation"`
	MaxIter         int      `yaml:"max_iter"`
	MaxRPM          int      `yaml:"max_rpm"`
	Tools           []string `yaml:"tools"`
}

// TaskConfig declares one task's payload. The description and expected
// output are templates; agent assignment and dependencies are wired in code,
// matching the split between configuration data and orchestration.
type TaskConfig struct {
	Description    string `yaml:"description"`
	ExpectedOutput string `yaml:"expected_output"`
}

// Library holds every declared agent and task definition.
type Library struct {
	Agents map[string]AgentConfig
	Tasks  map[string]TaskConfig
}

// Agent looks up an agent definition by name.
func (l *Library) Agent(name string) (AgentConfig, bool) {
	a, ok := l.Agents[name]
	return a, ok
}

// Task looks up a task definition by name.
func (l *Library) Task(name string) (TaskConfig, bool) {
	t, ok := l.Tasks[name]
	return t, ok
}

// Default loads the embedded agent and task definitions.
func Default() (*Library, error) {
	agents, err := defaults.ReadFile("agents.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "read embedded agents.yaml")
	}
	tasks, err := defaults.ReadFile("tasks.yaml")
	if err != nil {
		return nil, errors.Wrap(err, "read embedded tasks.yaml")
	}
	return Parse(agents, tasks)
}

// LoadDir loads agents.yaml and tasks.yaml from a directory on disk.
func LoadDir(dir string) (*Library, error) {
	agents, err := os.ReadFile(filepath.Join(dir, "agents.yaml"))
	if err != nil {
		return nil, errors.Wrapf(err, "read agents config from %s", dir)
	}
	tasks, err := os.ReadFile(filepath.Join(dir, "tasks.yaml"))
	if err != nil {
		return nil, errors.Wrapf(err, "read tasks config from %s", dir)
	}
	return Parse(agents, tasks)
}

// Parse decodes raw YAML agent and task documents into a Library.
func Parse(agentsYAML, tasksYAML []byte) (*Library, error) {
	lib := &Library{
		Agents: make(map[string]AgentConfig),
		Tasks:  make(map[string]TaskConfig),
	}
	if err := yaml.Unmarshal(agentsYAML, &lib.Agents); err != nil {
		return nil, errors.Wrap(err, "parse agents config")
	}
	if err := yaml.Unmarshal(tasksYAML, &lib.Tasks); err != nil {
		return nil, errors.Wrap(err, "parse tasks config")
	}
	if len(lib.Agents) == 0 {
		return nil, errors.New("agents config declares no agents")
	}
	if len(lib.Tasks) == 0 {
		return nil, errors.New("tasks config declares no tasks")
	}
	return lib, nil
}
