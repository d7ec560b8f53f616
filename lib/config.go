package lib

import (
	"errors"
	"io/fs"
	"os"
	"os/user"
	"path"

	"gopkg.in/yaml.v3"
)

const ConfigEnv = "OPSSH_CONFIG"

// FileConfig holds defaults read from the yaml config file.
type FileConfig struct {
	Profile string `yaml:"profile,omitempty"`
	Region  string `yaml:"region,omitempty"`
	User    string `yaml:"user,omitempty"`
}

// Settings is the resolved configuration for one run.
type Settings struct {
	Host          string `yaml:"host,omitempty"`
	Stack         string `yaml:"stack,omitempty"`
	Profile       string `yaml:"profile"`
	Region        string `yaml:"region"`
	User          string `yaml:"user"`
	ShowOnly      bool   `yaml:"show_only"`
	CaseSensitive bool   `yaml:"case_sensitive"`
	Verbose       bool   `yaml:"verbose"`
}

func ConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(ConfigEnv); p != "" {
		return p
	}
	usr, err := user.Current()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return path.Join(home, ".opssh.yaml")
	}
	return path.Join(usr.HomeDir, ".opssh.yaml")
}

// LoadFileConfig reads pth. A missing file yields an empty config.
func LoadFileConfig(pth string) (*FileConfig, error) {
	conf := &FileConfig{}
	if pth == "" {
		return conf, nil
	}
	data, err := os.ReadFile(pth) // #nosec G304 -- path is user supplied
	if errors.Is(err, fs.ErrNotExist) {
		return conf, nil
	}
	if err != nil {
		return nil, &ConfigError{Field: pth, Err: err}
	}
	err = yaml.Unmarshal(data, conf)
	if err != nil {
		return nil, &ConfigError{Field: pth, Err: err}
	}
	return conf, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// ResolveSettings layers flags over the config file over the environment.
// Region and profile have no environment fallback.
func ResolveSettings(args SshArgs, file *FileConfig, getenv func(string) string) (*Settings, error) {
	if file == nil {
		file = &FileConfig{}
	}
	s := &Settings{
		Host:          args.Host,
		Stack:         args.Stack,
		Profile:       firstNonEmpty(args.Profile, file.Profile),
		Region:        firstNonEmpty(args.Region, file.Region),
		User:          firstNonEmpty(args.User, file.User, getenv("USER")),
		ShowOnly:      args.ShowOnly,
		CaseSensitive: args.CaseSensitive,
		Verbose:       args.Verbose,
	}
	if s.Region == "" {
		return nil, &ConfigError{Field: "region"}
	}
	if s.Profile == "" {
		return nil, &ConfigError{Field: "profile"}
	}
	return s, nil
}

func (s *Settings) Yaml() (string, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
