package config

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/ports"
	domainErrors "github.com/Tomas-vilte/cz-jira-keys/internal/errors"
	"github.com/Tomas-vilte/cz-jira-keys/internal/logger"
)

const (
	DefaultConfigName = "czconfig.json"
	manifestName      = "package.json"
	configSubdir      = ".config"
)

var _ ports.ProjectConfigResolver = (*Resolver)(nil)

type packageManifest struct {
	Config struct {
		CzJiraKeys struct {
			Config string `json:"config"`
		} `json:"cz-jira-keys"`
	} `json:"config"`
}

// Resolver finds the project config walking up from a start directory. The
// user's home directory bounds the walk and is never inspected.
type Resolver struct {
	homeDir func() (string, error)
	getwd   func() (string, error)
}

func NewResolver() *Resolver {
	return &Resolver{
		homeDir: os.UserHomeDir,
		getwd:   os.Getwd,
	}
}

func (r *Resolver) Resolve(ctx context.Context, configName, startDir string) (*models.ProjectConfig, error) {
	if configName == "" {
		configName = DefaultConfigName
	}

	if startDir == "" {
		wd, err := r.getwd()
		if err != nil {
			return nil, domainErrors.ErrWorkingDir.WithError(err)
		}
		startDir = wd
	}

	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, domainErrors.ErrWorkingDir.WithError(err).WithContext("path", startDir)
	}

	dirs := r.searchDirs(absStart)

	if path, ok := findUp(dirs, configName); ok {
		logger.Debug(ctx, "project config found", "path", path)
		return loadProjectConfig(path)
	}

	manifestPath, ok := findUp(dirs, manifestName)
	if !ok {
		logger.Debug(ctx, "no project config found", "start", absStart)
		return nil, nil
	}

	return r.fromManifest(ctx, manifestPath)
}

// searchDirs lists start and its ancestors, nearest first, stopping before
// the home directory.
func (r *Resolver) searchDirs(start string) []string {
	home := ""
	if h, err := r.homeDir(); err == nil && h != "" {
		if abs, err := filepath.Abs(h); err == nil {
			home = abs
		}
	}

	var dirs []string
	for dir := start; ; {
		if home != "" && dir == home {
			break
		}
		dirs = append(dirs, dir)

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return dirs
}

func findUp(dirs []string, name string) (string, bool) {
	for _, dir := range dirs {
		for _, candidate := range []string{
			filepath.Join(dir, name),
			filepath.Join(dir, configSubdir, name),
		} {
			if isFile(candidate) {
				return candidate, true
			}
		}
	}
	return "", false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (r *Resolver) fromManifest(ctx context.Context, manifestPath string) (*models.ProjectConfig, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", manifestPath)
	}

	var manifest packageManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, domainErrors.ErrConfigParse.WithError(err).WithContext("path", manifestPath)
	}

	rel := manifest.Config.CzJiraKeys.Config
	if rel == "" {
		logger.Debug(ctx, "package.json has no cz-jira-keys config", "manifest", manifestPath)
		return nil, nil
	}

	target := rel
	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(manifestPath), rel)
	}

	if !isFile(target) && filepath.Ext(target) == "" && isFile(target+".json") {
		target += ".json"
	}

	if !isFile(target) {
		return nil, domainErrors.ErrManifestConfigPath.
			WithContext("path", target).
			WithContext("manifest", manifestPath)
	}

	logger.Debug(ctx, "project config referenced from package.json", "manifest", manifestPath, "path", target)
	return loadProjectConfig(target)
}

func loadProjectConfig(path string) (*models.ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", path)
	}

	var cfg models.ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, domainErrors.ErrConfigParse.WithError(err).WithContext("path", path)
	}
	cfg.Source = path

	return &cfg, nil
}
