package cmd

import (
	"errors"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/vcsbus/application"
	"github.com/rios0rios0/vcsbus/config"
	"github.com/rios0rios0/vcsbus/domain"
	providerPkg "github.com/rios0rios0/vcsbus/infrastructure/provider"
	bbProv "github.com/rios0rios0/vcsbus/infrastructure/provider/bitbucket"
	ghProv "github.com/rios0rios0/vcsbus/infrastructure/provider/github"
	glProv "github.com/rios0rios0/vcsbus/infrastructure/provider/gitlab"
)

// newRegistry builds the registry with all supported platform strategies.
func newRegistry() *providerPkg.Registry {
	reg := providerPkg.NewRegistry()
	reg.Register("github", ghProv.New)
	reg.Register("gitlab", glProv.New)
	reg.Register("bitbucket", bbProv.New)
	return reg
}

// loadConfig resolves the config file. With --token set no file is needed;
// an empty config is injected instead.
func loadConfig() (*config.Config, error) {
	if tokenOverride != "" {
		return &config.Config{}, nil
	}

	cfgPath := configPath
	if cfgPath == "" {
		found, err := config.FindConfigFile()
		if err != nil {
			return nil, fmt.Errorf(
				"no config file found: %w (specify one with --config or pass --token)", err)
		}
		cfgPath = found
	}

	logger.Debugf("Using config file %q", cfgPath)
	return config.Load(cfgPath)
}

// newStrategy selects and constructs the active platform strategy.
func newStrategy(cfg *config.Config, reg *providerPkg.Registry) (domain.Strategy, error) {
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if tokenOverride != "" {
		if providerName == "" {
			return nil, errors.New("--provider is required when --token is used")
		}
		return reg.Get(providerName, domain.Endpoint{Token: tokenOverride})
	}

	entry, err := cfg.Provider(providerName)
	if err != nil {
		return nil, err
	}
	return reg.Get(entry.Type, entry.Endpoint())
}

// injectService wires config, registry, strategy and service through DIG.
func injectService() (*application.ProjectService, error) {
	container := dig.New()

	for _, constructor := range []any{
		loadConfig,
		newRegistry,
		newStrategy,
		application.NewProjectService,
	} {
		if err := container.Provide(constructor); err != nil {
			return nil, fmt.Errorf("failed to register constructor: %w", err)
		}
	}

	var service *application.ProjectService
	if err := container.Invoke(func(s *application.ProjectService) {
		service = s
	}); err != nil {
		return nil, fmt.Errorf("failed to build service: %w", err)
	}

	return service, nil
}
