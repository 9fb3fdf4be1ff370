package registry

import (
	"errors"
	"sort"

	"github.com/Tomas-vilte/cz-jira-keys/internal/domain/models"
	"github.com/Tomas-vilte/cz-jira-keys/internal/i18n"
	"github.com/urfave/cli/v3"
)

type CommandFactory interface {
	CreateCommand(t *i18n.Translations, opts models.CommitOptions) *cli.Command
}

type Registry struct {
	factories map[string]CommandFactory
	opts      models.CommitOptions
	t         *i18n.Translations
}

func NewRegistry(opts models.CommitOptions, t *i18n.Translations) *Registry {
	return &Registry{
		factories: make(map[string]CommandFactory),
		opts:      opts,
		t:         t,
	}
}

func (r *Registry) Register(name string, factory CommandFactory) error {
	if _, exists := r.factories[name]; exists {
		return errors.New(r.t.GetMessage("factory_already_registered", 0, map[string]interface{}{
			"FactoryName": name,
		}))
	}
	r.factories[name] = factory
	return nil
}

// CreateCommands builds the registered commands sorted by name so help output
// is stable.
func (r *Registry) CreateCommands() []*cli.Command {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)

	commands := make([]*cli.Command, 0, len(names))
	for _, name := range names {
		commands = append(commands, r.factories[name].CreateCommand(r.t, r.opts))
	}
	return commands
}
