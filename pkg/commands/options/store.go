package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/store"
)

// StoreOptions override the configured storage location.
type StoreOptions struct {
	Path   string
	Driver string
	Key    string
}

func AddStoreArgs(cmd *cobra.Command, o *StoreOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Directory holding the timeline data. Defaults to the config file or ~/.timeline.")
	cmd.PersistentFlags().StringVar(&o.Driver, "driver", "",
		"Storage driver. One of 'diskv', 'sqlite' or 'memory'.")
	cmd.PersistentFlags().StringVar(&o.Key, "key", "",
		"Storage key the entries are kept under.")
}

// Config loads the config file and applies the flag overrides.
func (o *StoreOptions) Config() (store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	var driver store.Driver
	if o.Driver != "" {
		if driver, err = store.ParseDriver(o.Driver); err != nil {
			return nil, err
		}
	}
	return store.WithOverrides(cfg, o.Path, driver, o.Key, ""), nil
}
