package main

import (
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Abdur667/CS182-Final/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the embedded default configuration, ready to be saved as
~/.catan/config.yaml. With --resolved, print the configuration that
would be used after loading --config and the search path.

Examples:
  catan config > ~/.catan/config.yaml
  catan config --resolved --config ./my-table.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the loaded configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if !flagResolved {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		fatalf("encoding config: %v", err)
	}
	enc.Close()
	if err := cfg.Validate(); err != nil {
		fatalf("invalid config:\n%v", err)
	}
}
