package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/internal/config"
	"github.com/rbxcloud/rbxcloud/rbx"
)

var (
	apiKey string
	debug  bool
)

func main() {
	_ = godotenv.Load()

	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{}
	}

	rootCmd := &cobra.Command{
		Use:           "rbxcloud",
		Short:         "CLI for the Roblox Open Cloud APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Init()
			if debug || cfg.Debug {
				debug = true
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				log.Debug().Msg("debug logging enabled")
			}
		},
	}

	// Long-only so leaf commands keep -a/-d for their own flags.
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", cfg.APIKey, "Roblox Open Cloud API key (or RBXCLOUD_API_KEY)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable verbose debug output")

	rootCmd.AddCommand(newDataStoreCmd())
	rootCmd.AddCommand(newOrderedDataStoreCmd())
	rootCmd.AddCommand(newMessagingCmd())
	rootCmd.AddCommand(newExperienceCmd())
	rootCmd.AddCommand(newAssetsCmd())
	rootCmd.AddCommand(newGroupCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newNotificationCmd())
	rootCmd.AddCommand(newSubscriptionCmd())
	rootCmd.AddCommand(newUniverseCmd())
	rootCmd.AddCommand(newPlaceCmd())
	rootCmd.AddCommand(newInventoryCmd())
	rootCmd.AddCommand(newLuauCmd())
	rootCmd.AddCommand(newUserRestrictionCmd())

	return rootCmd
}

// newClient builds a library client from the resolved API key.
func newClient() (*rbx.Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("an API key is required: pass --api-key or set RBXCLOUD_API_KEY")
	}
	var opts []rbx.Option
	if debug {
		opts = append(opts, rbx.WithDebugLogging(true))
	}
	return rbx.New(apiKey, opts...), nil
}

// output renders a result value as JSON on stdout.
func output(v any, pretty bool) error {
	var (
		b   []byte
		err error
	)
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

// success prints a confirmation for operations with no response body.
func success(msg string) {
	_, _ = color.New(color.FgGreen, color.Bold).Print("success: ")
	fmt.Println(msg)
}
