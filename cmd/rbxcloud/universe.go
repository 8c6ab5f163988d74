package main

import (
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newUniverseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "universe",
		Short: "Access the Universe API",
	}
	cmd.AddCommand(newUniverseGetCmd())
	cmd.AddCommand(newUniverseRestartCmd())
	cmd.AddCommand(newUniverseUpdateNameCmd())
	cmd.AddCommand(newUniverseUpdateDescriptionCmd())
	return cmd
}

func newUniverseGetCmd() *cobra.Command {
	var (
		universeID uint64
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get universe information",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Universe(rbx.UniverseID(universeID)).Get(cmd.Context())
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")

	return cmd
}

func newUniverseRestartCmd() *cobra.Command {
	var universeID uint64

	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Restart all active servers, picking up the latest published version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.Universe(rbx.UniverseID(universeID)).RestartServers(cmd.Context()); err != nil {
				return err
			}
			success("servers restarted")
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	_ = cmd.MarkFlagRequired("universe-id")

	return cmd
}

func newUniverseUpdateNameCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "update-name",
		Short: "Update the universe's display name",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Universe(rbx.UniverseID(universeID)).
				Update(cmd.Context(), "displayName", rbx.UpdateUniverseInfo{DisplayName: &name})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "New display name (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newUniverseUpdateDescriptionCmd() *cobra.Command {
	var (
		universeID  uint64
		description string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "update-description",
		Short: "Update the universe's description",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Universe(rbx.UniverseID(universeID)).
				Update(cmd.Context(), "description", rbx.UpdateUniverseInfo{Description: &description})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("description")

	return cmd
}
