package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newExperienceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experience",
		Short: "Access the Place Publishing API",
	}
	cmd.AddCommand(newExperiencePublishCmd())
	return cmd
}

func newExperiencePublishCmd() *cobra.Command {
	var (
		universeID  uint64
		placeID     uint64
		filename    string
		versionType string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish a place file (*.rbxl or *.rbxlx)",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			var vt rbx.PublishVersionType
			switch versionType {
			case "saved":
				vt = rbx.PublishVersionSaved
			case "published":
				vt = rbx.PublishVersionPublished
			default:
				return fmt.Errorf("--version-type must be \"saved\" or \"published\"")
			}
			res, err := client.Experience(rbx.UniverseID(universeID), rbx.PlaceID(placeID)).
				Publish(cmd.Context(), filename, vt)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID (required)")
	cmd.Flags().StringVarP(&filename, "filename", "f", "", "Place file to publish (required)")
	cmd.Flags().StringVarP(&versionType, "version-type", "t", "", "Version type: saved or published (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("place-id")
	_ = cmd.MarkFlagRequired("filename")
	_ = cmd.MarkFlagRequired("version-type")

	return cmd
}
