package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newLuauCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "luau",
		Short: "Access the Luau Execution API",
	}
	cmd.AddCommand(newLuauExecuteCmd())
	cmd.AddCommand(newLuauGetCmd())
	cmd.AddCommand(newLuauLogsCmd())
	return cmd
}

func newLuauExecuteCmd() *cobra.Command {
	var (
		universeID uint64
		placeID    uint64
		versionID  string
		script     string
		file       string
		timeout    string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Submit a Luau script for execution",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if script == "" && file == "" {
				return fmt.Errorf("either --script or --file is required")
			}
			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				script = string(data)
			}
			res, err := client.Luau(rbx.UniverseID(universeID), rbx.PlaceID(placeID), versionID).
				CreateTask(cmd.Context(), rbx.CreateTaskParams{Script: script, Timeout: timeout})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID (required)")
	cmd.Flags().StringVarP(&versionID, "version-id", "v", "", "Place version; latest when unset")
	cmd.Flags().StringVarP(&script, "script", "s", "", "Luau source to run")
	cmd.Flags().StringVarP(&file, "file", "f", "", "File with the Luau source to run")
	cmd.Flags().StringVarP(&timeout, "timeout", "t", "", "Execution timeout, e.g. \"30s\"")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("place-id")

	return cmd
}

func newLuauGetCmd() *cobra.Command {
	var (
		universeID uint64
		placeID    uint64
		versionID  string
		sessionID  string
		taskID     string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Poll a Luau execution task",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Luau(rbx.UniverseID(universeID), rbx.PlaceID(placeID), versionID).
				GetTask(cmd.Context(), sessionID, taskID)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID (required)")
	cmd.Flags().StringVarP(&versionID, "version-id", "v", "", "Place version; latest when unset")
	cmd.Flags().StringVarP(&sessionID, "session-id", "s", "", "Execution session ID (required)")
	cmd.Flags().StringVarP(&taskID, "task-id", "t", "", "Execution task ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("place-id")
	_ = cmd.MarkFlagRequired("session-id")
	_ = cmd.MarkFlagRequired("task-id")

	return cmd
}

func newLuauLogsCmd() *cobra.Command {
	var (
		universeID  uint64
		placeID     uint64
		versionID   string
		sessionID   string
		taskID      string
		maxPageSize uint32
		pageToken   string
		structured  bool
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Fetch the logs of a Luau execution task",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			params := rbx.GetTaskLogsParams{
				SessionID:   sessionID,
				TaskID:      taskID,
				MaxPageSize: rbx.PageSize(maxPageSize),
				PageToken:   pageToken,
			}
			if structured {
				params.View = rbx.LuauLogViewStructured
			} else {
				params.View = rbx.LuauLogViewFlat
			}
			res, err := client.Luau(rbx.UniverseID(universeID), rbx.PlaceID(placeID), versionID).
				GetTaskLogs(cmd.Context(), params)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().Uint64VarP(&placeID, "place-id", "l", 0, "Place ID (required)")
	cmd.Flags().StringVarP(&versionID, "version-id", "v", "", "Place version; latest when unset")
	cmd.Flags().StringVarP(&sessionID, "session-id", "s", "", "Execution session ID (required)")
	cmd.Flags().StringVarP(&taskID, "task-id", "t", "", "Execution task ID (required)")
	cmd.Flags().Uint32VarP(&maxPageSize, "max-page-size", "m", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&pageToken, "page-token", "k", "", "Token for the next page of results")
	cmd.Flags().BoolVarP(&structured, "structured", "S", false, "Return structured log messages")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("place-id")
	_ = cmd.MarkFlagRequired("session-id")
	_ = cmd.MarkFlagRequired("task-id")

	return cmd
}
