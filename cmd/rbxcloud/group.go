package main

import (
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Access the Groups API",
	}
	cmd.AddCommand(newGroupGetCmd())
	cmd.AddCommand(newGroupShoutCmd())
	cmd.AddCommand(newGroupRolesCmd())
	cmd.AddCommand(newGroupMembershipsCmd())
	return cmd
}

func newGroupGetCmd() *cobra.Command {
	var (
		groupID uint64
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get group information",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Group(rbx.GroupID(groupID)).GetInfo(cmd.Context())
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&groupID, "group-id", "g", 0, "Group ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("group-id")

	return cmd
}

func newGroupShoutCmd() *cobra.Command {
	var (
		groupID uint64
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "shout",
		Short: "Get the group's current shout",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Group(rbx.GroupID(groupID)).GetShout(cmd.Context())
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&groupID, "group-id", "g", 0, "Group ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("group-id")

	return cmd
}

func newGroupRolesCmd() *cobra.Command {
	var (
		groupID     uint64
		maxPageSize uint32
		pageToken   string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List the group's roles",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Group(rbx.GroupID(groupID)).ListRoles(cmd.Context(), rbx.PageSize(maxPageSize), pageToken)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&groupID, "group-id", "g", 0, "Group ID (required)")
	cmd.Flags().Uint32VarP(&maxPageSize, "max-page-size", "m", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&pageToken, "page-token", "t", "", "Token for the next page of results")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("group-id")

	return cmd
}

func newGroupMembershipsCmd() *cobra.Command {
	var (
		groupID     uint64
		maxPageSize uint32
		pageToken   string
		filter      string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "memberships",
		Short: "List the group's memberships",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Group(rbx.GroupID(groupID)).ListMemberships(cmd.Context(), rbx.PageSize(maxPageSize), pageToken, filter)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&groupID, "group-id", "g", 0, "Group ID (required)")
	cmd.Flags().Uint32VarP(&maxPageSize, "max-page-size", "m", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&pageToken, "page-token", "t", "", "Token for the next page of results")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter expression, e.g. \"user == 'users/123'\"")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("group-id")

	return cmd
}
