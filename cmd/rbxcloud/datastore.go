package main

import (
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newDataStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "datastore",
		Short: "Access the DataStore API",
	}
	cmd.AddCommand(newDataStoreListStoresCmd())
	cmd.AddCommand(newDataStoreListCmd())
	cmd.AddCommand(newDataStoreGetCmd())
	cmd.AddCommand(newDataStoreSetCmd())
	cmd.AddCommand(newDataStoreIncrementCmd())
	cmd.AddCommand(newDataStoreDeleteCmd())
	cmd.AddCommand(newDataStoreListVersionsCmd())
	cmd.AddCommand(newDataStoreGetVersionCmd())
	return cmd
}

func newDataStoreListStoresCmd() *cobra.Command {
	var (
		universeID uint64
		prefix     string
		limit      uint64
		cursor     string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "list-stores",
		Short: "List all DataStores in a universe",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.DataStore(rbx.UniverseID(universeID)).ListStores(cmd.Context(), rbx.ListStoresParams{
				Prefix: prefix,
				Limit:  rbx.ReturnLimit(limit),
				Cursor: cursor,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&prefix, "prefix", "r", "", "Return stores with this prefix")
	cmd.Flags().Uint64VarP(&limit, "limit", "l", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&cursor, "cursor", "c", "", "Cursor for the next set of data")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")

	return cmd
}

func newDataStoreListCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		allScopes  bool
		prefix     string
		limit      uint64
		cursor     string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List keys in a DataStore",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.DataStore(rbx.UniverseID(universeID)).ListEntries(cmd.Context(), rbx.ListEntriesParams{
				Name:      name,
				Scope:     scope,
				AllScopes: allScopes,
				Prefix:    prefix,
				Limit:     rbx.ReturnLimit(limit),
				Cursor:    cursor,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "datastore-name", "n", "", "DataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "DataStore scope (default \"global\")")
	cmd.Flags().BoolVarP(&allScopes, "all-scopes", "o", false, "List keys from all scopes")
	cmd.Flags().StringVarP(&prefix, "prefix", "r", "", "Return keys with this prefix")
	cmd.Flags().Uint64VarP(&limit, "limit", "l", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&cursor, "cursor", "c", "", "Cursor for the next set of data")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("datastore-name")

	return cmd
}

func newDataStoreGetCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		key        string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get the value of a DataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			value, err := client.DataStore(rbx.UniverseID(universeID)).GetEntry(cmd.Context(), rbx.GetEntryParams{
				Name:  name,
				Scope: scope,
				Key:   key,
			})
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "datastore-name", "n", "", "DataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "DataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Entry key (required)")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("datastore-name")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newDataStoreSetCmd() *cobra.Command {
	var (
		universeID      uint64
		name            string
		scope           string
		key             string
		data            string
		matchVersion    string
		exclusiveCreate bool
		userIDs         []uint64
		attributes      string
		pretty          bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set or create the value of a DataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			params := rbx.SetEntryParams{
				Name:            name,
				Scope:           scope,
				Key:             key,
				Data:            data,
				MatchVersion:    matchVersion,
				EntryAttributes: attributes,
			}
			if cmd.Flags().Changed("exclusive-create") {
				params.ExclusiveCreate = &exclusiveCreate
			}
			for _, id := range userIDs {
				params.EntryUserIDs = append(params.EntryUserIDs, rbx.UserID(id))
			}
			res, err := client.DataStore(rbx.UniverseID(universeID)).SetEntry(cmd.Context(), params)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "datastore-name", "n", "", "DataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "DataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Entry key (required)")
	cmd.Flags().StringVarP(&data, "data", "D", "", "JSON-stringified data (required)")
	cmd.Flags().StringVarP(&matchVersion, "match-version", "i", "", "Only update if the current version matches")
	cmd.Flags().BoolVarP(&exclusiveCreate, "exclusive-create", "e", false, "Only create if the entry does not exist")
	cmd.Flags().Uint64SliceVarP(&userIDs, "user-ids", "U", nil, "Associated user IDs")
	cmd.Flags().StringVarP(&attributes, "attributes", "t", "", "JSON-stringified attributes")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("datastore-name")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("data")

	return cmd
}

func newDataStoreIncrementCmd() *cobra.Command {
	var (
		universeID  uint64
		name        string
		scope       string
		key         string
		incrementBy float64
		userIDs     []uint64
		attributes  string
	)

	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Increment the value of a numeric DataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			params := rbx.IncrementEntryParams{
				Name:            name,
				Scope:           scope,
				Key:             key,
				IncrementBy:     incrementBy,
				EntryAttributes: attributes,
			}
			for _, id := range userIDs {
				params.EntryUserIDs = append(params.EntryUserIDs, rbx.UserID(id))
			}
			value, err := client.DataStore(rbx.UniverseID(universeID)).IncrementEntry(cmd.Context(), params)
			if err != nil {
				return err
			}
			cmd.Printf("%v\n", value)
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "datastore-name", "n", "", "DataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "DataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Entry key (required)")
	cmd.Flags().Float64VarP(&incrementBy, "increment-by", "i", 0, "Amount to add to the entry (required)")
	cmd.Flags().Uint64SliceVarP(&userIDs, "user-ids", "U", nil, "Associated user IDs")
	cmd.Flags().StringVarP(&attributes, "attributes", "t", "", "JSON-stringified attributes")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("datastore-name")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("increment-by")

	return cmd
}

func newDataStoreDeleteCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		key        string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a DataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			err = client.DataStore(rbx.UniverseID(universeID)).DeleteEntry(cmd.Context(), rbx.DeleteEntryParams{
				Name:  name,
				Scope: scope,
				Key:   key,
			})
			if err != nil {
				return err
			}
			success("entry deleted")
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "datastore-name", "n", "", "DataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "DataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Entry key (required)")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("datastore-name")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

func newDataStoreListVersionsCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		key        string
		startTime  string
		endTime    string
		sortOrder  string
		limit      uint64
		cursor     string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "list-versions",
		Short: "List versions of a DataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.DataStore(rbx.UniverseID(universeID)).ListEntryVersions(cmd.Context(), rbx.ListEntryVersionsParams{
				Name:      name,
				Scope:     scope,
				Key:       key,
				StartTime: startTime,
				EndTime:   endTime,
				SortOrder: sortOrder,
				Limit:     rbx.ReturnLimit(limit),
				Cursor:    cursor,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "datastore-name", "n", "", "DataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "DataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Entry key (required)")
	cmd.Flags().StringVarP(&startTime, "start-time", "t", "", "Earliest version create time (ISO 8601)")
	cmd.Flags().StringVarP(&endTime, "end-time", "e", "", "Latest version create time (ISO 8601)")
	cmd.Flags().StringVarP(&sortOrder, "sort-order", "o", "", "Sort order (Ascending or Descending)")
	cmd.Flags().Uint64VarP(&limit, "limit", "l", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&cursor, "cursor", "c", "", "Cursor for the next set of data")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("datastore-name")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("sort-order")

	return cmd
}

func newDataStoreGetVersionCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		key        string
		versionID  string
	)

	cmd := &cobra.Command{
		Use:   "get-version",
		Short: "Get the value of a specific DataStore entry version",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			value, err := client.DataStore(rbx.UniverseID(universeID)).GetEntryVersion(cmd.Context(), rbx.GetEntryVersionParams{
				Name:      name,
				Scope:     scope,
				Key:       key,
				VersionID: versionID,
			})
			if err != nil {
				return err
			}
			cmd.Println(value)
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "datastore-name", "n", "", "DataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "DataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&key, "key", "k", "", "Entry key (required)")
	cmd.Flags().StringVarP(&versionID, "version-id", "i", "", "Version ID (required)")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("datastore-name")
	_ = cmd.MarkFlagRequired("key")
	_ = cmd.MarkFlagRequired("version-id")

	return cmd
}
