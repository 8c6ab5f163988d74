package main

import (
	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newOrderedDataStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ordered-datastore",
		Short: "Access the OrderedDataStore API",
	}
	cmd.AddCommand(newOrderedListCmd())
	cmd.AddCommand(newOrderedCreateCmd())
	cmd.AddCommand(newOrderedGetCmd())
	cmd.AddCommand(newOrderedDeleteCmd())
	cmd.AddCommand(newOrderedUpdateCmd())
	cmd.AddCommand(newOrderedIncrementCmd())
	return cmd
}

func newOrderedListCmd() *cobra.Command {
	var (
		universeID  uint64
		name        string
		scope       string
		maxPageSize uint32
		pageToken   string
		orderBy     string
		filter      string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries of an OrderedDataStore",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.OrderedDataStore(rbx.UniverseID(universeID)).ListEntries(cmd.Context(), rbx.OrderedListEntriesParams{
				Name:        name,
				Scope:       scope,
				MaxPageSize: rbx.PageSize(maxPageSize),
				PageToken:   pageToken,
				OrderBy:     orderBy,
				Filter:      filter,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "ordered-datastore-name", "n", "", "OrderedDataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "OrderedDataStore scope (default \"global\")")
	cmd.Flags().Uint32VarP(&maxPageSize, "max-page-size", "m", 0, "Maximum number of items to return")
	cmd.Flags().StringVarP(&pageToken, "page-token", "t", "", "Token for the next page of results")
	cmd.Flags().StringVarP(&orderBy, "order-by", "o", "", "Sort order (\"desc\" for descending)")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Range filter, e.g. \"entry <= 10\"")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("ordered-datastore-name")

	return cmd
}

func newOrderedCreateCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		id         string
		value      float64
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new OrderedDataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.OrderedDataStore(rbx.UniverseID(universeID)).CreateEntry(cmd.Context(), rbx.OrderedCreateEntryParams{
				Name:  name,
				Scope: scope,
				ID:    id,
				Value: value,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "ordered-datastore-name", "n", "", "OrderedDataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "OrderedDataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&id, "id", "i", "", "Entry ID (required)")
	cmd.Flags().Float64VarP(&value, "value", "v", 0, "Entry value (required)")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("ordered-datastore-name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("value")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")

	return cmd
}

func newOrderedGetCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		id         string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get an OrderedDataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.OrderedDataStore(rbx.UniverseID(universeID)).GetEntry(cmd.Context(), rbx.OrderedEntryParams{
				Name:  name,
				Scope: scope,
				ID:    id,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "ordered-datastore-name", "n", "", "OrderedDataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "OrderedDataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&id, "id", "i", "", "Entry ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("ordered-datastore-name")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newOrderedDeleteCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		id         string
	)

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an OrderedDataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			err = client.OrderedDataStore(rbx.UniverseID(universeID)).DeleteEntry(cmd.Context(), rbx.OrderedEntryParams{
				Name:  name,
				Scope: scope,
				ID:    id,
			})
			if err != nil {
				return err
			}
			success("entry deleted")
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "ordered-datastore-name", "n", "", "OrderedDataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "OrderedDataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&id, "id", "i", "", "Entry ID (required)")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("ordered-datastore-name")
	_ = cmd.MarkFlagRequired("id")

	return cmd
}

func newOrderedUpdateCmd() *cobra.Command {
	var (
		universeID   uint64
		name         string
		scope        string
		id           string
		value        float64
		allowMissing bool
		pretty       bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the value of an OrderedDataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.OrderedDataStore(rbx.UniverseID(universeID)).UpdateEntry(cmd.Context(), rbx.OrderedUpdateEntryParams{
				Name:         name,
				Scope:        scope,
				ID:           id,
				Value:        value,
				AllowMissing: allowMissing,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "ordered-datastore-name", "n", "", "OrderedDataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "OrderedDataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&id, "id", "i", "", "Entry ID (required)")
	cmd.Flags().Float64VarP(&value, "value", "v", 0, "New entry value (required)")
	cmd.Flags().BoolVarP(&allowMissing, "allow-missing", "m", false, "Create the entry if it does not exist")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("ordered-datastore-name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newOrderedIncrementCmd() *cobra.Command {
	var (
		universeID uint64
		name       string
		scope      string
		id         string
		increment  float64
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "increment",
		Short: "Increment the value of an OrderedDataStore entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.OrderedDataStore(rbx.UniverseID(universeID)).IncrementEntry(cmd.Context(), rbx.OrderedIncrementEntryParams{
				Name:      name,
				Scope:     scope,
				ID:        id,
				Increment: increment,
			})
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&universeID, "universe-id", "u", 0, "Universe ID (required)")
	cmd.Flags().StringVarP(&name, "ordered-datastore-name", "n", "", "OrderedDataStore name (required)")
	cmd.Flags().StringVarP(&scope, "scope", "s", "", "OrderedDataStore scope (default \"global\")")
	cmd.Flags().StringVarP(&id, "id", "i", "", "Entry ID (required)")
	cmd.Flags().Float64VarP(&increment, "increment", "c", 0, "Amount to add to the entry (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("universe-id")
	_ = cmd.MarkFlagRequired("ordered-datastore-name")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("increment")

	return cmd
}
