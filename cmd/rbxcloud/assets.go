package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rbxcloud/rbxcloud/rbx"
)

func newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Access the Assets API",
	}
	cmd.AddCommand(newAssetsCreateCmd())
	cmd.AddCommand(newAssetsUpdateCmd())
	cmd.AddCommand(newAssetsGetCmd())
	cmd.AddCommand(newAssetsGetOperationCmd())
	cmd.AddCommand(newAssetsArchiveCmd())
	cmd.AddCommand(newAssetsRestoreCmd())
	return cmd
}

// assetCreator maps the --creator-type/--creator-id pair onto the
// one-of creator field.
func assetCreator(creatorType string, creatorID uint64) (rbx.AssetCreator, error) {
	id := strconv.FormatUint(creatorID, 10)
	switch creatorType {
	case "user":
		return rbx.AssetCreator{UserID: id}, nil
	case "group":
		return rbx.AssetCreator{GroupID: id}, nil
	}
	return rbx.AssetCreator{}, fmt.Errorf("--creator-type must be \"user\" or \"group\"")
}

func newAssetsCreateCmd() *cobra.Command {
	var (
		displayName   string
		description   string
		expectedPrice uint64
		creatorID     uint64
		creatorType   string
		filePath      string
		assetType     string
		pretty        bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an asset from a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			creator, err := assetCreator(creatorType, creatorID)
			if err != nil {
				return err
			}
			params := rbx.CreateAssetParams{
				DisplayName: displayName,
				Description: description,
				Creator:     creator,
				FilePath:    filePath,
			}
			if cmd.Flags().Changed("expected-price") {
				params.ExpectedPrice = &expectedPrice
			}
			if assetType != "" {
				t, err := rbx.AssetTypeFromExtension(assetType)
				if err != nil {
					return err
				}
				params.AssetType = t
			}
			res, err := client.Assets().CreateAsset(cmd.Context(), params)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().StringVarP(&displayName, "display-name", "n", "", "Display name (required)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Description")
	cmd.Flags().Uint64VarP(&expectedPrice, "expected-price", "e", 0, "Expected Robux price")
	cmd.Flags().Uint64VarP(&creatorID, "creator-id", "i", 0, "Creator ID (required)")
	cmd.Flags().StringVarP(&creatorType, "creator-type", "c", "", "Creator type: user or group (required)")
	cmd.Flags().StringVarP(&filePath, "file-content", "f", "", "File to upload (required)")
	cmd.Flags().StringVarP(&assetType, "asset-type", "t", "", "Asset type extension (e.g. png); inferred from the file when unset")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("display-name")
	_ = cmd.MarkFlagRequired("creator-id")
	_ = cmd.MarkFlagRequired("creator-type")
	_ = cmd.MarkFlagRequired("file-content")

	return cmd
}

func newAssetsUpdateCmd() *cobra.Command {
	var (
		assetID   uint64
		filePath  string
		assetType string
		pretty    bool
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Upload a new revision of an asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			params := rbx.UpdateAssetParams{
				AssetID:  assetID,
				FilePath: filePath,
			}
			if assetType != "" {
				t, err := rbx.AssetTypeFromExtension(assetType)
				if err != nil {
					return err
				}
				params.AssetType = t
			}
			res, err := client.Assets().UpdateAsset(cmd.Context(), params)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&assetID, "asset-id", "i", 0, "Asset ID (required)")
	cmd.Flags().StringVarP(&filePath, "file-content", "f", "", "File to upload (required)")
	cmd.Flags().StringVarP(&assetType, "asset-type", "t", "", "Asset type extension (e.g. png); inferred from the file when unset")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("asset-id")
	_ = cmd.MarkFlagRequired("file-content")

	return cmd
}

func newAssetsGetCmd() *cobra.Command {
	var (
		assetID  uint64
		readMask string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Get asset information",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Assets().GetAsset(cmd.Context(), assetID, readMask)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&assetID, "asset-id", "i", 0, "Asset ID (required)")
	cmd.Flags().StringVarP(&readMask, "read-mask", "m", "", "Fields to return, e.g. \"description,displayName\"")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("asset-id")

	return cmd
}

func newAssetsGetOperationCmd() *cobra.Command {
	var (
		operationID string
		pretty      bool
	)

	cmd := &cobra.Command{
		Use:   "get-operation",
		Short: "Poll a pending asset operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Assets().GetOperation(cmd.Context(), operationID)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().StringVarP(&operationID, "operation-id", "i", "", "Operation ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("operation-id")

	return cmd
}

func newAssetsArchiveCmd() *cobra.Command {
	var (
		assetID uint64
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Archive an asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Assets().ArchiveAsset(cmd.Context(), assetID)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&assetID, "asset-id", "i", 0, "Asset ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("asset-id")

	return cmd
}

func newAssetsRestoreCmd() *cobra.Command {
	var (
		assetID uint64
		pretty  bool
	)

	cmd := &cobra.Command{
		Use:   "restore",
		Short: "Restore an archived asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			res, err := client.Assets().RestoreAsset(cmd.Context(), assetID)
			if err != nil {
				return err
			}
			return output(res, pretty)
		},
	}

	cmd.Flags().Uint64VarP(&assetID, "asset-id", "i", 0, "Asset ID (required)")
	cmd.Flags().BoolVarP(&pretty, "pretty", "p", false, "Pretty-print the JSON response")
	_ = cmd.MarkFlagRequired("asset-id")

	return cmd
}
