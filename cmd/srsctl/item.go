package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/srs-review-backend/internal/adapter/postgres/item"
	"github.com/heartmarshall/srs-review-backend/internal/domain"
)

var (
	itemID       string
	itemType     string
	itemLanguage string
	itemTitle    string
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Manage learning items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a learning item",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		it := domain.Item{
			ID:       strings.TrimSpace(itemID),
			Type:     domain.ItemType(strings.ToLower(itemType)),
			Language: domain.Language(strings.ToLower(itemLanguage)),
			Title:    strings.TrimSpace(itemTitle),
		}
		if it.ID == "" {
			return fmt.Errorf("--id is required")
		}
		if !it.Type.IsValid() {
			return fmt.Errorf("unknown item type %q", itemType)
		}
		if !it.Language.IsValid() {
			return fmt.Errorf("unknown language %q", itemLanguage)
		}

		ctx := cmd.Context()
		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		if err := item.New(e.pool).Create(ctx, it); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s, %s)\n", it.ID, it.Type, it.Language)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(itemCmd)
	itemCmd.AddCommand(itemAddCmd)

	itemAddCmd.Flags().StringVar(&itemID, "id", "", "Item ID")
	itemAddCmd.Flags().StringVarP(&itemType, "type", "t", string(domain.ItemTypeVocab), "Item type (vocab, grammar, reading, listening)")
	itemAddCmd.Flags().StringVarP(&itemLanguage, "language", "l", string(domain.LanguageJapanese), "Source language (japanese, english)")
	itemAddCmd.Flags().StringVar(&itemTitle, "title", "", "Display title")
}
