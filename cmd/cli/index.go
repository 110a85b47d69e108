package main

import (
	"github.com/spf13/cobra"

	"github.com/techspire/talenthub/bleve"
	"github.com/techspire/talenthub/bolt"
)

var (
	indexDriver       *bolt.Driver
	indexSubmissions  *bolt.SubmissionStore
	indexSubcategory  *bolt.SubcategoryIndex
	indexSuggestIndex *bleve.SuggestIndex
)

func init() {
	IndexCommand.AddCommand(&IndexAllCommand)

	inheritPersistentPreRun(&IndexCommand)
	inheritPersistentPreRun(&IndexAllCommand)

	RootCmd.AddCommand(&IndexCommand)
}

var IndexCommand = cobra.Command{
	Use:   "index",
	Short: "Manage the suggestion index",
	Long:  "Manage the suggestion index",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config := readConfiguration()

		indexDriver = &bolt.Driver{}
		if err := indexDriver.Open(config.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt driver:", err)
		}

		indexSubmissions = &bolt.SubmissionStore{Driver: indexDriver}
		indexSubcategory = &bolt.SubcategoryIndex{Driver: indexDriver}

		indexSuggestIndex = &bleve.SuggestIndex{}
		if err := indexSuggestIndex.Open(config.Bleve.Store); err != nil {
			logger.Fatal("could not open suggestion index:", err)
		}
	},
}

var IndexAllCommand = cobra.Command{
	Use:   "all",
	Short: "Rebuild the suggestion index from the store",
	Long:  "Rebuild the suggestion index from the store",
	Run: func(cmd *cobra.Command, args []string) {
		defer indexDriver.Close()
		defer indexSuggestIndex.Close()

		subs, err := indexSubmissions.List()
		if err != nil {
			logger.Fatal("could not list submissions:", err)
		}

		for _, sub := range subs {
			if err := indexSuggestIndex.Index(&sub); err != nil {
				logger.Errorf("error indexing submission %s: %v", sub.ID, err)
				continue
			}

			if err := indexSubcategory.Index(sub.Category, sub.Subcategory); err != nil {
				logger.Errorf("error indexing subcategory of %s: %v", sub.ID, err)
				continue
			}

			logger.Printf("indexed submission %s", sub.ID)
		}

		logger.Printf("done, %d submissions indexed", len(subs))
	},
}
