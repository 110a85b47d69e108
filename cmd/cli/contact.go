package main

import (
	"github.com/spf13/cobra"

	"github.com/techspire/talenthub/bolt"
	"github.com/techspire/talenthub/services"
)

var (
	contactDriver  *bolt.Driver
	contactService *services.ContactService
)

func init() {
	ContactCommand.AddCommand(&ContactAllCommand)

	inheritPersistentPreRun(&ContactCommand)
	inheritPersistentPreRun(&ContactAllCommand)

	RootCmd.AddCommand(&ContactCommand)
}

var ContactCommand = cobra.Command{
	Use:   "contact",
	Short: "Browse the contact inbox",
	Long:  "Browse the contact inbox",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config := readConfiguration()

		contactDriver = &bolt.Driver{}
		if err := contactDriver.Open(config.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt driver:", err)
		}

		contactService = services.NewContactService(&bolt.ContactStore{Driver: contactDriver})
	},
}

var ContactAllCommand = cobra.Command{
	Use:   "all",
	Short: "List all the contact messages",
	Long:  "List all the contact messages",
	Run: func(cmd *cobra.Command, args []string) {
		defer contactDriver.Close()

		messages, err := contactService.List()
		if err != nil {
			logger.Fatal("could not list messages:", err)
		}

		for _, msg := range messages {
			logger.Printf("[%s] %s - %s: %s", msg.Status, msg.Date.Format("2006-01-02"), msg.Email, msg.Subject)
		}
		logger.Printf("%d messages", len(messages))
	},
}
