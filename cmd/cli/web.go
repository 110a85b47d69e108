package main

import (
	"github.com/spf13/cobra"

	"github.com/techspire/talenthub/bleve"
	"github.com/techspire/talenthub/bolt"
	"github.com/techspire/talenthub/jwt"
	"github.com/techspire/talenthub/media"
	"github.com/techspire/talenthub/users"

	"github.com/techspire/talenthub/http"
	"github.com/techspire/talenthub/services"
)

func init() {
	inheritPersistentPreRun(&WebCommand)
	RootCmd.AddCommand(&WebCommand)
}

var WebCommand = cobra.Command{
	Use:   "web",
	Short: "Start the web server",
	Long:  "Start the web server",
	Run: func(cmd *cobra.Command, args []string) {
		config := readConfiguration()
		jwtKey := readSigningKey(config.Auth.KeyPath)

		// Open the stores
		driver := &bolt.Driver{}
		if err := driver.Open(config.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt driver:", err)
		}
		defer driver.Close()

		submissionStore := &bolt.SubmissionStore{Driver: driver}
		userStore := &bolt.UserStore{Driver: driver}
		sessionStore := &bolt.SessionStore{Driver: driver}
		contactStore := &bolt.ContactStore{Driver: driver}
		subcategoryIndex := &bolt.SubcategoryIndex{Driver: driver}

		// Open the suggestion index
		suggestIndex := &bleve.SuggestIndex{}
		if err := suggestIndex.Open(config.Bleve.Store); err != nil {
			logger.Fatal("could not open suggestion index:", err)
		}
		defer suggestIndex.Close()

		mediaManager := media.NewManager()
		tokenEncoder := jwt.NewEncodeDecoder(jwtKey)

		// Create the services
		submissionService := services.NewSubmissionService(submissionStore, suggestIndex, subcategoryIndex, mediaManager)
		userService := services.NewUserService(userStore, sessionStore, tokenEncoder)
		contactService := services.NewContactService(contactStore)

		authenticator := users.NewAuthenticator(userService)

		// Register the handlers
		server := http.NewServer(logger, env)
		http.RegisterSubmissionEndpoints(server, submissionService, jwtKey, authenticator)
		http.RegisterUserEndpoints(server, userService, jwtKey, authenticator)
		http.RegisterContactEndpoints(server, contactService, jwtKey, authenticator)
		http.RegisterMediaEndpoints(server, mediaManager, tokenEncoder)

		if err := server.ListenAndServe(config.Web.Addr); err != nil {
			logger.Fatal("server stopped:", err)
		}
	},
}
