package main

import (
	"github.com/spf13/cobra"

	"github.com/techspire/talenthub/bolt"
	"github.com/techspire/talenthub/jwt"
	"github.com/techspire/talenthub/services"
)

var (
	userDriver  *bolt.Driver
	userService *services.UserService
)

func init() {
	UserCommand.AddCommand(&UserAllCommand)
	UserCommand.AddCommand(&UserCreateCommand)

	inheritPersistentPreRun(&UserCommand)
	inheritPersistentPreRun(&UserAllCommand)
	inheritPersistentPreRun(&UserCreateCommand)

	RootCmd.AddCommand(&UserCommand)
}

var UserCommand = cobra.Command{
	Use:   "user",
	Short: "List all the user commands available",
	Long:  "List all the user commands available",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config := readConfiguration()
		jwtKey := readSigningKey(config.Auth.KeyPath)

		userDriver = &bolt.Driver{}
		if err := userDriver.Open(config.Bolt.Store); err != nil {
			logger.Fatal("could not open bolt driver:", err)
		}

		userStore := &bolt.UserStore{Driver: userDriver}
		sessionStore := &bolt.SessionStore{Driver: userDriver}
		userService = services.NewUserService(userStore, sessionStore, jwt.NewEncodeDecoder(jwtKey))
	},
}

var UserAllCommand = cobra.Command{
	Use:   "all",
	Short: "List all the registered users",
	Long:  "List all the registered users",
	Run: func(cmd *cobra.Command, args []string) {
		defer userDriver.Close()

		users, err := userService.All()
		if err != nil {
			logger.Fatal("could not list users:", err)
		}

		for _, user := range users {
			logger.Printf("%s - %s (%s)", user.ID, user.Name(), user.Email)
		}
		logger.Printf("%d users", len(users))
	},
}

var UserCreateCommand = cobra.Command{
	Use:   "create <firstName> <lastName> <email> <password>",
	Short: "Create a user",
	Long:  "Create a user",
	Run: func(cmd *cobra.Command, args []string) {
		defer userDriver.Close()

		if len(args) != 4 {
			logger.Fatal("this command expects a first name, a last name, an email and a password")
		}

		user, err := userService.Register(services.RegisterInput{
			FirstName: args[0],
			LastName:  args[1],
			Email:     args[2],
			Password:  args[3],
		})
		if err != nil {
			logger.Fatal("could not create user:", err)
		}

		logger.Printf("user %s created", user.ID)
	},
}
