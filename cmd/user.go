package cmd

import (
	"fmt"

	"github.com/Bezhaltur/Auto-DCA-bot/internal/core"
	"github.com/spf13/cobra"
)

func newUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage API users",
	}
	cmd.AddCommand(newUserAddCommand())
	return cmd
}

func newUserAddCommand() *cobra.Command {
	var (
		username string
		password string
		chatID   int64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a user that can authenticate against the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap()
			if err != nil {
				return err
			}
			defer e.close()

			var chat *int64
			if cmd.Flags().Changed("telegram-chat-id") {
				chat = &chatID
			}

			// the authenticator never signs tokens here
			auth := core.NewAuthenticator(e.logger, e.users, nil)
			user, err := auth.AddUser(cmd.Context(), username, password, chat)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user %s created with id %s\n", user.Username, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name")
	cmd.Flags().StringVar(&password, "password", "", "login password")
	cmd.Flags().Int64Var(&chatID, "telegram-chat-id", 0, "telegram chat that receives notifications")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
