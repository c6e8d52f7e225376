package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	userAddID    string
	userAddEmail string
	userAddName  string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a user",
	RunE:  runUserAdd,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	RunE:  runUserList,
}

func init() {
	userAddCmd.Flags().StringVar(&userAddID, "id", "", "user ID (generated when omitted)")
	userAddCmd.Flags().StringVar(&userAddEmail, "email", "", "user email")
	userAddCmd.Flags().StringVar(&userAddName, "name", "", "display name")

	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserAdd(cmd *cobra.Command, _ []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	user, err := taskService.AddUser(context.Background(), userAddID, userAddEmail, userAddName)
	if err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	cmd.Printf("Added user %s\n", user.ID)
	return nil
}

func runUserList(cmd *cobra.Command, _ []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	users, err := taskService.ListUsers(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	if len(users) == 0 {
		cmd.Println("No users.")
		return nil
	}

	for i := range users {
		line := "  " + users[i].ID
		if users[i].Email != "" {
			line += "  " + users[i].Email
		}
		if users[i].Name != "" {
			line += "  (" + users[i].Name + ")"
		}
		cmd.Println(line)
	}
	return nil
}
