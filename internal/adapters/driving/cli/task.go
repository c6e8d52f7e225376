package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var taskUser string

var taskCmd = &cobra.Command{
	Use:   "task",
	Short: "Manage tasks",
}

var taskAddCmd = &cobra.Command{
	Use:   "add [description]",
	Short: "Add a task for a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runTaskAdd,
}

var taskListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's tasks",
	RunE:  runTaskList,
}

var taskRemoveCmd = &cobra.Command{
	Use:     "rm [task-id]",
	Aliases: []string{"remove"},
	Short:   "Remove a task",
	Args:    cobra.ExactArgs(1),
	RunE:    runTaskRemove,
}

func init() {
	taskAddCmd.Flags().StringVarP(&taskUser, "user", "u", "", "owning user ID (required)")
	_ = taskAddCmd.MarkFlagRequired("user")
	taskListCmd.Flags().StringVarP(&taskUser, "user", "u", "", "owning user ID (required)")
	_ = taskListCmd.MarkFlagRequired("user")

	taskCmd.AddCommand(taskAddCmd)
	taskCmd.AddCommand(taskListCmd)
	taskCmd.AddCommand(taskRemoveCmd)
	rootCmd.AddCommand(taskCmd)
}

func runTaskAdd(cmd *cobra.Command, args []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	task, err := taskService.AddTask(context.Background(), taskUser, args[0])
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	cmd.Printf("Added task %s\n", task.ID)
	cmd.Println("Run 'semtask index --user " + task.UserID + "' to make it searchable.")
	return nil
}

func runTaskList(cmd *cobra.Command, _ []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	tasks, err := taskService.ListTasks(context.Background(), taskUser)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		cmd.Println("No tasks.")
		return nil
	}

	for i := range tasks {
		status := " "
		if tasks[i].Done {
			status = "x"
		}
		cmd.Printf("  [%s] %s  %s\n", status, tasks[i].ID, tasks[i].Description)
	}
	return nil
}

func runTaskRemove(cmd *cobra.Command, args []string) error {
	if taskService == nil {
		return errors.New("task service not configured")
	}

	if err := taskService.RemoveTask(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to remove task: %w", err)
	}

	cmd.Printf("Removed task %s\n", args[0])
	return nil
}
