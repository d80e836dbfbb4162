package cmd

import (
	"context"
	"fmt"

	"github.com/forgelabs/tsforge/internal/config"
	"github.com/forgelabs/tsforge/pkg/user"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the bundled example programs",
}

var demoUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Run the user builder/factory/repository walkthrough",
	Long: `Build a standard and an admin user through the factory, store them in
an in-memory repository, print their serialized forms, and delete one.

Examples:
  tsforge demo users
  tsforge demo users --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runDemoUsers,
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.AddCommand(demoUsersCmd)
}

func runDemoUsers(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := newLogger(cfg)
	repo := user.NewMemoryRepository(logger)

	standard, err := user.New(2, "Murphy")
	if err != nil {
		return err
	}

	admin, err := user.NewAdmin(1, "Ada")
	if err != nil {
		return err
	}

	for _, u := range []user.User{standard, admin} {
		if err := repo.Save(ctx, u); err != nil {
			return err
		}
		fmt.Println(u)
	}

	if err := repo.Delete(ctx, standard.ID); err != nil {
		return err
	}

	fmt.Printf("%d user(s) remaining\n", repo.Count())
	return nil
}
