package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/IjaIjb/code-quality-analyzer/domain"
	"github.com/IjaIjb/code-quality-analyzer/service"
	"github.com/spf13/cobra"
)

var sessionJSON bool

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage persisted analysis sessions",
		Long: `List, inspect, and delete analysis sessions persisted with
'cqa analyze --session <name>'.

Examples:
  cqa session list
  cqa session show release-1.4-1756200000
  cqa session delete release-1.4-1756200000`,
	}

	cmd.PersistentFlags().BoolVar(&sessionJSON, "json", false,
		"Output results as JSON")

	cmd.AddCommand(sessionListCmd())
	cmd.AddCommand(sessionShowCmd())
	cmd.AddCommand(sessionDeleteCmd())
	return cmd
}

func sessionStore() domain.SessionStore {
	return service.NewSessionStore(service.DefaultSessionDir())
}

func sessionListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := sessionStore().List()
			if err != nil {
				return err
			}

			if sessionJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(infos)
			}

			if len(infos) == 0 {
				fmt.Println("No stored sessions.")
				return nil
			}
			fmt.Printf("%-40s %-20s %s\n", "ID", "CREATED", "FILES")
			for _, info := range infos {
				fmt.Printf("%-40s %-20s %d\n", info.ID, info.CreatedAt.Format("2006-01-02 15:04:05"), info.FileCount)
			}
			return nil
		},
	}
}

func sessionShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionStore().Load(args[0])
			if err != nil {
				return err
			}

			if sessionJSON {
				encoder := json.NewEncoder(os.Stdout)
				encoder.SetIndent("", "  ")
				return encoder.Encode(session)
			}

			fmt.Printf("Session %s (%s), created %s\n\n",
				session.ID, session.Name, session.CreatedAt.Format("2006-01-02 15:04:05"))
			for _, file := range session.Files {
				fmt.Printf("  %-30s score %3d (%s), %d issues\n",
					file.Name, file.Result.Metrics.OverallScore,
					file.Result.Metrics.Grade, file.Result.Summary.Total)
			}
			return nil
		},
	}
}

func sessionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sessionStore().Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted session %s\n", args[0])
			return nil
		},
	}
}
