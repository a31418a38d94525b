// trackerctl is a terminal client for the tracker API. Listings go
// through the local state cache so repeated invocations stay fast and
// survive offline reads.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tracknest/tracker-go/internal/config"
	"github.com/tracknest/tracker-go/pkg/client"
)

var (
	apiURL string
	token  string
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "trackerctl",
		Short: "Inspect and mutate tracker projects and tickets from the terminal",
	}

	root.PersistentFlags().StringVar(&apiURL, "api", envOr("TRACKER_API", "http://localhost:8080"), "tracker API base URL")
	root.PersistentFlags().StringVar(&token, "token", os.Getenv("TRACKER_TOKEN"), "bearer token for authenticated calls")

	root.AddCommand(projectsCmd())
	root.AddCommand(ticketsCmd())
	root.AddCommand(statsCmd())
	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func apiClient() *client.Client {
	return client.New(apiURL, token, &http.Client{Timeout: 15 * time.Second})
}

// openStorage places the cache under CLIENT_DATA_DIR, falling back to the
// OS cache dir.
func openStorage() (client.Storage, error) {
	config.LoadConfig()
	dir := config.ClientDataDir
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "trackerctl")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return client.OpenBadgerStorage(dir)
}

func projectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "Work with projects",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, err := openStorage()
			if err != nil {
				return err
			}
			defer storage.Close()

			store, err := client.NewProjectStore(apiClient(), storage)
			if err != nil {
				return err
			}
			if err := store.Refresh(cmd.Context()); err != nil {
				// Fall back to the cached snapshot when offline.
				fmt.Fprintf(os.Stderr, "warning: using cached data: %v\n", err)
			}

			for _, p := range store.Projects() {
				fmt.Printf("%s\t%s\t(%d tickets)\n", p.ID, p.Title, len(p.Tickets))
			}
			return nil
		},
	})

	create := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := apiClient().CreateProject(cmd.Context(), client.CreateProjectInput{Title: args[0]})
			if err != nil {
				return err
			}
			fmt.Println(p.ID)
			return nil
		},
	}
	cmd.AddCommand(create)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project and all of its tickets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return apiClient().DeleteProject(cmd.Context(), args[0])
		},
	})

	return cmd
}

func ticketsCmd() *cobra.Command {
	var projectID, status, priority string

	cmd := &cobra.Command{
		Use:   "tickets",
		Short: "Work with tickets",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List tickets, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			storage, err := openStorage()
			if err != nil {
				return err
			}
			defer storage.Close()

			filter := client.TicketFilter{ProjectID: projectID, Status: status, Priority: priority}
			store, err := client.NewTicketStore(apiClient(), storage, filter)
			if err != nil {
				return err
			}
			if err := store.Refresh(cmd.Context()); err != nil {
				fmt.Fprintf(os.Stderr, "warning: using cached data: %v\n", err)
			}

			for _, t := range store.Tickets() {
				fmt.Printf("%s\t[%s/%s]\t%s\n", t.ID, t.Status, t.Priority, t.Title)
			}
			return nil
		},
	}
	list.Flags().StringVar(&projectID, "project", "", "filter by project id")
	list.Flags().StringVar(&status, "status", "", "filter by status")
	list.Flags().StringVar(&priority, "priority", "", "filter by priority")
	cmd.AddCommand(list)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete one or more tickets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return apiClient().DeleteTicket(cmd.Context(), args[0])
			}
			count, err := apiClient().BulkDeleteTickets(cmd.Context(), args)
			if err != nil {
				return err
			}
			fmt.Printf("deleted %d tickets\n", count)
			return nil
		},
	})

	return cmd
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard counts for your projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := apiClient().Stats(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("projects: %d\ntickets:  %d\n", stats.Projects, stats.Tickets)
			for k, v := range stats.ByStatus {
				fmt.Printf("  status %-12s %d\n", k, v)
			}
			for k, v := range stats.ByPriority {
				fmt.Printf("  priority %-10s %d\n", k, v)
			}
			return nil
		},
	}
}
