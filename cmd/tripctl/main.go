package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sohail9972/Trip-planner-EaseMyTrip/client"
)

var serviceURL string
var debug bool

const commandTimeout = 30 * time.Second

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tripctl",
		Short: "tripctl manages trip-planner sessions, trips and itineraries",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("TRIPPLANNER_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	defaultURL := getEnv("TRIPPLANNER_SERVICE_URL", "http://localhost:8000/api/v1")
	rootCmd.PersistentFlags().StringVar(&serviceURL, "service-url", defaultURL, "Base URL of the trip planner API")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newListTripsCmd())
	rootCmd.AddCommand(newCreateTripCmd())
	rootCmd.AddCommand(newUpdateTripCmd())
	rootCmd.AddCommand(newDeleteTripCmd())
	rootCmd.AddCommand(newPlanTripCmd())
	rootCmd.AddCommand(newQuickPlanCmd())
	rootCmd.AddCommand(newPingCmd())

	return rootCmd
}

func newSDK() (*client.Client, error) {
	return client.New(serviceURL)
}

func newLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and persist the session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			if err := c.Session().Login(ctx, email, password); err != nil {
				return err
			}
			user, _ := c.Session().User()
			fmt.Printf("Logged in as %s (%s)\n", user.FullName, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd() *cobra.Command {
	var email, password, fullName string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account (does not log in)",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			if err := c.Session().Register(ctx, email, password, fullName); err != nil {
				return err
			}
			fmt.Printf("Account created for %s. Log in with `tripctl login`.\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&password, "password", "", "Account password (required)")
	cmd.Flags().StringVar(&fullName, "full-name", "", "Display name (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	_ = cmd.MarkFlagRequired("full-name")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Erase the persisted session credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			c.Session().Logout()
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Verify the stored credential and print the session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			c.Session().Bootstrap(ctx)
			user, ok := c.Session().User()
			if !ok {
				fmt.Println("Not logged in.")
				return nil
			}
			fmt.Printf("%s (%s) id=%s\n", user.FullName, user.Email, user.ID)
			return nil
		},
	}
}

func newListTripsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list-trips",
		Short: "List all saved trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			trips, err := c.Trips().List(ctx)
			if err != nil {
				return err
			}
			if len(trips) == 0 {
				fmt.Println("No trips yet.")
				return nil
			}
			for _, t := range trips {
				fmt.Printf("%s  %-20s %s → %s  [%s]  $%.2f\n",
					t.ID, t.Destination, t.StartDate, t.EndDate, t.Status, t.Budget)
			}
			return nil
		},
	}
}

func newCreateTripCmd() *cobra.Command {
	var destination, startDate, endDate, theme string
	var budget float64
	var travelers int

	cmd := &cobra.Command{
		Use:   "create-trip",
		Short: "Create a new trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			trip, err := c.Trips().Create(ctx, client.CreateTripRequest{
				Destination: destination,
				StartDate:   startDate,
				EndDate:     endDate,
				Budget:      budget,
				Travelers:   travelers,
				Theme:       theme,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Trip created: %s - %s\n", trip.ID, trip.Destination)
			return nil
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Destination (required)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date YYYY-MM-DD (required)")
	cmd.Flags().Float64Var(&budget, "budget", 1500, "Budget in dollars")
	cmd.Flags().IntVar(&travelers, "travelers", 1, "Number of travelers")
	cmd.Flags().StringVar(&theme, "theme", "", "Trip theme")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("end-date")
	return cmd
}

func newUpdateTripCmd() *cobra.Command {
	var id, destination, startDate, endDate, status, theme string
	var budget float64
	var travelers int

	cmd := &cobra.Command{
		Use:   "update-trip",
		Short: "Apply a partial update to a trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			var req client.UpdateTripRequest
			if cmd.Flags().Changed("destination") {
				req.Destination = &destination
			}
			if cmd.Flags().Changed("start-date") {
				req.StartDate = &startDate
			}
			if cmd.Flags().Changed("end-date") {
				req.EndDate = &endDate
			}
			if cmd.Flags().Changed("status") {
				s := client.TripStatus(status)
				req.Status = &s
			}
			if cmd.Flags().Changed("budget") {
				req.Budget = &budget
			}
			if cmd.Flags().Changed("travelers") {
				req.Travelers = &travelers
			}
			if cmd.Flags().Changed("theme") {
				req.Theme = &theme
			}

			trip, err := c.Trips().Update(ctx, id, req)
			if err != nil {
				return err
			}
			fmt.Printf("Trip updated: %s - %s\n", trip.ID, trip.Destination)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Trip ID (required)")
	cmd.Flags().StringVar(&destination, "destination", "", "New destination")
	cmd.Flags().StringVar(&startDate, "start-date", "", "New start date YYYY-MM-DD")
	cmd.Flags().StringVar(&endDate, "end-date", "", "New end date YYYY-MM-DD")
	cmd.Flags().StringVar(&status, "status", "", "New status (planning|booked|completed|cancelled)")
	cmd.Flags().Float64Var(&budget, "budget", 0, "New budget in dollars")
	cmd.Flags().IntVar(&travelers, "travelers", 0, "New traveler count")
	cmd.Flags().StringVar(&theme, "theme", "", "New theme")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newDeleteTripCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete-trip",
		Short: "Delete a trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			if err := c.Trips().Delete(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Trip deleted: %s\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Trip ID (required)")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newPlanTripCmd() *cobra.Command {
	var destination, startDate, endDate, budgetLevel, travelerType string
	var budget float64
	var travelers int
	var themes []string

	cmd := &cobra.Command{
		Use:   "plan-trip",
		Short: "Generate an itinerary; falls back to a local plan when the service is unreachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			req := client.TripRequest{
				Destination:  destination,
				StartDate:    startDate,
				EndDate:      endDate,
				Budget:       budget,
				BudgetLevel:  client.BudgetLevel(budgetLevel),
				Travelers:    travelers,
				TravelerType: client.TravelerType(travelerType),
			}
			for _, th := range themes {
				req.Themes = append(req.Themes, client.TripTheme(th))
			}

			plan, err := c.Planner().Submit(ctx, req)
			if err != nil {
				return err
			}
			return printPlan(plan)
		},
	}

	cmd.Flags().StringVar(&destination, "destination", "", "Destination (required)")
	cmd.Flags().StringVar(&startDate, "start-date", "", "Start date YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "End date YYYY-MM-DD (required)")
	cmd.Flags().Float64Var(&budget, "budget", 1500, "Budget in dollars")
	cmd.Flags().StringVar(&budgetLevel, "budget-level", "mid_range", "Budget tier (budget|mid_range|luxury)")
	cmd.Flags().IntVar(&travelers, "travelers", 2, "Number of travelers")
	cmd.Flags().StringVar(&travelerType, "traveler-type", "couple", "Party type (solo|couple|family|friends|business)")
	cmd.Flags().StringSliceVar(&themes, "theme", nil, "Trip themes (repeatable)")
	_ = cmd.MarkFlagRequired("destination")
	_ = cmd.MarkFlagRequired("start-date")
	_ = cmd.MarkFlagRequired("end-date")
	return cmd
}

func newQuickPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quick-plan",
		Short: "Generate the canonical demo itinerary",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()
			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			plan, err := c.Planner().QuickFillAndGenerate(ctx)
			if err != nil {
				return err
			}
			return printPlan(plan)
		},
	}
}

func newPingCmd() *cobra.Command {
	var wait time.Duration

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check whether the trip planner API is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newSDK()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			probe := func() error {
				ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
				defer cancel()
				_, err := c.Trips().List(ctx)
				if err != nil && client.IsUnreachable(err) {
					return err
				}
				// Any HTTP response, even an error status, means the
				// service is up.
				return nil
			}

			if wait <= 0 {
				if err := probe(); err != nil {
					return fmt.Errorf("service unreachable at %s: %w", c.BaseURL(), err)
				}
				fmt.Println("Service reachable.")
				return nil
			}

			bo := backoff.NewExponentialBackOff()
			bo.MaxElapsedTime = wait
			if err := backoff.Retry(probe, backoff.WithContext(bo, cmd.Context())); err != nil {
				return fmt.Errorf("service unreachable at %s after %s: %w", c.BaseURL(), wait, err)
			}
			fmt.Println("Service reachable.")
			return nil
		},
	}

	cmd.Flags().DurationVar(&wait, "wait", 0, "Keep retrying with backoff up to this duration")
	return cmd
}

func printPlan(plan *client.TripPlanResponse) error {
	b, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
