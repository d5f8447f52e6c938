// hotelctl is the operator CLI: account administration and tenant reports
// straight against the database, without going through the HTTP API.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"hoteldesk-backend/config"
	"hoteldesk-backend/internal/auth"
	"hoteldesk-backend/internal/db"
	"hoteldesk-backend/internal/hotel"
	"hoteldesk-backend/internal/store"
)

var configPath string

func loadServices() (*gorm.DB, *auth.Service, *hotel.Desk, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}

	gormDB, err := db.Init(&cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}

	authSvc := auth.NewService(gormDB, cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, slog.Default())
	desk := hotel.NewDesk(store.NewGormStore(gormDB))
	return gormDB, authSvc, desk, nil
}

func createAccountCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "create-account <email> <password> <tenant-id>",
		Short: "Create a login bound to a tenant",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, authSvc, _, err := loadServices()
			if err != nil {
				return err
			}
			if err := authSvc.CreateAccount(context.Background(), args[0], args[1], auth.Role(role), args[2]); err != nil {
				return err
			}
			fmt.Printf("account %s created for tenant %s\n", args[0], args[2])
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", string(auth.RoleCustomer), "account role (customer, admin, superadmin)")
	return cmd
}

func resetPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-password <email> <new-password>",
		Short: "Overwrite an account's password",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, authSvc, _, err := loadServices()
			if err != nil {
				return err
			}
			if err := authSvc.ResetPassword(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("password reset for %s\n", args[0])
			return nil
		},
	}
}

func deleteAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-account <email>",
		Short: "Remove a login",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, authSvc, _, err := loadServices()
			if err != nil {
				return err
			}
			if err := authSvc.DeleteAccount(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("account %s deleted\n", args[0])
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	var topN int
	cmd := &cobra.Command{
		Use:   "report <tenant-id>",
		Short: "Print occupancy, revenue and outstanding balances for a tenant",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, desk, err := loadServices()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			report, err := desk.Report(ctx, args[0], topN)
			if err != nil {
				return err
			}

			fmt.Printf("rooms: %d total, %d occupied; %d guests in house\n",
				report.Occupancy.TotalRooms, report.Occupancy.OccupiedRooms, report.Occupancy.GuestsInHouse)
			for _, m := range report.MonthlyRevenue {
				fmt.Printf("%s  revenue %.2f  outstanding %.2f\n", m.Month, m.Revenue, m.Outstanding)
			}
			for _, r := range report.TopRooms {
				fmt.Printf("room %d: %d nights\n", r.RoomNumber, r.Nights)
			}
			for _, g := range report.Outstanding {
				fmt.Printf("guest %d (%s, room %d) owes %.2f\n", g.GuestID, g.Name, g.RoomNumber, g.Outstanding)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&topN, "top", 5, "number of rooms in the ranking")
	return cmd
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "hotelctl",
		Short: "Hotel desk administration tool",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "./config/config.yaml", "path to the configuration file")

	rootCmd.AddCommand(
		createAccountCmd(),
		resetPasswordCmd(),
		deleteAccountCmd(),
		reportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
