package cmd

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/hqlam/laptopshop/internal/data/seed"
	"github.com/hqlam/laptopshop/internal/data/store"
	"github.com/hqlam/laptopshop/internal/session"
	"github.com/hqlam/laptopshop/internal/types"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an end-to-end walkthrough of the data layer",
	Long: `Migrates and seeds the store, authenticates the default admin, and
walks one edit session through the catalog and order stores: stage, commit,
eager-load, and role-gate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, _, dbService, err := bootstrap()
		if err != nil {
			return err
		}
		defer log.Sync()

		ctx := context.Background()
		gdb := dbService.DB()

		if err := dbService.AutoMigrateAll(); err != nil {
			return err
		}
		if err := seed.Apply(ctx, gdb, log); err != nil {
			return err
		}

		// Authenticate and open a session.
		users := store.NewUserStore(gdb, log)
		admin, err := users.Authenticate(ctx, "admin", "admin123")
		if err != nil {
			return err
		}
		if admin == nil {
			return fmt.Errorf("default admin did not authenticate; reseed the store")
		}
		sess := session.New()
		sess.Login(admin)
		log.Info("Authenticated",
			"user", admin.Username,
			"role", admin.Role,
			"catalog_write", sess.CanMutate(session.CapCatalog),
			"user_admin", sess.Can(session.CapUsers),
		)

		// One edit session over the catalog.
		laptops := store.NewLaptopStore(gdb, log)
		if !sess.CanMutate(session.CapCatalog) {
			return fmt.Errorf("session may not mutate the catalog")
		}
		row := &types.Laptop{
			Brand:     "ASUS",
			Model:     "ROG Zephyrus G14",
			Processor: "AMD Ryzen 9 8945HS",
			RAM:       "32GB",
			Storage:   "1TB SSD",
			GPU:       "RTX 4070",
			Price:     decimal.RequireFromString("2199.00"),
			Stock:     3,
		}
		laptops.Add(row)
		n, err := laptops.Commit(ctx)
		if err != nil {
			return err
		}
		log.Info("Catalog commit applied", "rows", n)

		detailed, err := laptops.GetByIDWithDetails(ctx, row.ID)
		if err != nil {
			return err
		}
		log.Info("Eager-loaded laptop",
			"brand", detailed.Brand,
			"model", detailed.Model,
			"categories", len(detailed.Categories),
			"supplier_links", len(detailed.SupplierLinks),
		)

		// One edit session over orders.
		if !sess.CanMutate(session.CapOrders) {
			return fmt.Errorf("session may not mutate orders")
		}
		customers := store.New[types.Customer](gdb, log)
		existing, err := customers.Find(ctx, store.Eq("name", "Walk-in Customer"))
		if err != nil {
			return err
		}
		if len(existing) == 0 {
			return fmt.Errorf("seed customer missing")
		}

		orders := store.NewOrderStore(gdb, log)
		order := &types.Order{
			CustomerID:  &existing[0].ID,
			TotalAmount: row.Price,
			Notes:       "demo order",
			Details: []types.OrderDetail{
				{LaptopID: &row.ID, Quantity: 1, UnitPrice: row.Price},
			},
		}
		orders.Add(order)
		n, err = orders.Commit(ctx)
		if err != nil {
			return err
		}
		log.Info("Order commit applied", "rows", n)

		placed, err := orders.GetByIDWithDetails(ctx, order.ID)
		if err != nil {
			return err
		}
		log.Info("Eager-loaded order",
			"status", placed.Status,
			"customer", placed.Customer.Name,
			"lines", len(placed.Details),
			"line_total", placed.LineTotal().String(),
		)

		sess.Logout()
		log.Info("Demo finished", "authenticated", sess.IsAuthenticated())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
