package main

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fastbagctl",
	Short: "FastBag back-office administration",
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "Admin API base URL")
	rootCmd.PersistentFlags().String("token", "", "Bearer token for the Admin API")
	rootCmd.PersistentFlags().String("profile", "", "Profile name in config (overrides active)")
	rootCmd.PersistentFlags().String("output", "table", "Output format (table|json)")

	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newSectionsCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newSubcategoriesCmd())
	rootCmd.AddCommand(newColorsCmd())
	rootCmd.AddCommand(newProductsCmd())
	rootCmd.AddCommand(newVendorsCmd())
	rootCmd.AddCommand(newStoresCmd())
	rootCmd.AddCommand(newOrdersCmd())
	rootCmd.AddCommand(newBigBuyCmd())
	rootCmd.AddCommand(newCouponsCmd())
	rootCmd.AddCommand(newCarouselCmd())
	rootCmd.AddCommand(newNotificationsCmd())
	rootCmd.AddCommand(newSubAdminsCmd())
	rootCmd.AddCommand(newCustomersCmd())
	rootCmd.AddCommand(newDeliveryCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
