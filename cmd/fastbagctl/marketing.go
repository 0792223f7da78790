package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/codeedexprojects/fastbag-admin-sub001/internal/format"
	"github.com/codeedexprojects/fastbag-admin-sub001/internal/listview"
	sdk "github.com/codeedexprojects/fastbag-admin-sub001/sdk"
)

func newCouponsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "coupons", Short: "Manage discount codes"}
	cols := columns[sdk.Coupon]{
		header: []string{"ID", "Code", "Discount", "Min Amount", "Valid From", "Valid To", "Active"},
		record: func(c sdk.Coupon) []string {
			return []string{
				c.RowID(), c.Code, format.Percent(c.DiscountPercent),
				format.Money(c.MinOrderAmount), c.ValidFrom, c.ValidTo,
				strconv.FormatBool(c.Active),
			}
		},
	}
	cmd.AddCommand(crudCommands("coupon", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Coupon] {
		return s.Coupons()
	}), cols)...)

	var (
		code      string
		discount  int
		minAmount float64
		validFrom string
		validTo   string
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Create a discount code",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Dates are validated before any network call. Flags take the
			// date-input shape and are converted to the API's dd/mm/yyyy.
			from, err := format.DisplayDate(validFrom)
			if err != nil {
				return err
			}
			to, err := format.DisplayDate(validTo)
			if err != nil {
				return err
			}
			if discount < 1 || discount > 100 {
				return fmt.Errorf("discount must be between 1 and 100")
			}
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}
			created, err := svc.CreateCoupon(cmd.Context(), sdk.Coupon{
				Code:            code,
				DiscountPercent: discount,
				MinOrderAmount:  minAmount,
				ValidFrom:       from,
				ValidTo:         to,
				Active:          true,
			})
			if err != nil {
				return fmt.Errorf("create coupon: %w", err)
			}
			return printJSON(cmd, created)
		},
	}
	add.Flags().StringVar(&code, "code", "", "coupon code")
	add.Flags().IntVar(&discount, "discount", 0, "discount percentage (1-100)")
	add.Flags().Float64Var(&minAmount, "min-amount", 0, "minimum order amount")
	add.Flags().StringVar(&validFrom, "valid-from", "", "start date (yyyy-mm-dd)")
	add.Flags().StringVar(&validTo, "valid-to", "", "end date (yyyy-mm-dd)")
	mustFlag(add, "code")
	mustFlag(add, "discount")
	mustFlag(add, "valid-from")
	mustFlag(add, "valid-to")
	cmd.AddCommand(add)
	return cmd
}

func newCarouselCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "carousel", Short: "Manage home-screen carousel ads"}
	cols := columns[sdk.CarouselAd]{
		header: []string{"ID", "Title", "Position", "Target", "Active"},
		record: func(a sdk.CarouselAd) []string {
			return []string{
				a.RowID(), a.Title, strconv.Itoa(a.Position), a.TargetURL,
				strconv.FormatBool(a.Active),
			}
		},
	}
	cmd.AddCommand(crudCommands("carousel ad", serviceResource(func(s *sdk.Service) listview.Resource[sdk.CarouselAd] {
		return s.CarouselAds()
	}), cols)...)

	var (
		title     string
		imagePath string
		targetURL string
		position  int
	)
	add := &cobra.Command{
		Use:   "add",
		Short: "Upload a carousel ad with its banner image",
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := os.Open(imagePath)
			if err != nil {
				return err
			}
			defer img.Close()
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}
			fields := map[string]string{
				"title":    title,
				"position": strconv.Itoa(position),
			}
			if targetURL != "" {
				fields["target_url"] = targetURL
			}
			if err := svc.CreateCarouselAd(cmd.Context(), fields, filepath.Base(imagePath), img); err != nil {
				return fmt.Errorf("upload carousel ad: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "carousel ad %q uploaded\n", title)
			return nil
		},
	}
	add.Flags().StringVar(&title, "title", "", "ad title")
	add.Flags().StringVar(&imagePath, "image", "", "banner image file")
	add.Flags().StringVar(&targetURL, "target-url", "", "tap-through URL")
	add.Flags().IntVar(&position, "position", 1, "carousel position")
	mustFlag(add, "title")
	mustFlag(add, "image")
	cmd.AddCommand(add)
	return cmd
}

func newNotificationsCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "notifications", Short: "Broadcast and review notifications"}
	cols := columns[sdk.Notification]{
		header: []string{"ID", "Title", "Body", "Audience", "Sent"},
		record: func(n sdk.Notification) []string {
			return []string{n.RowID(), n.Title, n.Body, n.Audience, n.SentAt}
		},
	}
	cmd.AddCommand(crudCommands("notification", serviceResource(func(s *sdk.Service) listview.Resource[sdk.Notification] {
		return s.Notifications()
	}), cols)...)

	var (
		title    string
		body     string
		audience string
	)
	send := &cobra.Command{
		Use:   "send",
		Short: "Broadcast a notification",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newService(cmd)
			if err != nil {
				return err
			}
			if err := svc.SendNotification(cmd.Context(), title, body, audience); err != nil {
				return fmt.Errorf("send notification: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "notification sent")
			return nil
		},
	}
	send.Flags().StringVar(&title, "title", "", "notification title")
	send.Flags().StringVar(&body, "body", "", "notification body")
	send.Flags().StringVar(&audience, "audience", "", "target audience (empty for everyone)")
	mustFlag(send, "title")
	mustFlag(send, "body")
	cmd.AddCommand(send)
	return cmd
}
