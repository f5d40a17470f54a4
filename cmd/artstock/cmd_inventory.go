package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/artstock/app/repositories"
	"github.com/shashiranjanraj/artstock/app/services"
)

// Business outcomes (not found, duplicate sku, missing identifier) are
// printed lines and a normal exit. Only unexpected store failures escape
// as errors and fail the process.

// ─── add ──────────────────────────────────────────────────────────────────────

var (
	addTitle    string
	addArtist   string
	addYear     int
	addPrice    float64
	addQuantity int
	addSKU      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a product",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := boot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		in := services.AddInput{Title: addTitle, Quantity: addQuantity}
		flags := cmd.Flags()
		if flags.Changed("artist") {
			in.Artist = &addArtist
		}
		if flags.Changed("year") {
			in.Year = &addYear
		}
		if flags.Changed("price") {
			in.Price = &addPrice
		}
		if flags.Changed("sku") {
			in.SKU = &addSKU
		}

		p, err := svc.Add(in)
		if errors.Is(err, repositories.ErrDuplicateSKU) {
			fmt.Fprintln(out, "Error adding product:", err)
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Added product id=%d title=%q\n", p.ID, p.Title)
		return nil
	},
}

// ─── remove ───────────────────────────────────────────────────────────────────

var (
	removeID  uint
	removeSKU string
)

var removeCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a product by id or sku",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := boot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		n, err := svc.Remove(refFromFlags(cmd, &removeID, &removeSKU))
		if errors.Is(err, services.ErrMissingIdentifier) {
			fmt.Fprintln(out, "Provide --id or --sku to remove a product.")
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(out, "No matching product found.")
			return nil
		}
		fmt.Fprintf(out, "Removed %d row(s).\n", n)
		return nil
	},
}

// ─── update-qty ───────────────────────────────────────────────────────────────

var (
	updateID    uint
	updateSKU   string
	updateSet   int
	updateDelta int
)

var updateQtyCmd = &cobra.Command{
	Use:   "update-qty",
	Short: "Update product quantity (set or delta)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := boot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		ref := refFromFlags(cmd, &updateID, &updateSKU)

		var n int64
		if cmd.Flags().Changed("set") {
			n, err = svc.SetQuantity(ref, updateSet)
		} else {
			n, err = svc.AdjustQuantity(ref, updateDelta)
		}
		if errors.Is(err, services.ErrMissingIdentifier) {
			fmt.Fprintln(out, "Provide --id or --sku to identify a product.")
			return nil
		}
		if err != nil {
			return err
		}
		if n == 0 {
			fmt.Fprintln(out, "No matching product found.")
			return nil
		}
		fmt.Fprintf(out, "Updated quantity for %d row(s).\n", n)
		return nil
	},
}

// ─── list ─────────────────────────────────────────────────────────────────────

var listSKU string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := boot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		products, err := svc.List(listSKU)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			fmt.Fprintln(out, "No products found.")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tSKU\tTITLE\tARTIST\tYEAR\tPRICE\tQTY")
		for _, p := range products {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
				p.ID, orDash(p.SKU), p.Title, orDash(p.Artist),
				orDash(p.Year), orDash(p.Price), p.Quantity)
		}
		return w.Flush()
	},
}

// ─── get ──────────────────────────────────────────────────────────────────────

var (
	getID  uint
	getSKU string
)

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Show one product by id or sku",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := boot()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		p, err := svc.Get(refFromFlags(cmd, &getID, &getSKU))
		if errors.Is(err, services.ErrMissingIdentifier) {
			fmt.Fprintln(out, "Provide --id or --sku to get a product.")
			return nil
		}
		if errors.Is(err, repositories.ErrNotFound) {
			fmt.Fprintln(out, "Product not found.")
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "id: %d\n", p.ID)
		fmt.Fprintf(out, "sku: %s\n", orDash(p.SKU))
		fmt.Fprintf(out, "title: %s\n", p.Title)
		fmt.Fprintf(out, "artist: %s\n", orDash(p.Artist))
		fmt.Fprintf(out, "year: %s\n", orDash(p.Year))
		fmt.Fprintf(out, "price: %s\n", orDash(p.Price))
		fmt.Fprintf(out, "quantity: %d\n", p.Quantity)
		return nil
	},
}

// ─── helpers ──────────────────────────────────────────────────────────────────

// refFromFlags builds a Ref from --id/--sku. When both were given the id
// wins; when neither was, the ref stays empty and the service answers
// ErrMissingIdentifier.
func refFromFlags(cmd *cobra.Command, id *uint, sku *string) repositories.Ref {
	var ref repositories.Ref
	if cmd.Flags().Changed("id") {
		ref.ID = id
	} else if cmd.Flags().Changed("sku") {
		ref.SKU = sku
	}
	return ref
}

// orDash renders an optional column, "-" for NULL.
func orDash[T any](v *T) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func init() {
	f := addCmd.Flags()
	f.StringVar(&addTitle, "title", "", "product title (required)")
	f.StringVar(&addArtist, "artist", "", "artist name")
	f.IntVar(&addYear, "year", 0, "year of creation")
	f.Float64Var(&addPrice, "price", 0, "unit price")
	f.IntVar(&addQuantity, "quantity", 0, "initial quantity")
	f.StringVar(&addSKU, "sku", "", "unique stock-keeping unit")
	_ = addCmd.MarkFlagRequired("title")

	f = removeCmd.Flags()
	f.UintVar(&removeID, "id", 0, "product id")
	f.StringVar(&removeSKU, "sku", "", "product sku")

	f = updateQtyCmd.Flags()
	f.UintVar(&updateID, "id", 0, "product id")
	f.StringVar(&updateSKU, "sku", "", "product sku")
	f.IntVar(&updateSet, "set", 0, "set absolute quantity")
	f.IntVar(&updateDelta, "delta", 0, "add/subtract from current quantity")
	updateQtyCmd.MarkFlagsMutuallyExclusive("set", "delta")
	updateQtyCmd.MarkFlagsOneRequired("set", "delta")

	listCmd.Flags().StringVar(&listSKU, "sku", "", "only rows with this sku")

	f = getCmd.Flags()
	f.UintVar(&getID, "id", 0, "product id")
	f.StringVar(&getSKU, "sku", "", "product sku")
}
