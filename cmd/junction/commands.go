package main

import (
	"fmt"

	"github.com/katalvlaran/junction/connectivity"
	"github.com/spf13/cobra"
)

func newResolveCmd(a *app) *cobra.Command {
	var details bool

	cmd := &cobra.Command{
		Use:   "resolve [file]",
		Short: "Print the x-coordinate product of the pair that completes connectivity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pts, err := a.readPoints(cmd, args)
			if err != nil {
				return err
			}
			res, err := connectivity.Resolve(pts, connectivity.WithLogger(a.logger))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if details {
				fmt.Fprintf(out, "pair: %s - %s\n", res.A, res.B)
				fmt.Fprintf(out, "distance: %.4f\n", res.Distance)
				fmt.Fprintf(out, "pairs processed: %d\n", res.Processed)
			}
			fmt.Fprintln(out, res.Scalar)

			return nil
		},
	}
	cmd.Flags().BoolVarP(&details, "details", "d", false, "also print the completing pair and distance")

	return cmd
}

func newCircuitsCmd(a *app) *cobra.Command {
	var connections, top int

	cmd := &cobra.Command{
		Use:   "circuits [file]",
		Short: "Join the k closest pairs and print the product of the largest circuit sizes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("connections") {
				connections = a.cfg.Circuits.Connections
			}
			if !cmd.Flags().Changed("top") {
				top = a.cfg.Circuits.Top
			}

			pts, err := a.readPoints(cmd, args)
			if err != nil {
				return err
			}
			c, err := connectivity.Connect(pts, connections, connectivity.WithLogger(a.logger))
			if err != nil {
				return err
			}
			product, err := c.Product(top)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), product)

			return nil
		},
	}
	cmd.Flags().IntVarP(&connections, "connections", "k", 0, "closest pairs to join (default from config: 1000)")
	cmd.Flags().IntVarP(&top, "top", "t", 0, "largest circuits to multiply (default from config: 3)")

	return cmd
}

func newPairsCmd(a *app) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "pairs [file]",
		Short: "List the closest pairs in processing order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Pairs.Limit
			}
			if limit < 0 {
				return fmt.Errorf("--limit cannot be negative, got %d", limit)
			}

			pts, err := a.readPoints(cmd, args)
			if err != nil {
				return err
			}
			pairs := connectivity.Pairs(pts)
			if limit > 0 && limit < len(pairs) {
				pairs = pairs[:limit]
			}
			for _, p := range pairs {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "pairs to print, 0 for all (default from config: 10)")

	return cmd
}
