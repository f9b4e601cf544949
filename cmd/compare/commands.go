package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pricecompare/internal/client"
	"pricecompare/internal/config"
	"pricecompare/internal/logging"
	"pricecompare/internal/view"
)

type options struct {
	apiURL     string
	minDisplay time.Duration
	verbose    bool
	brand      string
	priceRange string
	rating     string

	logger *zap.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	config.LoadEnvFiles()
	cfg := config.LoadClient()
	opts := &options{}

	root := &cobra.Command{
		Use:   "compare",
		Short: "Compare product prices across Amazon, Flipkart and Myntra",
		Long: `compare fetches products from the comparison API and shows the
three vendor offers for each one, marking the cheapest as the best deal.

Brand, price and rating filters are accepted and shown but do not narrow
the list yet; only the name search does.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validateFilters(); err != nil {
				return err
			}

			lc := cfg.Logger
			if opts.verbose {
				lc.Level = zapcore.DebugLevel.String()
			}
			logger, err := logging.New(lc)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.apiURL, "api", cfg.BaseURL, "base URL of the comparison API")
	pf.DurationVar(&opts.minDisplay, "min-display", cfg.MinSearchDisplay, "minimum time the search indicator stays visible")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log state transitions")
	pf.StringVar(&opts.brand, "brand", view.AllOption, "brand filter (not applied to results)")
	pf.StringVar(&opts.priceRange, "price", view.AllOption, "price range filter (not applied to results)")
	pf.StringVar(&opts.rating, "rating", view.AllOption, "minimum rating filter (not applied to results)")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show every product",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), opts, out, func(ctx context.Context, c *view.Controller) {
					c.Mount(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "search [query...]",
			Short: "Search products by name",
			Long: `Searches product names, ignoring case. A blank query lists every
product.`,
			RunE: func(cmd *cobra.Command, args []string) error {
				query := strings.Join(args, " ")
				return run(cmd.Context(), opts, out, func(ctx context.Context, c *view.Controller) {
					c.SetQuery(query)
					c.Submit(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Clear the search and show every product",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return run(cmd.Context(), opts, out, func(ctx context.Context, c *view.Controller) {
					c.Clear(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "ping",
			Short: "Check that the comparison API is up",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return ping(cmd.Context(), opts, out)
			},
		},
	)

	return root
}

func (o *options) validateFilters() error {
	checks := []struct {
		flag    string
		value   string
		allowed []string
	}{
		{"brand", o.brand, view.BrandOptions},
		{"price", o.priceRange, view.PriceRangeOptions},
		{"rating", o.rating, view.RatingOptions},
	}
	for _, c := range checks {
		if !slices.Contains(c.allowed, c.value) {
			return fmt.Errorf("invalid --%s %q, expected one of %s", c.flag, c.value, strings.Join(c.allowed, ", "))
		}
	}
	return nil
}

func ping(ctx context.Context, opts *options, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := client.New(opts.apiURL).Health(ctx)
	if err != nil {
		return fmt.Errorf("api not reachable at %s: %w", opts.apiURL, err)
	}
	_, err = fmt.Fprintln(out, res.Message)
	return err
}

func run(ctx context.Context, opts *options, out io.Writer, action func(context.Context, *view.Controller)) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	c := view.NewController(client.New(opts.apiURL),
		view.WithLogger(logger),
		view.WithMinSearchDisplay(opts.minDisplay),
		view.OnChange(func(s view.State) {
			logger.Debug("state changed", zap.Stringer("status", s.Status), zap.Int("products", len(s.Products)))
		}),
	)
	c.SetBrand(opts.brand)
	c.SetPriceRange(opts.priceRange)
	c.SetRating(opts.rating)

	action(ctx, c)

	return view.NewRenderer(out).Render(c.State())
}
