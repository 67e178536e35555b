package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	off "github.com/openfoodfacts/openfoodfacts-go"
)

var (
	locale     string
	host       string
	apiVersion string
	username   string
	password   string
	userAgent  string
	debug      bool
)

const requestTimeout = 15 * time.Second

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
		Use:   "off",
		Short: "Query the Open Food Facts API and print the raw JSON responses",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize logger
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			// Set log level based on debug flag
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("OFF_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&locale, "locale", "world", "Locale selecting the API subdomain, \"{cc}\" or \"{cc}-{lc}\"")
	rootCmd.PersistentFlags().StringVar(&host, "host", off.DefaultHost, "API domain")
	rootCmd.PersistentFlags().StringVar(&apiVersion, "api-version", "v0", "API generation, v0 or v2")
	rootCmd.PersistentFlags().StringVar(&username, "username", "", "Basic-auth username (staging environment)")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "Basic-auth password (staging environment)")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "Override the default User-Agent header")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	// Sub-commands
	rootCmd.AddCommand(newTaxonomyCmd())
	rootCmd.AddCommand(newFacetCmd())
	rootCmd.AddCommand(newCategoriesCmd())
	rootCmd.AddCommand(newNutrientsCmd())
	rootCmd.AddCommand(newProductsByCmd())
	rootCmd.AddCommand(newProductCmd())
	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newSearchByBarcodesCmd())

	return rootCmd
}

// buildClient assembles the API client from the persistent flags.
func buildClient() (*off.Client, error) {
	v, err := off.ParseAPIVersion(apiVersion)
	if err != nil {
		return nil, err
	}
	b := off.V0()
	if v == off.APIVersionV2 {
		b = off.V2()
	}
	b.Locale(off.ParseLocale(locale)).Host(host)
	if username != "" || password != "" {
		b.Auth(username, password)
	}
	if userAgent != "" {
		b.UserAgent(userAgent)
	}
	return b.Build()
}

// outputFromFlags builds the per-call output options from whichever
// output flags the command defines and the user set.
func outputFromFlags(cmd *cobra.Command, page, pageSize int, fields string, nocache bool) *off.Output {
	o := &off.Output{}
	if cmd.Flags().Changed("page") {
		o.Page = off.Int(page)
	}
	if cmd.Flags().Changed("page-size") {
		o.PageSize = off.Int(pageSize)
	}
	if fields != "" {
		o.Fields = fields
	}
	if cmd.Flags().Changed("nocache") {
		o.NoCache = off.Bool(nocache)
	}
	return o
}

// printResponse streams the raw response body to stdout. A non-2xx
// status becomes a command error after the body is printed, so scripts
// still see the server's JSON error document.
func printResponse(cmd *cobra.Command, resp *http.Response) error {
	defer func() { _ = resp.Body.Close() }()

	log.Debug().
		Int("status_code", resp.StatusCode).
		Str("status", resp.Status).
		Msg("response received")

	if _, err := io.Copy(cmd.OutOrStdout(), resp.Body); err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}

// parseParts splits a colon-separated flag value into exactly n parts.
func parseParts(flag, s string, n int) ([]string, error) {
	parts := strings.SplitN(s, ":", n)
	if len(parts) != n {
		return nil, fmt.Errorf("--%s expects %d colon-separated parts, got %q", flag, n, s)
	}
	return parts, nil
}

// cmpOps maps the spelled-out comparison names used on the command line
// to the v2 key tokens.
var cmpOps = map[string]string{
	"eq":  off.CmpEq,
	"lt":  off.CmpLt,
	"lte": off.CmpLte,
	"gt":  off.CmpGt,
	"gte": off.CmpGte,
}

func newTaxonomyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "taxonomy <name>",
		Short: "Fetch a taxonomy (additives, allergens, brands, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("taxonomy", args[0]).Msg("fetching taxonomy")

			c, err := buildClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.Taxonomy(ctx, args[0])
			if err != nil {
				log.Error().Err(err).Str("taxonomy", args[0]).Msg("taxonomy failed")
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	return cmd
}

func newFacetCmd() *cobra.Command {
	var page, pageSize int
	var fields string
	var nocache bool

	cmd := &cobra.Command{
		Use:   "facet <name>",
		Short: "Fetch a facet listing (brands, labels, countries, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("facet", args[0]).Msg("fetching facet")

			c, err := buildClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.Facet(ctx, args[0], outputFromFlags(cmd, page, pageSize, fields, nocache))
			if err != nil {
				log.Error().Err(err).Str("facet", args[0]).Msg("facet failed")
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Result page")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Result page size")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")
	cmd.Flags().BoolVar(&nocache, "nocache", false, "Ask the server to bypass its cache")

	return cmd
}

func newCategoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Fetch the category listing (always the world subdomain)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.Categories(ctx, nil)
			if err != nil {
				log.Error().Err(err).Msg("categories failed")
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	return cmd
}

func newNutrientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nutrients",
		Short: "Fetch the per-country nutrient list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := buildClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.Nutrients(ctx, nil)
			if err != nil {
				log.Error().Err(err).Msg("nutrients failed")
				return err
			}
			return printResponse(cmd, resp)
		},
	}
	return cmd
}

func newProductsByCmd() *cobra.Command {
	var page, pageSize int
	var fields string

	cmd := &cobra.Command{
		Use:   "products-by <what> <id>",
		Short: "Fetch products for a facet or category value (brand nestle, category cheeses, ...)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("what", args[0]).Str("id", args[1]).Msg("fetching products")

			c, err := buildClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.ProductsBy(ctx, args[0], args[1], outputFromFlags(cmd, page, pageSize, fields, false))
			if err != nil {
				log.Error().Err(err).Str("what", args[0]).Str("id", args[1]).Msg("products-by failed")
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "Result page")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "Result page size")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")

	return cmd
}

func newProductCmd() *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "product <barcode>",
		Short: "Fetch a single product by barcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("barcode", args[0]).Msg("fetching product")

			c, err := buildClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.Product(ctx, args[0], outputFromFlags(cmd, 0, 0, fields, false))
			if err != nil {
				log.Error().Err(err).Str("barcode", args[0]).Msg("product failed")
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")

	return cmd
}

func newSearchCmd() *cobra.Command {
	var criteria, ingredients, nutrients, tags, tagsLocalized []string
	var terms, sortBy, fields string

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search products; the query language follows --api-version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := off.ParseAPIVersion(apiVersion)
			if err != nil {
				return err
			}

			var query off.SearchQuery
			switch v {
			case off.APIVersionV0:
				if len(tags) > 0 || len(tagsLocalized) > 0 {
					return fmt.Errorf("--tag and --tag-localized are only valid with --api-version v2")
				}
				query, err = buildV0Query(criteria, ingredients, nutrients, terms, sortBy)
			case off.APIVersionV2:
				if len(criteria) > 0 || len(ingredients) > 0 || terms != "" {
					return fmt.Errorf("--criteria, --ingredient and --terms are only valid with --api-version v0")
				}
				query, err = buildV2Query(tags, tagsLocalized, nutrients, sortBy)
			}
			if err != nil {
				return err
			}

			log.Debug().Str("api_version", v.String()).Msg("searching products")

			c, err := buildClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			resp, err := c.Search(ctx, query, outputFromFlags(cmd, 0, 0, fields, false))
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("search failed")
				return err
			}
			log.Debug().Dur("elapsed", time.Since(start)).Msg("search completed")
			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().StringArrayVar(&criteria, "criteria", nil, "v0 tag filter \"name:op:value\", op contains|does_not_contain (repeatable)")
	cmd.Flags().StringArrayVar(&ingredients, "ingredient", nil, "v0 ingredient filter \"name:value\" (repeatable)")
	cmd.Flags().StringArrayVar(&nutrients, "nutrient", nil, "nutrient condition, v0 \"name:op:value\", v2 \"name:unit:op:value\" (repeatable)")
	cmd.Flags().StringVar(&terms, "terms", "", "v0 free-text product name filter")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "v2 tag filter \"name:value\" (repeatable)")
	cmd.Flags().StringArrayVar(&tagsLocalized, "tag-localized", nil, "v2 tag filter \"name:lc:value\" (repeatable)")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "Sort order (unique_scans_n, product_name, created_t, last_modified_t, ecoscore_score)")
	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")

	return cmd
}

func buildV0Query(criteria, ingredients, nutrients []string, terms, sortBy string) (*off.SearchQueryV0, error) {
	q := off.NewSearchQueryV0()
	for _, s := range criteria {
		p, err := parseParts("criteria", s, 3)
		if err != nil {
			return nil, err
		}
		q.Criteria(p[0], p[1], p[2])
	}
	for _, s := range ingredients {
		p, err := parseParts("ingredient", s, 2)
		if err != nil {
			return nil, err
		}
		q.Ingredient(p[0], p[1])
	}
	for _, s := range nutrients {
		p, err := parseParts("nutrient", s, 3)
		if err != nil {
			return nil, err
		}
		v, err := strconv.ParseUint(p[2], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("--nutrient value %q: %w", p[2], err)
		}
		q.Nutrient(p[0], p[1], uint(v))
	}
	if terms != "" {
		q.Terms(terms)
	}
	if sortBy != "" {
		q.SortBy(off.SortBy(sortBy))
	}
	return q, nil
}

func buildV2Query(tags, tagsLocalized, nutrients []string, sortBy string) (*off.SearchQueryV2, error) {
	q := off.NewSearchQueryV2()
	for _, s := range tags {
		p, err := parseParts("tag", s, 2)
		if err != nil {
			return nil, err
		}
		q.CriteriaTag(p[0], p[1])
	}
	for _, s := range tagsLocalized {
		p, err := parseParts("tag-localized", s, 3)
		if err != nil {
			return nil, err
		}
		q.CriteriaTagLocalized(p[0], p[1], p[2])
	}
	for _, s := range nutrients {
		p, err := parseParts("nutrient", s, 4)
		if err != nil {
			return nil, err
		}
		op, ok := cmpOps[p[2]]
		if !ok {
			return nil, fmt.Errorf("--nutrient op %q: want eq, lt, lte, gt or gte", p[2])
		}
		v, err := strconv.ParseUint(p[3], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("--nutrient value %q: %w", p[3], err)
		}
		q.Nutrient(p[0], p[1], op, uint(v))
	}
	if sortBy != "" {
		q.SortBy(off.SortBy(sortBy))
	}
	return q, nil
}

func newSearchByBarcodesCmd() *cobra.Command {
	var fields string

	cmd := &cobra.Command{
		Use:   "search-by-barcodes <codes>",
		Short: "Fetch products matching a comma-separated barcode list (v2 endpoint)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Debug().Str("codes", args[0]).Msg("searching by barcodes")

			c, err := buildClient()
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			resp, err := c.SearchByBarcodes(ctx, args[0], outputFromFlags(cmd, 0, 0, fields, false))
			if err != nil {
				log.Error().Err(err).Msg("search-by-barcodes failed")
				return err
			}
			return printResponse(cmd, resp)
		},
	}

	cmd.Flags().StringVar(&fields, "fields", "", "Comma-separated response fields")

	return cmd
}
