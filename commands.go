package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"headersearch/internal/catalog"
	"headersearch/internal/config"
	"headersearch/internal/domain"
	"headersearch/internal/eventbus"
	"headersearch/internal/search"
)

var (
	configPath   string
	machinesPath string
	productsPath string
	jsonOutput   bool
)

var rootCmd = &cobra.Command{
	Use:   "headersearch",
	Short: "Catalog search with navigation suggestions",
	Long:  "Interactive header search over the machine and product catalog, with keyword-routed page suggestions.",
	RunE:  runTUI,
	// Errors are printed once by main
	SilenceUsage:  true,
	SilenceErrors: true,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive search header",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Print the grouped results for a query",
	Long:  "Runs one query through the search engine and prints machines, products and page suggestions as the dropdown would show them.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the default config file if there is none and print its path",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVar(&machinesPath, "machines", "", "machines catalog file (.json or .toml)")
	rootCmd.PersistentFlags().StringVar(&productsPath, "products", "", "products catalog file (.json or .toml)")
	queryCmd.Flags().BoolVar(&jsonOutput, "json", false, "print results as JSON")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file and applies the catalog flag overrides
func loadConfig(bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	svc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if machinesPath != "" {
		cfg.Catalog.Machines = machinesPath
	}
	if productsPath != "" {
		cfg.Catalog.Products = productsPath
	}
	return cfg, svc, nil
}

// loadCatalog loads the configured catalog and announces it on the bus
func loadCatalog(cfg *config.Config, bus eventbus.EventBus) (*catalog.Store, error) {
	store, err := catalog.Load(cfg.Catalog.Machines, cfg.Catalog.Products)
	if err != nil {
		return nil, err
	}

	source := "built-in"
	if cfg.Catalog.Machines != "" || cfg.Catalog.Products != "" {
		source = strings.TrimSpace(cfg.Catalog.Machines + " " + cfg.Catalog.Products)
	}
	machines, products := store.Len()
	log.Printf("Catalog loaded from %s: %d machines, %d products", source, machines, products)
	if bus != nil {
		bus.Publish(eventbus.CatalogLoadedEvent{Machines: machines, Products: products, Source: source})
	}
	return store, nil
}

func runQuery(cmd *cobra.Command, args []string) error {
	// The query command stays quiet; logging goes nowhere
	log.SetOutput(io.Discard)

	cfg, _, err := loadConfig(nil)
	if err != nil {
		return err
	}
	store, err := loadCatalog(cfg, nil)
	if err != nil {
		return err
	}

	engine := search.NewEngine(store, search.NewDefaultRouter(), nil)
	results := engine.Search(strings.Join(args, " "))

	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), results)
	}
	printResults(cmd.OutOrStdout(), results)
	return nil
}

type jsonResult struct {
	Category    domain.Category `json:"category"`
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Subtitle    string          `json:"subtitle,omitempty"`
	Thumbnail   string          `json:"thumbnail,omitempty"`
	Destination string          `json:"destination"`
}

func printJSON(w io.Writer, results []domain.SearchResult) error {
	out := make([]jsonResult, 0, len(results))
	for _, r := range results {
		out = append(out, jsonResult{
			Category:    r.Category,
			ID:          r.SourceID,
			Title:       r.Title,
			Subtitle:    r.Subtitle,
			Thumbnail:   r.Thumbnail,
			Destination: r.Destination,
		})
	}

	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printResults(w io.Writer, results []domain.SearchResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "Sin resultados")
		return
	}

	var current domain.Category
	for i, r := range results {
		if i == 0 || r.Category != current {
			current = r.Category
			fmt.Fprintln(w, current.Label())
		}
		line := "  " + r.Title
		if r.Subtitle != "" {
			line += "  (" + r.Subtitle + ")"
		}
		fmt.Fprintf(w, "%s  → %s\n", line, r.Destination)
	}
}

func runConfig(cmd *cobra.Command, args []string) error {
	log.SetOutput(io.Discard)

	svc := config.NewConfigService(configPath)
	if _, err := os.Stat(svc.Path()); os.IsNotExist(err) {
		if err := svc.Save(config.DefaultConfig()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), svc.Path())
	return nil
}
