package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/valyala/fasthttp"

	"sentence-engine/internal/catalog"
	"sentence-engine/internal/config"
	"sentence-engine/internal/engine"
	"sentence-engine/internal/handler"
)

var rootCmd = &cobra.Command{
	Use:          "sentence-engine",
	Short:        "Deterministic sentence calculation engine and offence catalog",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "catalog database path")
	rootCmd.PersistentFlags().String("port", "", "listen port for serve")
	_ = viper.BindPFlag("database.path", rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag("server.port", rootCmd.PersistentFlags().Lookup("port"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(offencesCmd())
	rootCmd.AddCommand(calculateCmd())
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openCatalog(ctx context.Context, cfg *config.Config) (*catalog.Store, error) {
	store, err := catalog.Open(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return store, nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the calculation API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			store, err := openCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			h := handler.New(store, slog.Default())
			slog.Info("sentence engine listening", "port", cfg.Port, "database", cfg.DatabasePath)
			return fasthttp.ListenAndServe(":"+cfg.Port, h.Handle)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [dataset.yaml]",
		Short: "Load an offence dataset into the catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			path := cfg.DatasetPath
			if len(args) == 1 {
				path = args[0]
			}

			store, err := openCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			counts, err := store.SeedFromFile(cmd.Context(), path)
			if err != nil {
				return err
			}
			slog.Info("seed complete", "dataset", path, "offences", counts.Offences, "matrix_rows", counts.MatrixRows)
			return nil
		},
	}
}

func offencesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "offences <query>",
		Short: "Search the offence catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			store, err := openCatalog(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			matches, err := store.SearchOffences(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			for _, o := range matches {
				fmt.Printf("%s  %s  [%s]\n", o.OffenceID, o.CanonicalName, o.Provision)
			}
			if len(matches) == 0 {
				fmt.Println("no matches")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 5, "maximum results")
	return cmd
}

// calculateCmd runs one self-contained calculation from a request file: the
// offence record and any matrix rows must be inline, no catalog involved.
func calculateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calculate <request.json>",
		Short: "Run a single calculation from a JSON request file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var req handler.CalculateRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("invalid request file: %w", err)
			}
			if req.Offence == nil {
				return fmt.Errorf("request file must contain an inline offence record")
			}

			input, err := req.ToInput(*req.Offence)
			if err != nil {
				return err
			}

			result, err := engine.Calculate(input, req.MatrixRows)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
