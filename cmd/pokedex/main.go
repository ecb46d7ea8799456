// Command pokedex is the Pokédex data CLI: inspect records and manage the
// persisted record cache.
//
// Usage:
//
//	pokedex pokemon 25 --units imperial
//	pokedex species 133 --json
//	pokedex evolution 67
//	pokedex relatives 133
//	pokedex search pkch --limit 5
//	pokedex warm --from 1 --to 151 --workers 4
//	pokedex cache migrate
//	pokedex cache purge --key pokemon/25
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/pokedex-data/internal/cache"
	"github.com/albapepper/pokedex-data/internal/config"
	"github.com/albapepper/pokedex-data/internal/db"
	"github.com/albapepper/pokedex-data/internal/logging"
	"github.com/albapepper/pokedex-data/internal/maintenance"
	"github.com/albapepper/pokedex-data/internal/pokedex"
	"github.com/albapepper/pokedex-data/internal/provider"
	"github.com/albapepper/pokedex-data/internal/provider/pokeapi"
	"github.com/albapepper/pokedex-data/internal/store"
)

var logger = slog.Default()

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:           "pokedex",
		Short:         "Pokédex data CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(pokemonCmd())
	root.AddCommand(speciesCmd())
	root.AddCommand(evolutionCmd())
	root.AddCommand(relativesCmd())
	root.AddCommand(searchCmd())
	root.AddCommand(warmCmd())
	root.AddCommand(cacheCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// record commands
// --------------------------------------------------------------------------

func pokemonCmd() *cobra.Command {
	var (
		asJSON bool
		units  string
	)
	cmd := &cobra.Command{
		Use:   "pokemon <id>",
		Short: "Show a Pokémon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			u, err := provider.ParseUnitSystem(units)
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, app *app) error {
				p, err := app.svc.Pokemon(ctx, id)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), p)
				}
				printPokemon(cmd.OutOrStdout(), p, u)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw record as JSON")
	cmd.Flags().StringVar(&units, "units", string(provider.Metric), "Unit system (metric, imperial)")
	return cmd
}

func speciesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "species <id>",
		Short: "Show a species",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, app *app) error {
				sp, err := app.svc.Species(ctx, id)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), sp)
				}
				printSpecies(cmd.OutOrStdout(), sp)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw record as JSON")
	return cmd
}

func evolutionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "evolution <chain-id>",
		Short: "Show an evolution chain as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, app *app) error {
				chain, err := app.svc.EvolutionChain(ctx, id)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd.OutOrStdout(), chain)
				}
				printChain(cmd.OutOrStdout(), chain)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw record as JSON")
	return cmd
}

func relativesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relatives <species-id>",
		Short: "Show what a species evolves from and into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseIDArg(args[0])
			if err != nil {
				return err
			}
			return run(func(ctx context.Context, app *app) error {
				rel, err := app.svc.Relatives(ctx, id)
				if err != nil {
					return err
				}
				printRelatives(cmd.OutOrStdout(), rel)
				return nil
			})
		},
	}
}

func searchCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Find species whose name contains the query letters in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, app *app) error {
				results, err := app.svc.Search(ctx, args[0], limit)
				if err != nil {
					return err
				}
				printResources(cmd.OutOrStdout(), results)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", pokedex.DefaultSearchLimit, "Maximum results")
	return cmd
}

// --------------------------------------------------------------------------
// warm command
// --------------------------------------------------------------------------

func warmCmd() *cobra.Command {
	var from, to, workers int
	cmd := &cobra.Command{
		Use:   "warm",
		Short: "Prefetch species, their default Pokémon and evolution chains into the persisted cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, app *app) error {
				if app.pool == nil {
					return fmt.Errorf("DATABASE_URL is required to warm the persisted cache")
				}
				result := app.svc.Warm(ctx, from, to, workers)
				logger.Info("Warm finished", "summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("warm error", "error", e)
				}
				if result.SpeciesWarmed > 0 {
					_ = maintenance.AnalyzeRecordCache(ctx, app.pool, logger)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "First species ID")
	cmd.Flags().IntVar(&to, "to", 151, "Last species ID (inclusive)")
	cmd.Flags().IntVar(&workers, "workers", 4, "Concurrent worker count")
	return cmd
}

// --------------------------------------------------------------------------
// cache command
// --------------------------------------------------------------------------

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the persisted record cache",
	}
	cmd.AddCommand(cacheMigrateCmd())
	cmd.AddCommand(cachePurgeCmd())
	cmd.AddCommand(cacheStatsCmd())
	return cmd
}

func cacheMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the record_cache table if missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, app *app) error {
				if app.pool == nil {
					return fmt.Errorf("DATABASE_URL is required")
				}
				if err := app.pool.Migrate(ctx); err != nil {
					return err
				}
				logger.Info("Schema applied", "table", config.RecordCacheTable)
				return nil
			})
		},
	}
}

func cachePurgeCmd() *cobra.Command {
	var (
		key         string
		expiredOnly bool
	)
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete persisted records (one key, expired rows, or everything)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, app *app) error {
				switch {
				case key != "":
					if err := app.svc.Invalidate(ctx, key); err != nil {
						return err
					}
					logger.Info("Key purged", "key", key)
				case expiredOnly:
					if app.store == nil {
						return fmt.Errorf("DATABASE_URL is required")
					}
					n, err := app.store.PurgeExpired(ctx)
					if err != nil {
						return err
					}
					logger.Info("Expired records purged", "count", n)
				default:
					if err := app.svc.InvalidateAll(ctx); err != nil {
						return err
					}
					logger.Info("All records purged")
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "Cache key to purge, e.g. pokemon/25")
	cmd.Flags().BoolVar(&expiredOnly, "expired", false, "Only purge expired rows")
	return cmd
}

func cacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count persisted records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(func(ctx context.Context, app *app) error {
				if app.store == nil {
					return fmt.Errorf("DATABASE_URL is required")
				}
				st, err := app.store.Stats(ctx)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), st)
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// app holds what every command needs. pool and store are nil without
// DATABASE_URL.
type app struct {
	cfg   *config.Config
	svc   *pokedex.Service
	pool  *db.Pool
	store *store.Store
}

// run handles config loading, optional DB connection, service construction
// and context cancellation.
func run(fn func(ctx context.Context, app *app) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger = logging.New(cfg.LogFormat, cfg.LogLevel)

	a := &app{cfg: cfg}
	opts := pokedex.Options{
		Upstream: pokeapi.NewClient(pokeapi.Options{
			BaseURL:           cfg.PokeAPIBaseURL,
			RequestsPerMinute: cfg.PokeAPIRequestsPerMinute,
			Timeout:           cfg.PokeAPITimeout,
			Logger:            logger,
		}),
		TTL:    cfg.CacheTTL,
		Logger: logger,
	}

	if cfg.HasDatabase() {
		connectCtx, connectCancel := context.WithTimeout(ctx, 10*time.Second)
		pool, err := db.New(connectCtx, cfg)
		connectCancel()
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()
		a.pool = pool
		a.store = store.New(pool.Pool, logger)
		opts.Store = a.store
	}

	c := cache.New(cfg.CacheEnabled)
	defer c.Close()
	opts.Cache = c

	a.svc = pokedex.New(opts)
	return fn(ctx, a)
}

func parseIDArg(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", s)
	}
	return id, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
