package meta

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full set of knobs for one invocation.
type Config struct {
	Decks          int
	Target         int
	Sessions       int
	Window         int
	MinDepth       int
	Workers        int
	Seed           uint64
	StrategiesFile string   // YAML table, empty for the built-in strategies
	Strategies     []string // Subset to simulate, empty for all
	OutDir         string
	DatabaseURL    string
	Retention      time.Duration // Stored runs older than this are pruned, 0 keeps all
	Serve          string        // Address of the results API, empty to skip
	Replay         bool          // Serve the latest stored run instead of simulating
	DumpStrategies string        // Write the strategy table here and exit
	Debug          bool
}

func Defaults() Config {
	return Config{
		Decks:    DECKS,
		Target:   TARGET,
		Sessions: SESSIONS,
		Window:   WINDOW,
		MinDepth: MIN_DEPTH,
		OutDir:   OUT_DIR,
	}
}

// Load builds the configuration from defaults, then environment files (".env" when none
// are given), then BLACKJACK_* variables, then command-line args. Later sources win.
func Load(args []string, envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && len(envFiles) > 0 {
		return Config{}, fmt.Errorf("failed to load env file: %w", err)
	}

	cfg := Defaults()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("blackjack", flag.ContinueOnError)
	fs.IntVar(&cfg.Decks, "decks", cfg.Decks, "Decks per shoe")
	fs.IntVar(&cfg.Target, "target", cfg.Target, "Total the count-driven policy stands on")
	fs.IntVar(&cfg.Sessions, "sessions", cfg.Sessions, "Shoe sessions per strategy")
	fs.IntVar(&cfg.Window, "window", cfg.Window, "Trailing rounds scored per session")
	fs.IntVar(&cfg.MinDepth, "min-depth", cfg.MinDepth, "Fewest cards left for another round")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Strategies simulated in parallel (0 for all cores)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed (0 picks one from the clock)")
	fs.StringVar(&cfg.StrategiesFile, "strategies", cfg.StrategiesFile, "YAML strategy table")
	only := fs.String("only", strings.Join(cfg.Strategies, ","), "Comma-separated strategies to simulate")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "Directory for result files (empty to skip)")
	fs.StringVar(&cfg.DatabaseURL, "database-url", cfg.DatabaseURL, "PostgreSQL connection string")
	fs.DurationVar(&cfg.Retention, "retention", cfg.Retention, "Prune stored runs older than this")
	fs.StringVar(&cfg.Serve, "serve", cfg.Serve, "Serve results over HTTP on this address")
	fs.BoolVar(&cfg.Replay, "replay", cfg.Replay, "Serve the latest stored run without simulating")
	fs.StringVar(&cfg.DumpStrategies, "dump-strategies", cfg.DumpStrategies, "Write the strategy table to this file and exit")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	cfg.Strategies = splitList(*only)

	if cfg.Replay && (cfg.DatabaseURL == "" || cfg.Serve == "") {
		return Config{}, fmt.Errorf("replay needs both -database-url and -serve")
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	ints := map[string]*int{
		"BLACKJACK_DECKS":     &cfg.Decks,
		"BLACKJACK_TARGET":    &cfg.Target,
		"BLACKJACK_SESSIONS":  &cfg.Sessions,
		"BLACKJACK_WINDOW":    &cfg.Window,
		"BLACKJACK_MIN_DEPTH": &cfg.MinDepth,
		"BLACKJACK_WORKERS":   &cfg.Workers,
	}
	for key, dst := range ints {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", key, err)
			}
			*dst = n
		}
	}

	if v := strings.TrimSpace(os.Getenv("BLACKJACK_SEED")); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid BLACKJACK_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := strings.TrimSpace(os.Getenv("BLACKJACK_RETENTION")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid BLACKJACK_RETENTION: %w", err)
		}
		cfg.Retention = d
	}

	if v, ok := os.LookupEnv("BLACKJACK_STRATEGIES"); ok {
		cfg.StrategiesFile = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("BLACKJACK_ONLY"); ok {
		cfg.Strategies = splitList(v)
	}
	if v, ok := os.LookupEnv("BLACKJACK_OUT"); ok {
		cfg.OutDir = strings.TrimSpace(v)
	}
	if v, ok := os.LookupEnv("BLACKJACK_SERVE"); ok {
		cfg.Serve = strings.TrimSpace(v)
	}
	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("BLACKJACK_DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	cfg.Debug = asBool(os.Getenv("BLACKJACK_DEBUG"))
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func asBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
