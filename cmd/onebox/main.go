package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rithu453/onebox/internal/config"
	"github.com/rithu453/onebox/internal/creds"
	"github.com/rithu453/onebox/internal/db"
	"github.com/rithu453/onebox/internal/email"
	"github.com/rithu453/onebox/internal/llm"
	"github.com/rithu453/onebox/internal/services"
	"github.com/rithu453/onebox/internal/tui"
	"github.com/rithu453/onebox/internal/version"
)

func main() {
	configPathFlag := flag.String("config", "", "Path to JSON configuration file (default: ~/.config/onebox/config.json)")
	setupFlag := flag.Bool("setup", false, "Write a default configuration file and exit")
	versionFlag := flag.Bool("version", false, "Show version information and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n\n", version.GetVersionString())
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  %s [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Examples:\n")
		fmt.Fprintf(os.Stderr, "  %s                        # Run with default configuration\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --setup                # Write a default config file\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --config custom.json   # Use custom configuration\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  ONEBOX_CONFIG          Override default config file path\n")
		fmt.Fprintf(os.Stderr, "  ONEBOX_GEMINI_API_KEY  Default Gemini API key (a key stored via Settings wins)\n")
	}

	flag.Parse()

	if *versionFlag {
		fmt.Println(version.GetDetailedVersionString())
		return
	}

	configPath := getConfigPath(*configPathFlag)

	if *setupFlag {
		runSetup(configPath)
		return
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: could not load configuration: %v", err)
		cfg = config.DefaultConfig()
	}

	// Credential layering: a key stored via the Settings modal overrides the
	// config/env default.
	defaultKey := func() string {
		if cfg.LLM.APIKey != "" {
			return cfg.LLM.APIKey
		}
		return os.Getenv("ONEBOX_GEMINI_API_KEY")
	}
	resolver, err := creds.New(defaultKey)
	if err != nil {
		log.Printf("Warning: credential store unavailable: %v", err)
		resolver = creds.NewWithRing(nil, defaultKey)
	}

	var provider llm.Provider
	if cfg.LLM.Enabled {
		providerName := cfg.LLM.Provider
		arg := cfg.LLM.Endpoint
		if providerName == "bedrock" {
			arg = cfg.LLM.Region
			if arg == "" {
				arg = os.Getenv("AWS_REGION")
			}
		}
		provider, err = llm.NewProviderFromConfig(providerName, arg, cfg.LLM.Model, cfg.GetLLMTimeout(), resolver.Resolve)
		if err != nil {
			log.Printf("Warning: could not initialize LLM provider (%s): %v", providerName, err)
		}
	}

	// Optional SQLite store for cached classifications
	var cacheService services.CacheService
	var store *db.Store
	if cfg.LLM.CacheEnabled {
		dbPath := cfg.LLM.CachePath
		if dbPath == "" {
			dbPath = filepath.Join(config.DefaultCacheDir(), "classifications.sqlite3")
		}
		if st, err := db.Open(context.Background(), dbPath); err == nil {
			store = st
			cacheService = services.NewCacheService(db.NewClassificationStore(st))
		} else {
			log.Printf("Warning: could not open cache store: %v", err)
		}
	}

	mailStore := email.NewFixtureStore()
	mailbox := services.NewMailboxService(mailStore, cfg.ListDelay())
	classifier := services.NewClassifierService(provider, cacheService, cfg)
	reply := services.NewReplyService(mailStore, classifier)

	app := tui.NewApp(cfg, mailbox, classifier, reply, cacheService, resolver)
	runErr := app.Run()
	if store != nil {
		_ = store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", runErr)
		os.Exit(1)
	}
}

// getConfigPath resolves the config path: CLI flag, then ONEBOX_CONFIG, then
// the default under ~/.config/onebox.
func getConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if envPath := os.Getenv("ONEBOX_CONFIG"); envPath != "" {
		return envPath
	}
	return config.DefaultConfigPath()
}

// runSetup writes a default config file for the user to edit.
func runSetup(configPath string) {
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Configuration already exists at %s\n", configPath)
		return
	}
	cfg := config.DefaultConfig()
	if err := cfg.SaveConfig(configPath); err != nil {
		log.Fatalf("Could not write configuration: %v", err)
	}
	fmt.Printf("Wrote default configuration to %s\n", configPath)
	fmt.Println("Set ONEBOX_GEMINI_API_KEY (or llm.api_key in the config) to enable classification.")
}
