package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/safar/go-store-assistant/internal/assistant"
	"github.com/safar/go-store-assistant/internal/cart"
	"github.com/safar/go-store-assistant/internal/catalog"
	"github.com/safar/go-store-assistant/internal/checkout"
	"github.com/safar/go-store-assistant/internal/config"
	"github.com/safar/go-store-assistant/internal/httpapi"
	"github.com/safar/go-store-assistant/internal/kvstore"
	"github.com/safar/go-store-assistant/internal/logging"
	"github.com/safar/go-store-assistant/internal/services"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "shop",
	Short: "Retail storefront demo with a rule-based shopping assistant",
	Long: `shop is a self-contained retail storefront demo: product browsing
and search, a persistent cart, a checkout wizard, and a rule-based
assistant that turns free-text commands into cart and search actions.

All state lives locally; auth, payments and store lookups are
simulated.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the storefront HTTP API",
	RunE:  runServe,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Talk to the shopping assistant interactively",
	Long: `Starts an interactive assistant session. Type a message and press
enter; offered actions are numbered and can be activated by typing the
number. "voice <text>" plays the text through the simulated speech
recognizer. "quit" exits.`,
	RunE: runChat,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, chatCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// deps is the wired-up application: one of everything, sharing the
// same store and cart.
type deps struct {
	cfg       *config.Config
	store     *kvstore.Store
	catalog   *catalog.Catalog
	cart      *cart.Cart
	views     *httpapi.ViewState
	assistant *assistant.Assistant
	compare   *services.PriceComparison
	locator   *services.Locator
	auth      *services.Auth
	flow      *checkout.Flow
	history   *checkout.History
}

func buildDeps() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store, err := kvstore.Open(cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat := catalog.New()
	c := cart.New(cart.WithStorage(store), cart.WithLogger(logger))
	views := httpapi.NewViewState()

	classifier := assistant.NewClassifier(cat.ListAll(), cfg.Assistant.MaxSuggestions)
	session := assistant.NewSession()
	dispatcher := assistant.NewDispatcher(c, views, views, logger)
	asst := assistant.New(classifier, session, dispatcher, c, logger)

	latency := cfg.Services.SimulatedLatency
	history := checkout.NewHistory(store)
	return &deps{
		cfg:       cfg,
		store:     store,
		catalog:   cat,
		cart:      c,
		views:     views,
		assistant: asst,
		compare:   services.NewPriceComparison(latency, logger),
		locator:   services.NewLocator(latency, logger),
		auth:      services.NewAuth(store, latency, logger),
		flow:      checkout.NewFlow(c, services.NewPayments(latency, logger), history, logger),
		history:   history,
	}, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.store.Close()

	server := httpapi.NewServer(d.catalog, d.cart, d.assistant, d.compare, d.locator, d.auth, d.flow, d.history, d.views, logger)

	httpServer := &http.Server{
		Addr:         ":" + d.cfg.Server.Port,
		Handler:      server,
		ReadTimeout:  d.cfg.Server.ReadTimeout,
		WriteTimeout: d.cfg.Server.WriteTimeout,
	}

	logger.Info("server starting", zap.String("port", d.cfg.Server.Port))
	return httpServer.ListenAndServe()
}

func runChat(cmd *cobra.Command, args []string) error {
	d, err := buildDeps()
	if err != nil {
		return err
	}
	defer d.store.Close()

	return chatLoop(d, os.Stdin, os.Stdout)
}
