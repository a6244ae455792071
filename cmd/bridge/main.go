package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"signald-groups/contract"
	"signald-groups/directory"
	"signald-groups/formatter"
	"signald-groups/internal"
	"signald-groups/invitation"
	"signald-groups/membership"
	"signald-groups/protocol"
	"signald-groups/repositories"
	"signald-groups/router"
	"signald-groups/runtime"
	"signald-groups/runtime/workers"
	"signald-groups/services"
	"signald-groups/transport"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Bridge error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	config, err := internal.LoadConfig()
	if err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Storage: Badger always holds the history, the directory may live in Redis
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	store, closeStore, err := openDirectory(ctx, log, config, db)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = closeStore() }()

	// 3. signald connection
	socket, err := transport.Dial(ctx, log, config.SocketPath)
	if err != nil {
		return exitRuntime, err
	}
	defer func() { _ = socket.Close() }()

	settings := internal.NewSettings(config)
	go reloadOnHangup(ctx, log, settings)

	// 4. Components
	client := protocol.NewClient(log, socket, settings)
	history := repositories.NewMessageRepository(db, log, config.LimitMessages)
	conversations := runtime.NewConversations(log, history)
	registry := runtime.NewRegistry(log, conversations, client)
	sync, err := directory.NewSync(log, store, config.GroupingLabel)
	if err != nil {
		return exitConfig, err
	}
	groups := services.NewGroupService(log, client,
		invitation.NewPolicy(log, settings, client),
		sync,
		membership.NewReconciler(log, registry, conversations))
	chats := services.NewChatService(log, registry, conversations, client, settings)
	frames := services.NewFrameHandler(log, groups,
		router.NewRouter(log, registry, conversations, formatter.New(log)))
	commands := services.NewCommandHandler(log, chats, groups, store)
	engine := runtime.NewEngine(log, config.FrameBufferSize, socket.Done(), frames, commands)

	// 5. Supervised I/O workers, the engine runs on this goroutine
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(
		workers.NewSocketReader(log, socket, engine.Frames()),
		workers.NewConsole(log, os.Stdin, os.Stdout, engine),
		workers.NewChannelCapacityWorker(log,
			[]workers.NamedChannel{{Name: "frames", Channel: engine.Frames()}},
			config.MetricInterval, config.LowCapacityThreshold),
	)
	supervised := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supervised)
	}()

	if err := groups.RequestGroupList(); err != nil {
		log.Warn("Could not request group list", "error", err)
	}

	log.Info("Bridge started", "account", config.Account, "directory", config.DirectoryBackend)
	err = engine.Run(ctx)

	// 6. Shutdown
	sup.Stop()
	_ = socket.Close()
	<-supervised
	if err != nil {
		return exitRuntime, err
	}
	log.Info("Bridge stopped cleanly")
	return exitOK, nil
}

func openDirectory(ctx context.Context, log *slog.Logger, config internal.Config, db *badger.DB) (contract.IDirectoryStore, func() error, error) {
	if config.DirectoryBackend == internal.BackendRedis {
		repository, err := repositories.OpenRedisDirectory(ctx, config.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		log.Info("Directory stored in Redis")
		return repository, repository.Close, nil
	}
	return repositories.NewDirectoryRepository(db, log), func() error { return nil }, nil
}

// reloadOnHangup re-reads the configuration on SIGHUP. Only the settings read
// at runtime change: auto-accept, delayed echo and the account.
func reloadOnHangup(ctx context.Context, log *slog.Logger, settings *internal.Settings) {
	hangup := make(chan os.Signal, 1)
	signal.Notify(hangup, syscall.SIGHUP)
	defer signal.Stop(hangup)
	for {
		select {
		case <-ctx.Done():
			return
		case <-hangup:
			config, err := internal.ReloadConfig()
			if err != nil {
				log.Warn("Keeping previous settings", "error", err)
				continue
			}
			settings.Update(config)
			log.Info("Settings reloaded",
				"auto_accept", config.AutoAcceptInvitations,
				"delayed_echo", config.DelayedLocalEcho)
		}
	}
}
