package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/profile"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/nightcaste/internal/audio"
	"github.com/KirkDiggler/nightcaste/internal/behaviours"
	"github.com/KirkDiggler/nightcaste/internal/config"
	"github.com/KirkDiggler/nightcaste/internal/dice"
	"github.com/KirkDiggler/nightcaste/internal/events"
	"github.com/KirkDiggler/nightcaste/internal/game"
	"github.com/KirkDiggler/nightcaste/internal/input"
	"github.com/KirkDiggler/nightcaste/internal/processors"
	"github.com/KirkDiggler/nightcaste/internal/repositories/entities"
)

func main() {
	os.Exit(start())
}

// start runs the game and returns the process exit code once every deferred
// cleanup has run
func start() int {
	profileMode := flag.String("profile", "", "write a profile to the working directory: cpu or mem")
	logFile := flag.String("log", "nightcaste.log", "log file used when NIGHTCASTE_DEBUG is set")
	flag.Parse()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// The terminal belongs to tcell, so logs go to a file or nowhere
	if cfg.Debug {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}
	if envErr != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		fmt.Fprintf(os.Stderr, "Unknown profile mode %q\n", *profileMode)
		return 2
	}

	if err := run(cfg); err != nil {
		log.Printf("Game stopped: %v", err)
		fmt.Fprintf(os.Stderr, "nightcaste: %v\n", err)
		return 1
	}
	return 0
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	dispatcher := events.NewDispatcher()

	player, err := seedWorld(ctx, repo)
	if err != nil {
		return err
	}

	var sound audio.Player = audio.Silent{}
	if cfg.Sound {
		speakerPlayer, err := audio.NewSpeakerPlayer()
		if err != nil {
			log.Printf("Sound disabled: %v", err)
		} else {
			sound = speakerPlayer
		}
	}
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	terminal := input.NewTerminal(dispatcher)

	registry := behaviours.NewRegistry(behaviours.DefaultFactories(), behaviours.Deps{
		Publisher: dispatcher,
		Input:     terminal,
		Roller:    dice.NewRandomRoller(),
	})
	if err := registry.Configure(cfg.Behaviours); err != nil {
		return err
	}

	processors.NewMovementProcessor(repo, dispatcher).Register(dispatcher)
	processors.NewSoundProcessor(sound).Register(dispatcher)
	if cfg.Debug {
		processors.NewTraceProcessor().Register(dispatcher)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// PollEvent blocks, so it gets its own goroutine; events are applied on the engine goroutine
	pending := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			pending <- ev
		}
	}()

	view := newRenderer(screen, repo, player)
	engine := game.NewEngine(&game.EngineConfig{
		Bus:     dispatcher,
		Updater: behaviours.NewUpdater(registry, repo),
		BeforeRound: func(int64) {
			for {
				select {
				case ev := <-pending:
					if isQuit(ev) {
						cancel()
						return
					}
					terminal.HandleEvent(ev)
				default:
					return
				}
			}
		},
		AfterRound: func(round int64) {
			terminal.EndRound()
			view.draw(ctx, round)
		},
	})

	dispatcher.Publish(events.WorldEnter, nil)
	view.draw(ctx, 0)
	log.Printf("Game: Running with %s tick, behaviours bound to %v", cfg.Tick, registry.Bindings())

	return engine.Run(ctx, cfg.Tick)
}

func isQuit(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}
	return key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC ||
		(key.Key() == tcell.KeyRune && key.Rune() == 'q')
}

// openStore connects to Redis when a URL is configured and keeps the world in memory otherwise
func openStore(ctx context.Context, cfg *config.Config) (entities.Repository, func(), error) {
	if cfg.Redis.URL == "" {
		log.Println("Using in-memory world")
		return entities.NewInMemory(), func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Printf("Connected to Redis at %s", opts.Addr)

	return entities.NewRedis(client, cfg.WorldID), func() {
		if err := client.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}, nil
}
