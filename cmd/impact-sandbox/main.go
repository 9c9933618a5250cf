// impact-sandbox steps a scene of colliding bodies in the terminal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/impact/audio"
	"github.com/lixenwraith/impact/engine"
	"github.com/lixenwraith/impact/scene"
	"github.com/lixenwraith/impact/stream"
)

var (
	sceneFlag    = flag.String("scene", "", "Scene file (.toml, .yaml, .yml); defaults to ./"+scene.DefaultPath+" or the built-in demo")
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/impact.log")
	soundFlag    = flag.Bool("sound", false, "Play a click on every impact")
	serveFlag    = flag.String("serve", "", "Serve frames to websocket clients at addr, e.g. :8080 (path /ws)")
	watchFlag    = flag.Bool("watch", false, "Reload the scene file when it changes on disk")
	headlessFlag = flag.Int("headless", 0, "Run N ticks without a screen and print the state after each")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, scenePath, err := scene.LoadAuto(*sceneFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}
	if scenePath == "" {
		log.Printf("using built-in scene")
	} else {
		log.Printf("loaded scene %s", scenePath)
	}

	// Piped output gets the text trace instead of a screen
	if *headlessFlag > 0 || !term.IsTerminal(int(os.Stdout.Fd())) {
		ticks := *headlessFlag
		if ticks <= 0 {
			ticks = defaultHeadlessTicks
		}
		if err := runHeadless(os.Stdout, cfg, ticks); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	crash := func(r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mIMPACT CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
	// Restore the terminal even if the loop panics
	defer func() {
		if r := recover(); r != nil {
			crash(r)
		}
	}()
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()

	sandbox, err := NewSandbox(screen, engine.NewTimeProvider(), cfg, scenePath)
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to build scene: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *soundFlag {
		player := audio.NewImpactPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without sound)", err)
		} else {
			sandbox.player = player
			defer player.Cleanup()
		}
	}

	if *serveFlag != "" {
		hub := stream.NewHub(stream.DefaultConfig(), log.Default())
		srv := serveFrames(*serveFlag, hub)
		sandbox.hub = hub
		defer func() {
			hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	if *watchFlag {
		if scenePath == "" {
			log.Printf("-watch ignored: no scene file")
		} else {
			go watchScene(ctx, scenePath, sandbox.Reloads())
		}
	}

	sandbox.Run(ctx, crash)
}

// serveFrames starts the websocket endpoint in the background
func serveFrames(addr string, hub *stream.Hub) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("frame server on %s stopped: %v", addr, err)
		}
	}()
	log.Printf("serving frames on ws://%s/ws", addr)
	return srv
}

// watchScene forwards every valid change of path to reloads until ctx is done
func watchScene(ctx context.Context, path string, reloads chan<- scene.Config) {
	err := scene.Watch(ctx, path,
		func(cfg scene.Config) {
			select {
			case reloads <- cfg:
			case <-ctx.Done():
			}
		},
		func(err error) {
			log.Printf("scene watch: %v", err)
		},
	)
	if err != nil {
		log.Printf("scene watch stopped: %v", err)
	}
}
