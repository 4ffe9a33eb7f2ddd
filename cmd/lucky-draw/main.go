package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/lucky-draw/audio"
	"github.com/lixenwraith/lucky-draw/config"
	"github.com/lixenwraith/lucky-draw/constants"
	"github.com/lixenwraith/lucky-draw/engine"
	"github.com/lixenwraith/lucky-draw/game"
	"github.com/lixenwraith/lucky-draw/i18n"
	"github.com/lixenwraith/lucky-draw/input"
	"github.com/lixenwraith/lucky-draw/render"
	"github.com/lixenwraith/lucky-draw/replay"
	"github.com/lixenwraith/lucky-draw/status"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	configFlag   = flag.String("config", "", "YAML config file")
	winnersFlag  = flag.Int("winners", 0, "Start a draw for this many winners immediately")
	replayFlag   = flag.String("replay", "", "Play a scripted draw from a YAML file")
	headlessFlag = flag.Bool("headless", false, "Run -replay without a terminal and print the winners")
	debugFlag    = flag.Bool("debug", false, "Write logs/lucky-draw.log and show the metrics line")
	localeFlag   = flag.String("locale", "", "Status bar language: en, ko")
	keymapFlag   = flag.String("keymap", "", "YAML keymap override")
	timeoutFlag  = flag.Duration("timeout", 2*time.Minute, "Headless replay time limit")
)

// Simulated terminal size for headless replays
const (
	headlessWidth  = 100
	headlessHeight = 41
)

// activeScreen is restored by the crash guard
var (
	screenMu     sync.Mutex
	activeScreen tcell.Screen
)

// crashGuard restores the terminal before reporting a panic
// Deferred at the top of every goroutine that touches the session
func crashGuard() {
	if r := recover(); r != nil {
		screenMu.Lock()
		if activeScreen != nil {
			activeScreen.Fini()
		}
		screenMu.Unlock()

		fmt.Fprintf(os.Stderr, "\n\x1b[31mLUCKY-DRAW CRASHED: %v\x1b[0m\n", r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		os.Exit(1)
	}
}

func main() {
	defer crashGuard()
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lucky-draw: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	applyFlags(&cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}

	keys, err := loadKeymap(cfg.Keymap)
	if err != nil {
		return err
	}

	var script *replay.Script
	if *replayFlag != "" {
		if script, err = replay.Load(*replayFlag); err != nil {
			return err
		}
	} else if *headlessFlag {
		return errors.New("-headless requires -replay")
	}

	screen, err := newScreen(*headlessFlag)
	if err != nil {
		return err
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()

	reg := status.NewRegistry()
	clock := clockwork.NewRealClock()
	scheduler := engine.NewScheduler(clock)

	base := render.NewLayer(0, 0, cfg.CellWidth, cfg.CellHeight)
	celebration := render.NewLayer(0, 0, cfg.CellWidth, cfg.CellHeight)
	compositor := render.NewCompositor(screen, base, celebration)
	compositor.Resize()

	var sound game.Sound
	if cfg.Sound && !*headlessFlag {
		sm := newSoundManager(cfg)
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	session, err := game.NewSession(cfg, scheduler, base, celebration, sound, reg)
	if err != nil {
		return err
	}

	var drawn []game.WinnersReady
	session.OnWinners(func(ev game.WinnersReady) {
		drawn = append(drawn, ev)
		log.Info().
			Str("session_id", ev.SessionID.String()).
			Int("requested", ev.Requested).
			Int("drawn", len(ev.Winners)).
			Msg("winners ready")
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *headlessFlag {
		ctx, stop = context.WithTimeout(ctx, *timeoutFlag)
		defer stop()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var player *replay.Player
	if script != nil {
		if player, err = replay.NewPlayer(script, session, clock.Now()); err != nil {
			return err
		}
	} else if *winnersFlag > 0 {
		if err := session.Start(*winnersFlag); err != nil {
			return err
		}
	}

	router := input.NewRouter(input.NewMachine(keys), session, base.ToSurface, func() {
		screen.Sync()
		compositor.Resize()
		session.Redraw()
	})

	frames := reg.Ints.Get("loop.frames")
	onFrame := func(now time.Time, dt time.Duration) {
		frames.Add(1)
		if player != nil {
			player.Advance(now)
		}
		session.Frame(now, dt)
		compositor.Draw(session.StatusBar())

		if *headlessFlag && player.Done() && (session.CelebrationDone() || session.Mode() == game.ModeIdle) {
			cancel()
		}
	}

	events := make(chan tcell.Event, constants.EventChannelSize)
	loop := engine.NewLoop(scheduler, cfg.FrameInterval, events, router.Handle, onFrame)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer crashGuard()
		defer fini()
		defer cancel()
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer crashGuard()
		return engine.PumpEvents(gctx, screen, events)
	})

	err = g.Wait()
	fini()
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("replay did not finish within %v", *timeoutFlag)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info().Uint64("frames", loop.Frames()).Int("draws", len(drawn)).Msg("exit")
	if *headlessFlag {
		printer, err := i18n.NewPrinter(cfg.Locale)
		if err != nil {
			return err
		}
		printWinners(os.Stdout, printer, drawn)
	}
	return nil
}

// applyFlags overrides config values with explicitly set flags
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "locale":
			cfg.Locale = *localeFlag
		case "keymap":
			cfg.Keymap = *keymapFlag
		}
	})
}

func loadKeymap(path string) (*input.KeyTable, error) {
	if path == "" {
		return input.DefaultKeyTable(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}
	override, err := input.LoadKeyConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}

func newScreen(headless bool) (tcell.Screen, error) {
	var screen tcell.Screen
	if headless {
		sim := tcell.NewSimulationScreen("UTF-8")
		if err := sim.Init(); err != nil {
			return nil, fmt.Errorf("init simulation screen: %w", err)
		}
		sim.SetSize(headlessWidth, headlessHeight)
		screen = sim
	} else {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("create screen: %w", err)
		}
		if err := s.Init(); err != nil {
			return nil, fmt.Errorf("init screen: %w", err)
		}
		screen = s
	}

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.HideCursor()
	screen.Clear()

	screenMu.Lock()
	activeScreen = screen
	screenMu.Unlock()
	return screen, nil
}

func newSoundManager(cfg config.Config) *audio.SoundManager {
	ac := audio.DefaultAudioConfig()
	ac.MasterVolume = cfg.Volume
	return audio.NewSoundManager(ac)
}
