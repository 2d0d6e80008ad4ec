package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-genius/internal/audio"
	"github.com/coreman2200/funtimes-genius/internal/button"
	"github.com/coreman2200/funtimes-genius/internal/config"
	"github.com/coreman2200/funtimes-genius/internal/feedback"
	"github.com/coreman2200/funtimes-genius/internal/game"
	"github.com/coreman2200/funtimes-genius/internal/layout"
	"github.com/coreman2200/funtimes-genius/internal/led"
	"github.com/coreman2200/funtimes-genius/internal/matrix"
	"github.com/coreman2200/funtimes-genius/internal/render"
	"github.com/coreman2200/funtimes-genius/internal/ws"
)

func main() {
	// ---- Flags (override config.yaml and GENIUS_* env) ----
	var (
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		driver     = flag.String("driver", "spi", "driver: spi | sim")
		brightness = flag.Float64("brightness", 0.35, "global brightness 0..1")
		seed       = flag.Int64("seed", 0, "seed of the first game (0 = random)")
		logLevel   = flag.String("log-level", "info", "trace | debug | info | warn | error")
		preview    = flag.Bool("preview", false, "serve the websocket preview")
		addr       = flag.String("addr", ":8080", "preview listen address")
		selftest   = flag.Bool("selftest", false, "run the matrix self-test and exit")
		saveConfig = flag.Bool("save-config", false, "write the effective config to -config and exit")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Config: defaults < config.yaml < env < flags ----
	if err := config.LoadDotEnv(); err != nil {
		log.Warn().Err(err).Msg(".env load failed")
	}
	cfg, found, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
	}
	if err := config.ApplyEnv(cfg); err != nil {
		log.Fatal().Err(err).Msg("config env override failed")
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "driver":
			cfg.Driver = *driver
		case "brightness":
			cfg.Brightness = *brightness
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		case "preview":
			cfg.Preview.Enabled = *preview
		case "addr":
			cfg.Preview.Addr = *addr
		}
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	} else {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level; using info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log.Debug().Bool("config_file", found).Str("path", *configPath).Str("driver", cfg.Driver).Msg("config")

	if *saveConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatal().Err(err).Msg("config save failed")
		}
		log.Info().Str("path", *configPath).Msg("config saved")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Hardware; any fault here is fatal ----
	l := layout.Layout{Width: cfg.Matrix.Width, Height: cfg.Matrix.Height, Serpentine: cfg.Matrix.Serpentine}
	latch := button.NewLatch(0)
	hw, err := openHardware(ctx, cfg, l, latch)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Driver).Msg("hardware init failed")
	}

	var hooks game.Hooks
	out := hw.strip
	if cfg.Preview.Enabled {
		hub := ws.NewHub(l, latch, log.Logger)
		out = led.Multi{hw.strip, hub}
		hooks = hub.Hooks()
		go func() {
			if err := hub.Serve(ctx, cfg.Preview.Addr); err != nil {
				log.Error().Err(err).Msg("preview server stopped")
			}
		}()
	}

	m, err := matrix.New(matrix.Config{
		Layout:     l,
		Driver:     out,
		Brightness: float32(cfg.Brightness),
		Limits: render.Limits{
			WhiteCap: cfg.Power.WhiteCap,
			ChanMA:   cfg.Power.ChanMA,
			BudgetMA: cfg.Power.BudgetMA,
		},
		Logger: &log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("matrix init failed")
	}
	defer m.Close()

	if *selftest {
		if err := matrix.SelfTest(ctx, m, 150*time.Millisecond); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal().Err(err).Msg("self-test failed")
		}
		log.Info().Msg("self-test done")
		return
	}

	// ---- Game ----
	var seeder game.Seeder
	if cfg.Seed != 0 {
		seeder = game.Sequential(cfg.Seed)
	}
	hold := time.Duration(cfg.Feedback.DisplayMs) * time.Millisecond
	ctrl := game.NewController(game.Config{
		Generator: game.NewGenerator(seeder),
		Buttons:   hw.buttons,
		Feedback:  feedback.New(m, hw.buzzer, hold, log.Logger),
		Timings:   game.DefaultTimings(),
		Hooks:     hooks,
		Logger:    &log.Logger,
	})

	log.Info().Str("driver", cfg.Driver).Int("leds", l.Count()).Bool("preview", cfg.Preview.Enabled).Msg("genius")
	err = game.NewLoop(ctrl).Run(ctx)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("shutting down")
		return
	}
	log.Fatal().Err(err).Msg("game stopped")
}

type hardware struct {
	strip   led.Driver
	buttons game.ButtonReader
	buzzer  audio.Buzzer
}

func openHardware(ctx context.Context, cfg *config.Config, l layout.Layout, latch *button.Latch) (*hardware, error) {
	switch cfg.Driver {
	case "spi":
		strip, err := led.OpenSPI(cfg.SPI.Dev, l.Count(), cfg.SPI.SpeedHz)
		if err != nil {
			return nil, err
		}
		buttons, err := button.OpenGPIO(cfg.Pins.ButtonA, cfg.Pins.ButtonB)
		if err != nil {
			_ = strip.Close()
			return nil, err
		}
		buzzer, err := audio.OpenGPIO(cfg.Pins.BuzzerA, cfg.Pins.BuzzerB)
		if err != nil {
			_ = strip.Close()
			return nil, err
		}
		log.Info().Str("strip", strip.String()).Msg("hardware ready")
		return &hardware{strip: strip, buttons: button.Any{buttons, latch}, buzzer: buzzer}, nil

	case "sim":
		go func() {
			if err := button.Keyboard(ctx, os.Stdin, latch, log.Logger); err != nil {
				log.Warn().Err(err).Msg("keyboard input stopped")
			}
		}()
		log.Info().Msg("simulator: type a (yellow) or b (blue) and press enter")
		return &hardware{strip: led.NewConsole(l.Count()), buttons: latch, buzzer: audio.NewSilent(log.Logger)}, nil
	}
	return nil, errors.New("unknown driver " + cfg.Driver)
}
