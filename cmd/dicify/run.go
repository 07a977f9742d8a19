package main

import (
	"context"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/wbrown/img2dice"
	"github.com/wbrown/img2dice/display"
	"github.com/wbrown/img2dice/imageutil"
)

func newLogger(quiet bool) *log.Logger {
	if quiet {
		return log.New(io.Discard, "", 0)
	}
	return log.New(os.Stderr, "", log.LstdFlags)
}

// newSeededRNG creates the dice random source. A zero seed is replaced by
// one from the clock, which is logged so the run can be repeated.
func newSeededRNG(seed int64, logger *log.Logger) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Printf("Using seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

// run turns input into a dice mosaic and writes it the way cfg.Mode asks.
func run(ctx context.Context, cfg Config, input string, logger *log.Logger) error {
	begin := time.Now()
	rng := newSeededRNG(cfg.Seed, logger)

	gray, err := img2dice.LoadGray(input, cfg.Scale, cfg.Adjust)
	if err != nil {
		return err
	}
	logger.Printf("Image scaled to %dx%d", gray.Width(), gray.Height())

	logger.Println("Dithering image... (this may take a while)")
	dithered, err := img2dice.Dither(gray)
	if err != nil {
		return err
	}
	if cfg.Dithered != "" {
		if err := imageutil.SaveImage(dithered, cfg.Dithered); err != nil {
			return errors.Wrap(err, "write dithered image")
		}
		logger.Printf("Dithered image written to %s", cfg.Dithered)
	}

	logger.Println("Generating dice...")
	builder := img2dice.NewBuilder(
		img2dice.WithAnimation(cfg.Mode != ModeStatic),
		img2dice.WithStepRange(cfg.MinSteps, cfg.MaxSteps),
		img2dice.WithRand(rng),
	)
	mosaic, err := builder.Build(dithered)
	if err != nil {
		return err
	}
	logger.Printf("Number of dice: %d", len(mosaic.Dice))
	logInventory(logger, mosaic)
	hits, misses, rate := builder.Matcher().CacheStats()
	logger.Printf("Match cache: %d hits, %d misses (%.1f%%)", hits, misses, rate*100)

	if cfg.Sheet != "" {
		if err := writeSheet(cfg, mosaic); err != nil {
			return err
		}
		logger.Printf("Build sheet written to %s", cfg.Sheet)
	}

	anim := img2dice.NewAnimation(mosaic, nil)
	if cfg.Mode == ModeWindow {
		window := display.NewWindow(anim,
			display.WithTitle("Dicify - "+filepath.Base(input)),
			display.WithFPS(cfg.FPS),
			display.WithScale(cfg.WindowScale),
		)
		return window.Run()
	}

	output := cfg.OutputPath(input)
	var sink img2dice.FrameSink
	var gifSink *img2dice.GIFSink
	switch cfg.Mode {
	case ModeFrames:
		if err := os.MkdirAll(output, 0o755); err != nil {
			return errors.Wrap(err, "create frame directory")
		}
		sink = img2dice.FileSink{Dir: output, Name: filepath.Base(input)}
	case ModeGIF:
		gifSink = img2dice.NewGIFSink(output, cfg.FPS)
		sink = gifSink
	default:
		sink = img2dice.ImageSink{Path: output}
	}

	frames, err := img2dice.Run(ctx, anim, sink)
	if err != nil {
		return err
	}
	logger.Printf("Frames written: %d", frames)
	if gifSink != nil {
		if err := gifSink.Close(); err != nil {
			return err
		}
	}

	logger.Printf("Output written to %s", output)
	logger.Printf("Computation time: %v", time.Since(begin))
	return nil
}

func logInventory(logger *log.Logger, m *img2dice.Mosaic) {
	inventory := m.Inventory()
	for i, n := range inventory {
		logger.Printf("  face %d: %d", i+1, n)
	}
}

func writeSheet(cfg Config, m *img2dice.Mosaic) error {
	var glyphs *img2dice.DigitGlyphs
	var err error
	if cfg.Font != "" {
		glyphs, err = img2dice.LoadDigitGlyphsFile(cfg.Font, cfg.SheetCell)
	} else {
		glyphs, err = img2dice.LoadDigitGlyphs(nil, cfg.SheetCell)
	}
	if err != nil {
		return err
	}
	if err := imageutil.SaveImage(glyphs.RenderSheet(m), cfg.Sheet); err != nil {
		return errors.Wrap(err, "write build sheet")
	}
	return nil
}
