package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/codegangsta/cli"
)

const version = "0.1.0"

func main() {
	app := cli.NewApp()
	app.Version = version
	app.Name = "dicify"
	app.Usage = "Rebuild an image as a mosaic of dice faces."
	app.UsageText = "dicify [options] [file]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "mode,m",
			Usage: "`MODE` is static (one image), frames (numbered files), gif or window.",
			Value: ModeStatic,
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "`PATH` to write. Defaults to dice_<file>, or the current directory for frames.",
		},
		cli.Float64Flag{
			Name:  "scale,s",
			Usage: "`SCALE` applied to the image before it is cut into 10px dice. Defaults to 2 for static and 1 otherwise.",
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "`SEED` for the dice rolls. 0 picks one from the clock.",
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: "`FPS` of gif and window output.",
			Value: 60,
		},
		cli.IntFlag{
			Name:  "min-steps",
			Usage: "`MIN` roll length of an animated die.",
			Value: 5,
		},
		cli.IntFlag{
			Name:  "max-steps",
			Usage: "`MAX` roll length of an animated die.",
			Value: 50,
		},
		cli.StringFlag{
			Name:  "sheet",
			Usage: "`PATH` to write a build sheet listing the face of every die.",
		},
		cli.IntFlag{
			Name:  "sheet-cell",
			Usage: "`PIXELS` per die on the build sheet.",
			Value: 16,
		},
		cli.StringFlag{
			Name:  "font",
			Usage: "TrueType `FONT` for the build sheet digits. Defaults to Go Regular.",
		},
		cli.StringFlag{
			Name:  "dithered",
			Usage: "`PATH` to also write the dithered black and white image.",
		},
		cli.Float64Flag{
			Name:  "window-scale",
			Usage: "`SCALE` of the window relative to the mosaic.",
			Value: 1.2,
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. Less darkens, greater lightens.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` from -100 to 100.",
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` from -100 to 100.",
		},
		cli.Float64Flag{
			Name:  "sharpen",
			Usage: "`SHARPEN` greater than 0 sharpens the image.",
		},
		cli.Float64Flag{
			Name:  "sigmoid-midpoint",
			Usage: "`MIDPOINT` of sigmoid contrast, between 0 and 1.",
			Value: 0.5,
		},
		cli.Float64Flag{
			Name:  "sigmoid-factor",
			Usage: "`FACTOR` of sigmoid contrast. 0 leaves the image unchanged.",
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts the image.",
		},
		cli.BoolFlag{
			Name:  "quiet,q",
			Usage: "Suppress progress output.",
		},
	}
	app.Action = func(c *cli.Context) error {
		cfg, err := LoadConfig()
		if err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		applyFlags(c, &cfg)
		if err := cfg.Validate(); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}

		input := c.Args().First()
		if input == "" {
			input = DefaultInput
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := run(ctx, cfg, input, newLogger(cfg.Quiet)); err != nil {
			return cli.NewExitError(err.Error(), 1)
		}
		return nil
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// applyFlags copies every flag given on the command line over cfg.
func applyFlags(c *cli.Context, cfg *Config) {
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("output") {
		cfg.Output = c.String("output")
	}
	if c.IsSet("scale") {
		cfg.Scale = c.Float64("scale")
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if c.IsSet("fps") {
		cfg.FPS = c.Int("fps")
	}
	if c.IsSet("min-steps") {
		cfg.MinSteps = c.Int("min-steps")
	}
	if c.IsSet("max-steps") {
		cfg.MaxSteps = c.Int("max-steps")
	}
	if c.IsSet("sheet-cell") {
		cfg.SheetCell = c.Int("sheet-cell")
	}

	cfg.Sheet = c.String("sheet")
	cfg.Font = c.String("font")
	cfg.Dithered = c.String("dithered")
	cfg.WindowScale = c.Float64("window-scale")
	cfg.Quiet = c.Bool("quiet")

	if c.IsSet("gamma") {
		cfg.Adjust.Gamma = c.Float64("gamma")
	}
	if c.IsSet("brightness") {
		cfg.Adjust.Brightness = c.Float64("brightness")
	}
	if c.IsSet("contrast") {
		cfg.Adjust.Contrast = c.Float64("contrast")
	}
	if c.IsSet("sharpen") {
		cfg.Adjust.Sharpen = c.Float64("sharpen")
	}
	if c.IsSet("sigmoid-factor") {
		cfg.Adjust.SigmoidMidpoint = c.Float64("sigmoid-midpoint")
		cfg.Adjust.SigmoidFactor = c.Float64("sigmoid-factor")
	}
	cfg.Adjust.Invert = c.Bool("invert")
}
