package main

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/go-theft-auto/guikit/backend/opengl"
	"github.com/go-theft-auto/guikit/shell"
)

type screenshotOptions struct {
	out    string
	format string
	frames int
}

func newScreenshotCmd(flags *rootFlags) *cobra.Command {
	opts := &screenshotOptions{}

	cmd := &cobra.Command{
		Use:   "screenshot",
		Short: "Render the demo in a hidden window and save one frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScreenshot(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "guikit-demo.png", "Output file, or - for stdout")
	cmd.Flags().StringVar(&opts.format, "format", "", "png or jpeg (default from the output extension, png for stdout)")
	cmd.Flags().IntVar(&opts.frames, "frames", 2, "Frames to render before capturing")

	return cmd
}

func runScreenshot(cmd *cobra.Command, flags *rootFlags, opts *screenshotOptions) (err error) {
	if opts.frames < 1 {
		return errors.New("--frames must be at least 1")
	}
	format := opts.format
	if format == "" {
		format = formatFromPath(opts.out)
	}
	encode, err := encoderFor(format)
	if err != nil {
		return err
	}
	if opts.out == "-" && isTerminal(cmd.OutOrStdout()) {
		return errors.New("refusing to write image data to a terminal; redirect stdout or use --out")
	}
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	platform, err := opengl.NewPlatform(cfg.Window, opengl.WithHiddenWindow())
	if err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	defer func() {
		err = errors.Join(err, platform.Close())
	}()

	d := newDemo()
	app, err := shell.New(platform, cfg)
	if err != nil {
		return err
	}
	if err := d.install(app.Dock()); err != nil {
		return err
	}

	for i := range opts.frames {
		if i == opts.frames-1 {
			platform.RequestCapture()
		}
		if err := app.RunFrame(); err != nil {
			return err
		}
	}
	img := platform.LastCapture()
	if img == nil {
		return errors.New("no frame captured")
	}

	if opts.out == "-" {
		return encode(cmd.OutOrStdout(), img)
	}
	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", opts.out, err)
	}
	cmd.PrintErrf("wrote %s (%dx%d)\n", opts.out, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

func formatFromPath(path string) string {
	if path == "-" {
		return "png"
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

func encoderFor(format string) (func(io.Writer, image.Image) error, error) {
	switch format {
	case "png":
		return png.Encode, nil
	case "jpg", "jpeg":
		return func(w io.Writer, img image.Image) error {
			return jpeg.Encode(w, img, &jpeg.Options{Quality: 90})
		}, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q (want png or jpeg)", format)
	}
}
