// Command cp437render drives the core engine over a CP437 ANSI art file
// outside of a browser, the way the teacher's examples/buffer-only/main.go
// exercises its buffer headlessly: it reads the file, optionally honors a
// SAUCE metadata trailer, plays it back through an Engine either
// immediately or baud-paced, and writes the resulting frame as a PNG (plus,
// optionally, a UTF-8 text export of the grid).
package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"

	term437 "github.com/cp437term/cp437term"
	"github.com/cp437term/cp437term/internal/config"
	"github.com/cp437term/cp437term/internal/sauce"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		outPath    string
		exportPath string
		bps        int
		palette    string
		crtGlow    bool
	)

	cmd := &cobra.Command{
		Use:   "cp437render <file.ans>",
		Short: "Render a CP437 ANSI art file to a PNG snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args[0], outPath, exportPath, bps, palette, crtGlow)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "out.png", "output PNG path")
	cmd.Flags().StringVar(&exportPath, "export", "", "optional UTF-8 text export path")
	cmd.Flags().IntVar(&bps, "bps", 0, "baud rate (0 uses the config default; immediate if none)")
	cmd.Flags().StringVar(&palette, "palette", "", "CGA or VGA (empty uses the config default; VGA if none)")
	cmd.Flags().BoolVar(&crtGlow, "crt-glow", false, "apply the CRT-style post-process blur before writing the PNG")
	return cmd
}

func run(ctx context.Context, inPath, outPath, exportPath string, bps int, paletteFlag string, crtGlow bool) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "cp437render"})
	logger = logger.With("job", uuid.NewString())

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if paletteFlag == "" {
		paletteFlag = cfg.DefaultPalette
	}
	if bps == 0 {
		bps = cfg.DefaultBPS
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var iceColors bool
	if rec, ok := sauce.Parse(data); ok {
		logger.Info("sauce record found",
			"title", rec.Title, "author", rec.Author, "group", rec.Group, "ice_colors", rec.ICEColors)
		data = data[:len(data)-128]
		iceColors = rec.ICEColors
	}

	eng, err := term437.New(term437.Options{BPS: bps, Palette: paletteFlag, ICEColors: iceColors})
	if err != nil {
		return fmt.Errorf("create engine: %w", err)
	}

	eng.Play(ctx, data, func() {})

	img := eng.NewImage()
	eng.Render(img)
	if crtGlow {
		img = term437.ApplyCRTGlow(img)
		logger.Info("applied crt glow post-process")
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	logger.Info("wrote png", "path", outPath)

	if exportPath != "" {
		if err := exportText(eng, exportPath); err != nil {
			return fmt.Errorf("export text: %w", err)
		}
		logger.Info("wrote text export", "path", exportPath)
	}
	return nil
}

// exportText transcodes the grid's CP437 glyphs back to UTF-8, the inverse
// of the core's CP437-only input path, using the same charmap package
// other_examples/bengarrett-ansibump__ansibump.go uses for CP437 decoding.
func exportText(eng *term437.Engine, path string) error {
	dec := charmap.CodePage437.NewDecoder()
	var sb strings.Builder
	for row := 0; row < term437.Rows; row++ {
		for col := 0; col < term437.Cols; col++ {
			glyph := eng.Buffer.Grid.At(row, col).Glyph
			s, err := dec.String(string([]byte{glyph}))
			if err != nil {
				s = string(rune(glyph))
			}
			sb.WriteString(s)
		}
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
