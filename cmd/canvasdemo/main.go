// Command canvasdemo renders a drawing script with one of the canvasex
// backends.
//
// Without -script it renders the built-in demo:
//
//	canvasdemo -backend svg -output demo.svg
//	canvasdemo -script boxes.yaml -output boxes.png -v
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/canvasex"
	"github.com/gogpu/canvasex/recording"
	"github.com/gogpu/canvasex/script"

	_ "github.com/gogpu/canvasex/backend/raster"
	_ "github.com/gogpu/canvasex/backend/svgcanvas"
)

func main() {
	var (
		backend = flag.String("backend", "", "output backend: "+strings.Join(recording.Backends(), ", ")+" (default: from -output extension)")
		output  = flag.String("output", "demo.png", "output file")
		file    = flag.String("script", "", "YAML drawing script (default: built-in demo)")
		strict  = flag.Bool("strict", false, "reject unknown alignment and overflow values")
		verbose = flag.Bool("v", false, "log debug messages to stderr")
		dump    = flag.Bool("dump", false, "print the built-in demo script and exit")
	)
	flag.Parse()

	if *dump {
		_, _ = os.Stdout.Write(script.DemoYAML())
		return
	}
	if *verbose {
		canvasex.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	s := script.Demo()
	if *file != "" {
		var err error
		if s, err = script.Load(*file); err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}

	name := *backend
	if name == "" {
		name = backendFor(*output)
	}
	if err := render(s, name, *output, *strict); err != nil {
		log.Fatalf("Failed to render: %v", err)
	}
	log.Printf("Saved %s (%dx%d, %d ops, %s backend)\n", *output, s.Width, s.Height, len(s.Ops), name)
}

// backendFor picks a backend from the output file extension.
func backendFor(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return "svg"
	}
	return "raster"
}

// render records the script once and plays it back to the named backend.
func render(s *script.Script, backend, output string, strict bool) error {
	var opts []canvasex.Option
	if strict {
		opts = append(opts, canvasex.WithStrictEnums())
	}

	rec := recording.NewRecorder(s.Width, s.Height)
	if err := s.Run(canvasex.NewDrawer(rec, opts...)); err != nil {
		return err
	}

	b, err := recording.NewBackend(backend)
	if err != nil {
		return err
	}
	if err := rec.FinishRecording().Playback(b); err != nil {
		return err
	}
	fb, ok := b.(recording.FileBackend)
	if !ok {
		return fmt.Errorf("backend %q cannot write files", backend)
	}
	return fb.SaveToFile(output)
}
