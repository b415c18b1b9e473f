// Command audioedit processes a WAV file or URL through the effect
// chain offline.
//
// Examples:
//
//	audioedit -o out.wav --mode focus song.wav
//	audioedit -o out.wav --bass-warmth 70 --clarity 40 song.wav
//	audioedit -o clip.wav --trim-start 10 --trim-end 40 song.wav
//	audioedit -o demo.wav --preview https://example.com/song.wav
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-audioedit/dsp/clip"
	"github.com/cwbudde/algo-audioedit/engine"
	"github.com/cwbudde/algo-audioedit/settings"
	"github.com/cwbudde/algo-audioedit/wavio"
)

var version = "0.1.0"

// CLI defines the command-line interface.
type CLI struct {
	Version bool   `short:"v" help:"Show version information"`
	Output  string `short:"o" type:"path" default:"output.wav" help:"Output WAV path"`
	Verbose bool   `help:"Enable debug logging"`

	Mode           string   `help:"Effect mode preset (${modes})" default:""`
	BassWarmth     *float64 `help:"Bass warmth amount, 0-100"`
	Clarity        *float64 `help:"Clarity amount, 0-100"`
	Spatialization *float64 `help:"Spatialization amount, 0-100"`
	Binaural       *float64 `help:"Binaural amount, 0-100"`

	TrimStart float64 `help:"Trim start in seconds" default:"0"`
	TrimEnd   float64 `help:"Trim end in seconds (0 keeps the full length)" default:"0"`

	Preview        bool    `help:"Render a faded preview instead of the full clip"`
	PreviewSeconds float64 `help:"Preview length in seconds" default:"30"`
	FadeSeconds    float64 `help:"Preview fade-out in seconds" default:"2"`

	Input string `arg:"" name:"input" help:"WAV file path or http(s) URL"`
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("audioedit"),
		kong.Description("Offline audio effect processor"),
		kong.UsageOnError(),
		kong.Vars{"modes": modeList()},
	)

	if cli.Version {
		fmt.Println("audioedit", version)
		os.Exit(0)
	}

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cli.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	ctx.FatalIfErrorf(run(cli))
}

func run(cli *CLI) error {
	loader := &wavio.SourceLoader{}
	c, err := loader.Load(context.Background(), cli.Input)
	if err != nil {
		return err
	}

	e := engine.New(settings.Default())
	defer e.Dispose()
	if err := e.LoadClip(c); err != nil {
		return err
	}

	if cli.Mode != "" {
		if err := e.SetMode(settings.EffectMode(cli.Mode)); err != nil {
			return err
		}
	}
	for name, v := range map[string]*float64{
		"bassWarmth":     cli.BassWarmth,
		"clarity":        cli.Clarity,
		"spatialization": cli.Spatialization,
		"binaural":       cli.Binaural,
	} {
		if v == nil {
			continue
		}
		if err := e.UpdateParameter(name, *v); err != nil {
			return err
		}
	}

	if cli.TrimEnd > 0 || cli.TrimStart > 0 {
		end := cli.TrimEnd
		if end <= 0 {
			end = e.Duration()
		}
		if err := e.Trim(cli.TrimStart, end); err != nil {
			return err
		}
	}

	var out *clip.Clip
	if cli.Preview {
		out, err = e.RenderPreview(cli.PreviewSeconds, cli.FadeSeconds)
	} else {
		out, err = e.Render()
	}
	if err != nil {
		return err
	}

	if err := wavio.SaveFile(cli.Output, out); err != nil {
		return err
	}
	fmt.Printf("Wrote %s (%.2f s)\n", cli.Output, out.Duration())
	return nil
}

func modeList() string {
	names := make([]string, 0, len(settings.Modes()))
	for _, m := range settings.Modes() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}
