package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"

	"terrain-bg/internal/app"
	"terrain-bg/internal/core"
	"terrain-bg/internal/layout"
	"terrain-bg/internal/render"
	"terrain-bg/internal/terrain"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	log.SetPrefix("terrain-bg: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "", "write the output to this file instead of stdout")
	format := flag.String("format", "png", "output format: png, base64, datauri or css")
	copyText := flag.Bool("copy", false, "copy the text output to the clipboard")
	verbose := flag.Bool("v", false, "log the resolved parameters and biome coverage")
	fit := flag.Bool("fit", false, "upscale the texture to fit inside -viewport before encoding")
	flag.Parse()

	req, err := cfg.Request(flag.CommandLine)
	if err != nil {
		log.Fatal(err)
	}
	if *verbose {
		req.Logger = log.Default()
		log.Printf("parameters:\n%s", req.Parameters())
	}

	payload, err := terrain.Generate(req)
	if err != nil {
		log.Fatal(err)
	}

	viewport, ok, err := cfg.ViewportSize()
	if err != nil {
		log.Fatal(err)
	}
	if *fit {
		if !ok {
			log.Fatal("-fit needs -viewport")
		}
		if err := fitPayload(payload, viewport, req.Compression); err != nil {
			log.Fatal(err)
		}
	}
	if !ok {
		viewport = core.Size{W: payload.Width, H: payload.Height}
	}
	data, err := formatPayload(payload, *format, viewport)
	if err != nil {
		log.Fatal(err)
	}

	if *copyText {
		if strings.EqualFold(*format, "png") {
			log.Fatal("-copy needs a text format (base64, datauri or css)")
		}
		if err := clipboard.WriteAll(string(data)); err != nil {
			log.Fatalf("clipboard: %v", err)
		}
	}

	if *out != "" {
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			log.Fatal(err)
		}
	} else if !*copyText {
		if _, err := os.Stdout.Write(data); err != nil {
			log.Fatal(err)
		}
	}

	if *verbose {
		log.Printf("seed %d", payload.Stats.Seed)
		for _, line := range coverageLines(payload.Stats.Coverage) {
			log.Print(line)
		}
	}
}

// formatPayload renders the payload in one of the output formats. Text
// formats end with a newline.
func formatPayload(p *terrain.Payload, format string, viewport core.Size) ([]byte, error) {
	switch strings.ToLower(format) {
	case "png":
		return p.PNG, nil
	case "base64":
		return []byte(p.Base64 + "\n"), nil
	case "datauri":
		return []byte(p.DataURI() + "\n"), nil
	case "css":
		return []byte(layout.CSS(p, viewport) + "\n"), nil
	}
	return nil, fmt.Errorf("output format %q: %w", format, terrain.ErrInvalidParameter)
}

// fitPayload rescales the payload image to fit inside viewport and re-encodes
// it. Composite and Stats keep the generated resolution.
func fitPayload(p *terrain.Payload, viewport core.Size, level png.CompressionLevel) error {
	if p.Image == nil {
		return fmt.Errorf("payload has no raster: %w", terrain.ErrImageEncoding)
	}
	src, err := p.Image.RGBA()
	if err != nil {
		return err
	}
	img := terrain.ImageFromRGBA(render.Fit(src, viewport.W, viewport.H))
	data, err := terrain.EncodePNG(img, level)
	if err != nil {
		return err
	}
	p.Image = img
	p.Width, p.Height = img.Width, img.Height
	p.PNG = data
	p.Base64 = terrain.EncodeBase64(data)
	return nil
}

func coverageLines(cov terrain.Coverage) []string {
	var lines []string
	for b := terrain.BiomeDeepWater; b <= terrain.BiomeOutOfRange; b++ {
		if cov[b] == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-16s %7d px %5.1f%%", b, cov[b], 100*cov.Fraction(b)))
	}
	return lines
}
