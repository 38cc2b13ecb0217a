package main

import (
	"flag"
	"log"
	"path/filepath"

	iconmasker "github.com/menta2k/icon-masker"
	"github.com/menta2k/icon-masker/internal/config"
	"github.com/menta2k/icon-masker/internal/utils"
)

// defaultInput is the conventional icon location in the project layout
var defaultInput = filepath.Join("backend", "icons", "source_icon.png")

func main() {
	var in, out, ext, cfgPath string
	var scale, radius float64
	var quality int
	var lossless bool

	flag.StringVar(&in, "in", defaultInput, "input icon path (png/jpg/webp)")
	flag.StringVar(&out, "out", "", "output path (default: overwrite input)")
	flag.StringVar(&cfgPath, "config", "", "JSON config file (default: ~/.config/icon-masker/config.json if present)")

	flag.Float64Var(&scale, "scale", 0.9, "fraction of the original size the content keeps (0..1]")
	flag.Float64Var(&radius, "radius", 0.225, "corner radius as a fraction of the smaller side (0..0.5)")

	flag.StringVar(&ext, "ext", "png", "output format: png|webp")
	flag.IntVar(&quality, "quality", 100, "WebP output quality (1-100)")
	flag.BoolVar(&lossless, "lossless", true, "WebP lossless mode")

	flag.Parse()

	if cfgPath == "" && utils.FileExists(config.GetConfigPath()) {
		cfgPath = config.GetConfigPath()
	}

	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.LoadFromFile(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}

	// Explicit flags override the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scale":
			cfg.ScaleFactor = scale
		case "radius":
			cfg.RadiusRatio = radius
		case "ext":
			cfg.Output.Format = ext
		case "quality":
			cfg.Output.Quality = quality
		case "lossless":
			cfg.Output.Lossless = lossless
		}
	})

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	if !utils.FileExists(in) {
		log.Fatalf("source icon not found at %s", in)
	}
	if !utils.IsImageFile(in) {
		log.Fatalf("%s is not a supported image file", in)
	}

	if out == "" {
		out = in
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := utils.EnsureDir(dir); err != nil {
			log.Fatal(err)
		}
	}

	masker := iconmasker.NewWithOptions(iconmasker.Options{
		ScaleFactor: cfg.ScaleFactor,
		RadiusRatio: cfg.RadiusRatio,
		Format:      cfg.Output.Format,
		Quality:     cfg.Output.Quality,
		Lossless:    cfg.Output.Lossless,
	})

	if err := masker.ProcessFile(in, out); err != nil {
		log.Fatalf("error processing image: %v", err)
	}

	log.Printf("resized to %.0f%% and applied squircle mask: %s", cfg.ScaleFactor*100, out)
}
