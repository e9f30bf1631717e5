package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dasheen/fa6latex"
	"github.com/dasheen/fa6latex/config"
	"github.com/dasheen/fa6latex/fetcher"
)

var (
	optConfig string
	optInput  string
	optOutput string
	optHeader string
	optPro    bool
	optFetch  bool
	optSrc    string
)

func init() {
	flag.StringVar(&optConfig, "config", "", "path to config.toml (optional)")
	flag.StringVar(&optInput, "input", "", "path to icons.json or icons.yml")
	flag.StringVar(&optOutput, "output", "", "output directory")
	flag.StringVar(&optHeader, "header", "", "replacement header .sty file")
	flag.BoolVar(&optPro, "pro", false, "generate for the pro tier")
	flag.BoolVar(&optFetch, "fetch", false, "download and unpack the FontAwesome distribution first")
	flag.StringVar(&optSrc, "src", "", "directory of the extracted FontAwesome distribution")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), `usage: fa6latex [options...]

options:
`)
		flag.PrintDefaults()
		fmt.Fprintf(flag.CommandLine.Output(),
			`
examples:
  fa6latex -fetch
  	Download the current FontAwesome 6 release and generate output/fontawesome6.sty
  fa6latex -input fontawesome/metadata/icons.json -output output
  	Generate from an already extracted distribution
  fa6latex -config config.toml -pro
  	Generate a pro-tier package using settings from config.toml

Flags override values from the config file.
`)
	}
}

func main() {
	flag.Parse()
	log := &fa6latex.Logger{Writer: os.Stderr}

	cfg := config.Default()
	if optConfig != "" {
		c, err := config.Load(optConfig)
		if err != nil {
			var cfgErr *config.Error
			if errors.As(err, &cfgErr) {
				log.Log(fa6latex.FATAL, "%v", cfgErr.String())
			}
			log.Log(fa6latex.FATAL, "load config: %v", err)
		}
		cfg = c
	}
	if optInput != "" {
		cfg.Input.Metadata = optInput
	}
	if optOutput != "" {
		cfg.Output.Dir = optOutput
	}
	if optHeader != "" {
		cfg.Input.Header = optHeader
	}
	if optSrc != "" {
		cfg.Fetch.Dir = optSrc
	}
	if optPro {
		cfg.Build.Mode = "pro"
	}

	if optFetch {
		rel, err := fetcher.Fetch(context.Background(), cfg.Fetch.URL, cfg.Fetch.Dir, fetcher.Options{
			OnDownload: func(rel fetcher.Release) {
				log.Log(fa6latex.INFO, "downloading FontAwesome %v from %v", rel.Version, rel.URL)
			},
		})
		if err != nil {
			log.Log(fa6latex.FATAL, "fetch FontAwesome: %v", err)
		}
		log.Log(fa6latex.INFO, "extracted FontAwesome %v into %v", rel.Version, cfg.Fetch.Dir)
		if optInput == "" && cfg.Input.Metadata == config.Default().Input.Metadata {
			cfg.Input.Metadata = cfg.Fetch.Dir + "/metadata/icons.json"
		}
	}

	res, err := fa6latex.Run(cfg, log)
	if err != nil {
		log.Log(fa6latex.FATAL, "%v", err)
	}

	fmt.Println()
	fa6latex.PrintSummary(os.Stdout, res)
}
