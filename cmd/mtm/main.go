// cmd/mtm/main.go
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"mtm/internal/builder"
	"mtm/internal/compiler"
	"mtm/internal/config"
	"mtm/internal/document"
	"mtm/internal/scaffold"
	"mtm/internal/server"
)

type appConfig struct {
	debug  bool
	port   int
	unsafe bool
	prod   bool
}

const configFile = "mtm.yaml"

func main() {
	// Optional .env overrides; absence is fine.
	_ = godotenv.Load()

	appCfg := appConfig{}
	flag.BoolVar(&appCfg.debug, "debug", false, "Enable debug mode for verbose error output.")
	flag.IntVar(&appCfg.port, "port", envInt("MTM_PORT", 4000), "Port for the local development server.")
	flag.BoolVar(&appCfg.unsafe, "unsafe", false, "Disable HTML sanitization of markdown pages.")
	flag.BoolVar(&appCfg.prod, "prod", false, "Build for production (external JavaScript files).")
	flag.Usage = printHelp
	flag.Parse()

	if err := run(appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Operation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := flag.Args()
	if len(args) == 0 {
		flag.Usage()
		return nil
	}

	opts := builder.BuildOptions{
		Unsafe:      appCfg.unsafe,
		Debug:       appCfg.debug,
		Development: !appCfg.prod,
		Production:  appCfg.prod,
	}

	switch args[0] {
	case "build":
		opts.CleanDestination = true
		fmt.Println("--- Building site ---")
		cfg := getProjectConfig()
		b := builder.New(".", cfg)
		report, err := b.Build(opts)
		if err != nil {
			return fmt.Errorf("build failed: %w", err)
		}
		fmt.Printf("Generated %d pages (%d scripts) in %s.\n",
			report.Pages, report.Scripts, report.Duration.Round(1e6))
		if report.HasErrors() {
			return fmt.Errorf("%d file(s) failed to compile", len(report.Errors))
		}
		return nil

	case "compile":
		if len(args) < 2 {
			fmt.Println("Usage: mtm compile <file.mtm>")
			return nil
		}
		return compileSingle(args[1], appCfg)

	case "serve":
		cfg := getProjectConfig()
		b := builder.New(".", cfg)
		buildFunc := func(buildOpts builder.BuildOptions) error {
			report, err := b.Build(buildOpts)
			if err != nil {
				return err
			}
			fmt.Printf("Generated %d pages.\n", report.Pages)
			return nil
		}
		return server.Run(appCfg.port, cfg, buildFunc, opts)

	case "new":
		if len(args) < 3 {
			flag.Usage()
			return nil
		}
		if args[1] == "site" {
			return scaffold.CreateNewSite(args[2])
		}
		if args[1] == "page" {
			return scaffold.CreateNewPage(args[2])
		}
		flag.Usage()
		return nil

	default:
		flag.Usage()
	}

	return nil
}

// compileSingle compiles one file and writes its artifacts next to it,
// without touching the project output directory. Useful for inspecting
// generated code.
func compileSingle(path string, appCfg appConfig) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", path, err)
	}

	cfg := getProjectConfig()
	cc := compiler.New(nil, nil, compiler.Options{
		Development: !appCfg.prod,
		Production:  appCfg.prod,
		Site: document.Site{
			Title:       cfg.Title,
			Description: cfg.Description,
			Author:      cfg.Author,
			Lang:        cfg.Lang,
		},
	})

	artifact, err := cc.Compile(string(source), path)
	if err != nil {
		return err
	}

	outPath := path + ".html"
	if err := os.WriteFile(outPath, []byte(artifact.HTML), 0644); err != nil {
		return err
	}
	fmt.Println("Wrote:", outPath)

	if artifact.JSPath != "" {
		// The script lands next to the page so the relative src in the
		// HTML resolves without a project output directory.
		jsOut := filepath.Join(filepath.Dir(path), artifact.JSPath)
		if err := os.MkdirAll(filepath.Dir(jsOut), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(jsOut, []byte(artifact.JS), 0644); err != nil {
			return err
		}
		fmt.Println("Wrote:", jsOut)
	}
	return nil
}

func getProjectConfig() config.ProjectConfig {
	cfg, err := config.LoadProjectConfig(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "critical error: failed to load project config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func printHelp() {
	fmt.Println("mtm - a compiler for single-file reactive components")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  mtm [global-flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build              Compile every page into the output directory")
	fmt.Println("  compile <file>     Compile a single .mtm file in place")
	fmt.Println("  serve              Run a local dev server with auto-rebuild")
	fmt.Println("  new site <name>    Create a new project skeleton")
	fmt.Println("  new page <title>   Create a new routed page")
	fmt.Println()
	fmt.Println("Global Flags:")
	flag.PrintDefaults()
}
