package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

// version is set at build time via ldflags
var version = "dev"

func main() {
	// Handle --version / -v flag
	if len(os.Args) > 1 {
		arg := os.Args[1]
		if arg == "-v" || arg == "--version" || arg == "version" {
			fmt.Println("tfipnorm", version)
			return
		}
		if arg == "-h" || arg == "--help" || arg == "help" {
			printHelp()
			return
		}
	}

	cfg := loadConfig()
	if err := cfg.ensureDirs(); err != nil {
		fmt.Printf("Error preparing directories: %v\n", err)
		os.Exit(1)
	}

	logFile, err := setupLogging(cfg)
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	log.Info("starting tfipnorm",
		"version", version,
		"input_dir", cfg.InputDir,
		"output_dir", cfg.OutputDir)

	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running tfipnorm: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println(`tfipnorm - TUI for turning delimited IP lists into Terraform /32 CIDRs

Usage:
  tfipnorm [flags]

Flags:
  -h, --help      Show this help message
  -v, --version   Show version

Environment:
  TFIPNORM_INPUT_DIR    Directory the file browser opens in (default: input)
  TFIPNORM_OUTPUT_DIR   Directory JSON snapshots are written to (default: output)
  TFIPNORM_LOG_FILE     Structured log destination (default: tfipnorm.log)
  TFIPNORM_LOG_LEVEL    debug, info, warn or error (default: info)

Keybindings:
  tab          Switch focus between panels
  ↑/k ↓/j      Move within the focused panel
  enter        Load the highlighted or typed file
  p            Process loaded IPs into /32 CIDRs
  c            Copy Terraform list to clipboard
  s            Save JSON snapshot to the output directory
  o            Refresh the file browser
  q            Quit`)
}
