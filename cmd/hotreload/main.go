package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hotreload/internal/config"
	"hotreload/internal/driver"
	"hotreload/internal/ui"
	"hotreload/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "hotreload [flags] <file.hr>",
	Short: "Compile, launch, and hot-reload a single-file DSL program",
	Args:  cobra.ExactArgs(1),
	RunE:  runHotReload,
}

func init() {
	rootCmd.Flags().String("backend", "native", "execution backend (native|browser; browser is out of scope)")
	rootCmd.Flags().Bool("show-generated", false, "print the generated main translation unit to stderr once the program has been launched")
	rootCmd.Flags().Int("max-diagnostics", 100, "maximum number of diagnostics to show")
}

func main() {
	rootCmd.Version = version.Version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runHotReload(cmd *cobra.Command, args []string) error {
	backend, _ := cmd.Flags().GetString("backend")
	if backend != "native" {
		return fmt.Errorf("unsupported backend: %s (only 'native' is supported)", backend)
	}
	showGenerated, _ := cmd.Flags().GetBool("show-generated")
	maxDiagnostics, _ := cmd.Flags().GetInt("max-diagnostics")

	sourcePath := args[0]
	cfg, err := config.Load(projectDirOf(sourcePath))
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	uiEvents := make(chan ui.Event, 64)
	req := driver.Request{
		SourcePath:     sourcePath,
		MaxDiagnostics: maxDiagnostics,
		CXXFlags:       cfg.CXXFlags,
		CompilerSink:   ui.CompilerSink{Ch: uiEvents},
		WatcherSink:    ui.WatcherSink{Ch: uiEvents},
	}

	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	var program *tea.Program
	if interactive {
		program = tea.NewProgram(ui.NewProgressModel(sourcePath, nil, uiEvents))
		go func() {
			if _, err := program.Run(); err != nil {
				fmt.Fprintln(os.Stderr, "hotreload: ui error:", err)
			}
		}()
	} else {
		go drainEventsToLog(uiEvents)
	}

	result, err := driver.Run(ctx, req)
	if err != nil {
		if program != nil {
			program.Quit()
		}
		return err
	}
	defer result.Manager.Close()

	fmt.Fprintf(os.Stderr, "[hotreload] initial build finished in %.2f ms\n", result.Timings.TotalMS)

	if showGenerated {
		fmt.Fprintln(os.Stderr, "--- generated main translation unit ---")
		if data, readErr := os.ReadFile(result.Manager.MainSrc); readErr == nil {
			fmt.Fprintln(os.Stderr, string(data))
		}
	}

	waitErr := result.Program.Wait()
	if program != nil {
		program.Quit()
	}
	if waitErr != nil {
		return fmt.Errorf("program exited with error: %w", waitErr)
	}
	return nil
}

func drainEventsToLog(events <-chan ui.Event) {
	for e := range events {
		if e.Name == "" {
			fmt.Fprintf(os.Stderr, "[hotreload] %s\n", e.Status)
			continue
		}
		fmt.Fprintf(os.Stderr, "[hotreload] %s: %s\n", e.Name, e.Status)
	}
}

func projectDirOf(sourcePath string) string {
	return filepath.Dir(sourcePath)
}
