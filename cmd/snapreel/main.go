// Package main provides the CLI entry point for snapreel.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"

	"github.com/user/snapreel/pkg/adapters/ffmpegengine"
	"github.com/user/snapreel/pkg/adapters/filesink"
	"github.com/user/snapreel/pkg/adapters/ggrenderer"
	"github.com/user/snapreel/pkg/adapters/logger"
	"github.com/user/snapreel/pkg/adapters/mp4probe"
	"github.com/user/snapreel/pkg/adapters/nullsink"
	"github.com/user/snapreel/pkg/adapters/osfilesystem"
	"github.com/user/snapreel/pkg/config"
	"github.com/user/snapreel/pkg/orchestrator"
	"github.com/user/snapreel/pkg/pipeline"
	"github.com/user/snapreel/pkg/ports"
	"github.com/user/snapreel/pkg/stages/compose"
	"github.com/user/snapreel/pkg/stages/encode"
	"github.com/user/snapreel/pkg/stages/normalize"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Render  RenderCmd  `cmd:"" default:"withargs" help:"Render a photo into an MP4 video clip."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// RenderCmd defines the render subcommand.
type RenderCmd struct {
	// Required arguments
	Image  string  `arg:"" help:"Input photo (JPEG, PNG, GIF or WebP)."`
	Output *string `short:"o" help:"Output MP4 file path (default: snapreel.mp4)."`

	// Content options
	Audio    string  `short:"a" help:"Optional audio track to mux into the video."`
	Caption  string  `short:"c" help:"Caption text overlaid on the photo."`
	Accent   *string `help:"Caption outline color (hex, e.g., #ffc800; default: #ffffff)."`
	Duration *int    `short:"t" help:"Clip duration in seconds, 5-20 (default: 8)."`

	// Tooling options
	FFmpegPath string `help:"Path to ffmpeg executable (falls back to FFMPEG_PATH env, then system default)."`
	FontPath   string `help:"Path to a TrueType font for the caption (default: embedded font)."`
	WorkDir    string `help:"Directory for encoder work files (default: system temp)."`
	Config     string `help:"YAML configuration file; CLI flags take precedence."`

	// Debug options
	Debug    bool    `short:"d" help:"Enable debug output."`
	DebugDir *string `help:"Directory for debug output (default: ./debug)."`

	// Logging options
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)."`
	Quiet    bool   `short:"Q" help:"Suppress all log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("snapreel"),
		kong.Description("Turn a still photo into a short video clip with motion and a caption."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the render command.
func (cmd *RenderCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	// Create logger
	var log ports.Logger
	if cmd.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cmd.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn(l10n.T("Interrupted, shutting down..."))
		cancel()
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer, err := ggrenderer.New(cfg.FontPath)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	engine := ffmpegengine.New(cfg.FFmpegPath)
	prober := mp4probe.New()

	// Create debug sink
	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	// Create stages
	normalizeStage := normalize.NewStage(renderer, log)
	composeStage := compose.NewStage(renderer, sink, log)
	encodeStage := encode.NewStage(engine, fs, prober, sink, log, cfg.WorkDir)

	// Create orchestrator
	orch := orchestrator.New(
		normalizeStage,
		composeStage,
		encodeStage,
		fs,
		log,
	)

	orchConfig := cfg.ToOrchestratorConfig()
	orchConfig.OnProgress = progressReporter(log)

	result, err := orch.Run(ctx, orchConfig)
	if err != nil {
		return err
	}

	if result.HasAudio {
		log.Debug("Muxed audio track into %s", result.OutputPath)
	}
	return nil
}

// buildConfig merges the optional config file, environment overrides and
// CLI flags. CLI flags win.
func (cmd *RenderCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()

	if cmd.Config != "" {
		loaded, err := config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", cmd.Config, err)
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(context.Background()); err != nil {
		return cfg, fmt.Errorf("apply environment: %w", err)
	}

	// Apply overrides
	cfg.ImagePath = cmd.Image
	if cmd.Output != nil {
		cfg.OutputPath = *cmd.Output
	}
	if cmd.Audio != "" {
		cfg.AudioPath = cmd.Audio
	}
	if cmd.Caption != "" {
		cfg.Caption = cmd.Caption
	}
	if cmd.Accent != nil {
		cfg.AccentColor = *cmd.Accent
	}
	if cmd.Duration != nil {
		cfg.DurationSec = *cmd.Duration
	}
	if cmd.FFmpegPath != "" {
		cfg.FFmpegPath = cmd.FFmpegPath
	}
	if cmd.FontPath != "" {
		cfg.FontPath = cmd.FontPath
	}
	if cmd.WorkDir != "" {
		cfg.WorkDir = cmd.WorkDir
	}
	if cmd.Debug {
		cfg.Debug = true
	}
	if cmd.DebugDir != nil {
		cfg.DebugDir = *cmd.DebugDir
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// progressReporter logs encoder progress at debug level, roughly once
// per second of output video.
func progressReporter(log ports.Logger) pipeline.ProgressFunc {
	lastReported := -1
	return func(frame, totalFrames int) {
		second := frame / pipeline.FrameRate
		if second == lastReported {
			return
		}
		lastReported = second
		log.Debug("Encoded %d/%d frames", frame, totalFrames)
	}
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("snapreel version %s", version))
	return nil
}
