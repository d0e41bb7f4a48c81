package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/month-calendar/internal/calendar"
	"github.com/username/month-calendar/internal/config"
	"github.com/username/month-calendar/internal/render"
	"github.com/username/month-calendar/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     = zap.NewNop()
)

func main() {
	if err := rootCmd(dateutil.Today).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(now func() time.Time) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:           "month-calendar",
		Short:         "Print the current month",
		Long:          "Print a calendar of the current month (UTC) with today highlighted",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.GetLevel())
			} else {
				logger = initLogger(cfg.Log.GetLevel())
			}
			defer logger.Sync()

			today := dateutil.StartOfDay(now().UTC())
			if !cmd.Flags().Changed("year") {
				year = today.Year()
			}
			if !cmd.Flags().Changed("month") {
				month = int(today.Month())
			}

			// Only the current month gets a highlighted day
			highlight := 0
			if year == today.Year() && month == int(today.Month()) {
				highlight = today.Day()
			}

			logger.Debug("Building month",
				zap.Int("year", year),
				zap.Int("month", month),
				zap.Int("today", highlight),
				zap.Stringer("week_start", cfg.Display.GetWeekStart()))

			m, err := calendar.New(year, month, highlight, cfg.Display.GetWeekStart())
			if err != nil {
				logger.Error("Failed to build month",
					zap.Int("year", year),
					zap.Int("month", month),
					zap.Error(err))
				return fmt.Errorf("failed to build calendar: %w", err)
			}

			out := cmd.OutOrStdout()
			styler, err := render.NewStyler(out, cfg.Display.GetColor())
			if err != nil {
				return err
			}

			return render.NewRenderer(cfg.Display.Width, styler).Write(out, m)
		},
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: ./config.yaml if present)")

	cmd.Flags().IntVar(&year, "year", 0, "Year to print (default: current year)")
	cmd.Flags().IntVar(&month, "month", 0, "Month to print, 1-12 (default: current month)")
	cmd.Flags().String("week-start", "monday", "First day of the week")
	cmd.Flags().String("color", render.ColorAuto, "Highlight today: auto, always or never")
	cmd.Flags().Int("width", config.MinWidth, "Width the title is centered in")
	cmd.Flags().String("log-file", "", "Log to a rotated file instead of stderr")
	cmd.Flags().String("log-level", "warn", "Log level")

	return cmd
}

func initLogger(level zapcore.Level) *zap.Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	return l
}

func initFileLogger(logFile string, level zapcore.Level) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core)
}
