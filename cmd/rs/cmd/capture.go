package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/w-utter/realsense-go/pkg/realsense"
)

var (
	captureSerial  string
	capturePlay    string
	captureRecord  string
	captureCount   int
	captureTimeout time.Duration
)

// captureCmd represents the capture command
var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture framesets from a camera",
	Long: `Start the default depth+color pipeline and pull framesets, logging what
arrives. Streams can come from live hardware, be recorded to a .bag file,
or be replayed from one.`,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
	captureCmd.Flags().StringVar(&captureSerial, "serial", "", "pin capture to the device with this serial number")
	captureCmd.Flags().StringVar(&capturePlay, "from-file", "", "replay a recorded .bag file instead of live hardware")
	captureCmd.Flags().StringVar(&captureRecord, "record", "", "record the session to a .bag file")
	captureCmd.Flags().IntVar(&captureCount, "count", 30, "number of framesets to capture (0 = until interrupted)")
	captureCmd.Flags().DurationVar(&captureTimeout, "timeout", 0, "per-frameset wait deadline (0 = library default)")
	_ = viper.BindPFlag("capture.timeout", captureCmd.Flags().Lookup("timeout"))
}

func runCapture(cmd *cobra.Command, args []string) error {
	if capturePlay != "" && captureRecord != "" {
		return fmt.Errorf("--from-file and --record are mutually exclusive")
	}

	ctx, err := realsense.NewContext()
	if err != nil {
		return err
	}
	defer ctx.Close()

	cfg, err := realsense.NewConfig()
	if err != nil {
		return err
	}
	defer cfg.Close()

	switch {
	case capturePlay != "":
		if err := cfg.EnableDeviceFromFile(capturePlay, false); err != nil {
			return fmt.Errorf("enable playback: %w", err)
		}
	case captureSerial != "":
		if err := cfg.EnableDevice(captureSerial); err != nil {
			return fmt.Errorf("pin device: %w", err)
		}
	}
	if captureRecord != "" {
		if err := cfg.EnableRecordToFile(captureRecord); err != nil {
			return fmt.Errorf("enable recording: %w", err)
		}
	}

	pipe, err := realsense.NewPipeline(ctx)
	if err != nil {
		return err
	}
	defer pipe.Close()

	active, err := pipe.Start(cfg)
	if err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}
	defer func() {
		if active != nil {
			_, _ = active.Stop()
		}
	}()

	logStreams(active)

	for i := 0; captureCount == 0 || i < captureCount; i++ {
		frames, err := active.WaitFrames(captureTimeout)
		if err != nil {
			if errors.Is(err, realsense.ErrTimeout) {
				logger.Warn().Msg("frameset wait timed out")
				continue
			}
			return err
		}
		logFrameset(i, frames)
		_ = frames.Close()
	}

	_, err = active.Stop()
	active = nil
	return err
}

func logStreams(active *realsense.ActivePipeline) {
	streams, err := active.Profile().Streams()
	if err != nil {
		logger.Warn().Err(err).Msg("could not read resolved streams")
		return
	}
	for _, s := range streams {
		logger.Info().
			Stringer("stream", s.Stream()).
			Stringer("format", s.Format()).
			Int("fps", s.Framerate()).
			Msg("stream resolved")
	}
}

func logFrameset(i int, frames *realsense.CompositeFrame) {
	n, err := frames.Count()
	if err != nil {
		logger.Warn().Err(err).Msg("frameset count failed")
		return
	}

	evt := logger.Info().Int("frameset", i).Int("frames", n)

	if depth, err := frames.DepthFrame(); err == nil {
		if dist, err := depth.DistanceAt(depth.Width()/2, depth.Height()/2); err == nil {
			evt = evt.Float32("center_m", dist)
		}
		_ = depth.Close()
	}
	if color, err := frames.ColorFrame(); err == nil {
		evt = evt.Str("color", fmt.Sprintf("%dx%d %s", color.Width(), color.Height(), color.Format()))
		_ = color.Close()
	}

	evt.Msg("frameset")
}
