package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/w-utter/realsense-go/internal/preview"
	"github.com/w-utter/realsense-go/pkg/realsense"
)

var (
	serveAddr    string
	serveQuality int
	serveStream  string
	serveWidth   int
	serveHeight  int
	serveFPS     int
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live MJPEG preview over HTTP",
	Long: `Start one camera stream and expose it over HTTP: an MJPEG stream at
/stream, a single JPEG at /snapshot, and Prometheus metrics at /metrics.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8554", "listen address")
	serveCmd.Flags().IntVar(&serveQuality, "quality", preview.DefaultQuality, "JPEG quality (1-100)")
	serveCmd.Flags().StringVar(&serveStream, "stream", "color", "stream to serve: color or depth")
	serveCmd.Flags().IntVar(&serveWidth, "width", 0, "requested stream width (0 = library default)")
	serveCmd.Flags().IntVar(&serveHeight, "height", 0, "requested stream height (0 = library default)")
	serveCmd.Flags().IntVar(&serveFPS, "fps", 0, "requested framerate (0 = library default)")
	_ = viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("serve.quality", serveCmd.Flags().Lookup("quality"))
}

func runServe(cmd *cobra.Command, args []string) error {
	var kind realsense.StreamKind
	switch serveStream {
	case "color":
		kind = realsense.StreamColor
	case "depth":
		kind = realsense.StreamDepth
	default:
		return fmt.Errorf("unknown stream %q: want color or depth", serveStream)
	}

	rsCtx, err := realsense.NewContext()
	if err != nil {
		return err
	}
	defer rsCtx.Close()

	cfg, err := realsense.NewConfig()
	if err != nil {
		return err
	}
	defer cfg.Close()

	format := realsense.FormatRGB8
	if kind == realsense.StreamDepth {
		format = realsense.FormatZ16
	}
	if err := cfg.EnableStream(kind, realsense.StreamIndexAny, serveWidth, serveHeight, format, serveFPS); err != nil {
		return fmt.Errorf("enable stream: %w", err)
	}

	pipe, err := realsense.NewPipeline(rsCtx)
	if err != nil {
		return err
	}
	defer pipe.Close()

	active, err := pipe.Start(cfg)
	if err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}
	defer func() { _, _ = active.Stop() }()

	logStreams(active)

	source := preview.SourceFunc(func(ctx context.Context) (preview.Image, error) {
		return nextImage(ctx, active, kind)
	})

	srv := preview.NewServer(preview.Config{
		Addr:    serveAddr,
		Quality: serveQuality,
		Logger:  logger,
	}, source)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = srv.ListenAndServe(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// nextImage pulls framesets until one carries the requested stream. The
// pipeline serializes concurrent waiters internally, so multiple HTTP
// clients each get a frameset in turn.
func nextImage(ctx context.Context, active *realsense.ActivePipeline, kind realsense.StreamKind) (preview.Image, error) {
	for {
		if err := ctx.Err(); err != nil {
			return preview.Image{}, err
		}

		frames, err := active.WaitFrames(0)
		if err != nil {
			return preview.Image{}, err
		}

		img, ok, err := imageOf(frames, kind)
		_ = frames.Close()
		if err != nil {
			return preview.Image{}, err
		}
		if ok {
			return img, nil
		}
	}
}

func imageOf(frames *realsense.CompositeFrame, kind realsense.StreamKind) (preview.Image, bool, error) {
	var (
		video *realsense.VideoFrame
		err   error
	)
	switch kind {
	case realsense.StreamDepth:
		var depth *realsense.DepthFrame
		depth, err = frames.DepthFrame()
		if depth != nil {
			video = &depth.VideoFrame
		}
	default:
		video, err = frames.ColorFrame()
	}
	if err != nil {
		if errors.Is(err, realsense.ErrNoFrame) {
			return preview.Image{}, false, nil
		}
		return preview.Image{}, false, err
	}
	defer video.Close()

	data, err := video.Data()
	if err != nil {
		return preview.Image{}, false, err
	}
	return preview.Image{
		Data:   data,
		Format: video.Format(),
		Width:  video.Width(),
		Height: video.Height(),
		Stride: video.StrideBytes(),
	}, true, nil
}
