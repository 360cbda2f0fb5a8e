package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"deribitrpc/config"
	framechan "deribitrpc/internal/channel"
	"deribitrpc/logger"
	"deribitrpc/models"
	"deribitrpc/processor"
	"deribitrpc/reader"
	"deribitrpc/rpc"
	"deribitrpc/writer"
)

func main() {
	log := logger.GetLogger()

	// Load environment variables from .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Error loading .env file")
	}

	configPath := flag.String("config", config.DefaultPath, "Path to configuration file")
	inputPath := flag.String("input", "-", "JSON-lines capture to replay, - for stdin")
	outputPath := flag.String("output", "-", "Where decoded frames are written, - for stdout")
	handshake := flag.Bool("handshake", false, "Print the session handshake frames and exit")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Error("Failed to load configuration")
		os.Exit(1)
	}

	if err := log.Configure(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
		MaxAge: cfg.Logging.MaxAge,
	}); err != nil {
		log.WithError(err).Error("Failed to configure logger")
		os.Exit(1)
	}

	log.WithFields(logger.Fields{
		"service": cfg.App.Name,
		"version": cfg.App.Version,
		"env":     config.AppEnvironment(),
	}).Info("starting deribitrpc")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Metrics.CloudWatch.Enabled {
		logger.InitCloudWatch(ctx, cfg.Metrics.CloudWatch.Region, cfg.Metrics.CloudWatch.Namespace, cfg.Metrics.CloudWatch.Dashboard)
	}

	if *handshake {
		if err := writeHandshake(os.Stdout, cfg); err != nil {
			log.WithError(err).Error("Failed to build handshake")
			os.Exit(1)
		}
		return
	}

	in, closeIn, err := openInput(*inputPath)
	if err != nil {
		log.WithError(err).Error("Failed to open capture")
		os.Exit(1)
	}
	defer closeIn()

	out, closeOut, err := openOutput(*outputPath)
	if err != nil {
		log.WithError(err).Error("Failed to open output")
		os.Exit(1)
	}
	defer closeOut()

	if err := replay(ctx, cfg, *inputPath, in, out); err != nil {
		log.WithError(err).Error("replay failed")
		os.Exit(1)
	}
}

// writeHandshake prints the frames a client sends right after connecting:
// the heartbeat request followed by the configured subscriptions.
func writeHandshake(w io.Writer, cfg *config.Config) error {
	var seq rpc.Sequence

	frames := make([][]byte, 0, 3)
	hb, err := rpc.Encode[models.SetHeartbeatResponse](seq.Next(), models.NewSetHeartbeat(cfg.Session.HeartbeatInterval))
	if err != nil {
		return err
	}
	frames = append(frames, hb)

	if len(cfg.Session.PublicChannels) > 0 {
		sub, err := rpc.Encode[models.SubscribeResponse](seq.Next(), models.PublicSubscribeRequest{Channels: cfg.Session.PublicChannels})
		if err != nil {
			return err
		}
		frames = append(frames, sub)
	}

	ids, err := cfg.Session.PrivateChannelIDs()
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		sub, err := rpc.Encode[models.SubscribeResponse](seq.Next(), models.NewPrivateSubscribe(ids...))
		if err != nil {
			return err
		}
		frames = append(frames, sub)
	}

	for _, f := range frames {
		if _, err := w.Write(append(f, '\n')); err != nil {
			return err
		}
	}
	return nil
}

func replay(ctx context.Context, cfg *config.Config, name string, in io.Reader, out io.Writer) error {
	log := logger.GetLogger().WithComponent("main")
	start := time.Now()

	channels := framechan.NewChannels(cfg.Channels.RawBuffer, cfg.Channels.DecodedBuffer)
	defer channels.Close()
	channels.StartMetricsReporting(ctx, 30*time.Second)

	proc := processor.NewFrameProcessor(cfg, channels)
	fw := writer.NewFrameWriter(channels.Decoded, out)
	capture := reader.NewCaptureReader(name, in, channels)
	capture.SetDropOnFull(cfg.Channels.DropOnFull)

	if err := fw.Start(ctx); err != nil {
		return err
	}
	if err := proc.Start(ctx); err != nil {
		return err
	}
	if err := capture.Start(ctx); err != nil {
		return err
	}

	readErr := capture.Stop()
	proc.Stop()
	channels.CloseDecoded()
	fw.Stop()

	stats := proc.Stats()
	written, kinds := fw.Written()
	chStats := channels.GetStats()
	log.WithFields(logger.Fields{
		"frames_read":     capture.Frames(),
		"frames_skipped":  capture.Dropped(),
		"frames_decoded":  stats.Decoded,
		"frames_failed":   stats.Failed,
		"type_mismatch":   stats.TypeMismatch,
		"invalid_channel": stats.InvalidChannel,
		"remote_errors":   stats.RemoteErrors,
		"written":         written,
		"calls":           kinds[models.FrameCall],
		"responses":       kinds[models.FrameResponse],
		"notifications":   kinds[models.FrameNotification],
	}).Info("replay finished")
	log.LogMetric("processor", "frames_dropped", chStats.RawDropped+chStats.DecodedDropped, "counter", nil)
	logger.LogPerformanceEntry(log, "main", "replay", time.Since(start), nil)

	for _, c := range logger.Counts() {
		log.WithFields(logger.Fields{
			"for_component": c.Component,
			"warnings":      c.Warns,
			"errors":        c.Errors,
		}).Info("log level counts")
	}

	return readErr
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" || path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, closeFile(f), nil
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, closeFile(f), nil
}

func closeFile(f *os.File) func() {
	return func() {
		if err := f.Close(); err != nil {
			logger.GetLogger().WithComponent("main").WithError(err).
				WithField("file", f.Name()).Error("failed to close file")
		}
	}
}
