// cmd/dump.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/asterixkit/getafix/troubadix/internal/asxreader"
	"github.com/asterixkit/getafix/troubadix/internal/stats"
)

var (
	portFlag        string
	outputFile      string
	dumpSchemaFiles []string
	timeout         int
	statsEvery      int
)

func init() {
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Dump decoded ASTERIX traffic from the network",
		Long: `Listen on a port and dump every decoded record to stdout or a file.
Decoding errors are reported with their classification and byte offset;
a malformed record never stops the stream.`,
		Example: `  # Dump UDP traffic on port 2000 using the built-in schemas
  troubadix dump -p 2000/udp

  # Dump TCP traffic, pin editions via a stream profile, report stats
  troubadix dump -p 8600/tcp --profile stream.yaml --stats 10 -o dump.txt`,
		RunE: runDump,
	}

	dumpCmd.Flags().StringVarP(&portFlag, "port", "p", "", "Port to listen on with protocol (e.g., 2000/udp)")
	dumpCmd.MarkFlagRequired("port")

	dumpCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	dumpCmd.Flags().StringArrayVar(&dumpSchemaFiles, "schema", nil, "XML schema file (repeatable)")
	dumpCmd.Flags().IntVar(&timeout, "timeout", 0, "Timeout in seconds (0 = no timeout)")
	dumpCmd.Flags().IntVar(&statsEvery, "stats", 0, "Print stats every N seconds (0 = no stats)")

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	logger := ConfigureLogger(Verbose, JsonLogs)

	parts := strings.Split(portFlag, "/")
	if len(parts) != 2 {
		return fmt.Errorf("invalid port format, use PORT/PROTOCOL, e.g., 2000/udp")
	}
	port, err := strconv.Atoi(parts[0])
	if err != nil {
		return fmt.Errorf("invalid port number: %w", err)
	}
	protocol := strings.ToLower(parts[1])
	if protocol != "udp" && protocol != "tcp" {
		return fmt.Errorf("protocol must be either 'udp' or 'tcp'")
	}

	var out *os.File
	if outputFile == "" {
		out = os.Stdout
	} else {
		out, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer out.Close()
	}

	decoder, err := buildDecoder(dumpSchemaFiles)
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}

	logger.WithFields(logrus.Fields{
		"protocol": protocol,
		"port":     port,
	}).Info("listening for ASTERIX traffic")

	reader, err := asxreader.NewAsterixReader(protocol, port, decoder)
	if err != nil {
		return fmt.Errorf("failed to create ASTERIX reader: %w", err)
	}
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if timeout > 0 {
		go func() {
			select {
			case <-time.After(time.Duration(timeout) * time.Second):
				logger.WithField("timeout_seconds", timeout).Info("timeout reached, shutting down")
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	messageStats := stats.NewMessageStats()

	if statsEvery > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(statsEvery) * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					messageStats.LogStats(logger, false)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	processDone := make(chan error, 1)
	go func() {
		processDone <- processTraffic(ctx, reader, out, logger, messageStats)
	}()

	var result error
	select {
	case sig := <-sigCh:
		logger.WithField("signal", sig.String()).Info("shutting down")
		cancel()
		result = <-processDone
	case result = <-processDone:
	case <-ctx.Done():
		result = <-processDone
	}

	messageStats.LogStats(logger, true)
	return result
}

// processTraffic pulls decode results off the reader until cancelled
func processTraffic(ctx context.Context, reader asxreader.AsterixReader, out *os.File,
	logger *logrus.Logger, messageStats *stats.MessageStats) error {

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		// keep the read loop responsive to cancellation
		if ds, ok := reader.(asxreader.DeadlineSetter); ok {
			ds.SetReadDeadline(time.Now().Add(1 * time.Second))
		}

		result, err := reader.Next()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			logger.WithError(err).Debug("transport error")
			continue
		}

		messageStats.Observe(result)

		for _, rec := range result.Records {
			fmt.Fprint(out, rec.String())
		}
	}
}
