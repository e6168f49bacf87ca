package backup

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/pkg"
)

const reportOK = "ok"

// ReportListenerSetup listens on a unix socket for the reports of the backup
// cmd, which runs as a separate process, and turns them into metrics.
// Message format: activities-count::<n>||duration::<seconds>
func ReportListenerSetup(
	ctx context.Context,
	socketAddrDir, socketFileName string,
	metricsManager *metrics.Manager,
) (net.Addr, error) {
	socket := filepath.Join(socketAddrDir, socketFileName)
	listener, err := net.Listen("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("binding to unix socket %s: %w", socket, err)
	}

	if err := os.Chmod(socket, os.ModeSocket|0666); err != nil {
		return nil, err
	}

	go func() {
		<-ctx.Done()
		log.Debugln("backup report unix socket listener context done, closing listener")
		_ = listener.Close()
	}()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
				default:
					log.Errorf("backup report unix socket listener conn accept: %s", err)
				}
				return
			}

			if err := conn.SetDeadline(time.Now().Add(time.Minute)); err != nil {
				log.Errorf("failed to set conn timeout: %s", err)
				_ = conn.Close()
				continue
			}

			go handleReportConn(conn, metricsManager)
		}
	}()

	return listener.Addr(), nil
}

func handleReportConn(conn net.Conn, metricsManager *metrics.Manager) {
	defer func() { _ = conn.Close() }()

	buf := make([]byte, 1024)
	n, err := conn.Read(buf)
	if err != nil {
		return
	}

	messageReceived := pkg.BytesToString(buf[:n])
	log.Infof("backup report unix socket received: %s", messageReceived)

	count, duration, err := parseReport(messageReceived)
	if err != nil {
		log.Errorf("backup report conn: %s", err)
		return
	}
	metricsManager.CounterActivitiesBackedUp.Add(float64(count))
	metricsManager.HistActivitiesBackupDuration.Observe(duration)

	if _, err := conn.Write([]byte(reportOK)); err != nil {
		log.Errorf("backup report conn, send response: %s", err)
	}
}

func reportValue(part, key string) (string, error) {
	kv := strings.Split(part, "::")
	if len(kv) != 2 || kv[0] != key {
		return "", fmt.Errorf("invalid %s info received: %s", key, part)
	}
	return kv[1], nil
}

func parseReport(msg string) (count int, durationSec float64, err error) {
	parts := strings.Split(msg, "||")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid message received: %s", msg)
	}

	rawCount, err := reportValue(parts[0], "activities-count")
	if err != nil {
		return 0, 0, err
	}
	if count, err = strconv.Atoi(rawCount); err != nil || count < 0 {
		return 0, 0, fmt.Errorf("invalid activities count: %s", rawCount)
	}

	rawDuration, err := reportValue(parts[1], "duration")
	if err != nil {
		return 0, 0, err
	}
	if durationSec, err = strconv.ParseFloat(rawDuration, 64); err != nil {
		return 0, 0, fmt.Errorf("invalid duration: %s", rawDuration)
	}

	return count, durationSec, nil
}

// SendReport reports a finished backup to the main service listening on socket.
func SendReport(socket string, activitiesCount int, duration time.Duration) error {
	conn, err := net.DialTimeout("unix", socket, 10*time.Second)
	if err != nil {
		return fmt.Errorf("dial %s: %w", socket, err)
	}
	defer func() { _ = conn.Close() }()

	if err := conn.SetDeadline(time.Now().Add(10 * time.Second)); err != nil {
		return err
	}

	msg := fmt.Sprintf("activities-count::%d||duration::%f", activitiesCount, duration.Seconds())
	if _, err := conn.Write([]byte(msg)); err != nil {
		return fmt.Errorf("send report: %w", err)
	}

	buf := make([]byte, 16)
	n, err := conn.Read(buf)
	if err != nil {
		return fmt.Errorf("read report response: %w", err)
	}
	if resp := string(buf[:n]); resp != reportOK {
		return fmt.Errorf("unexpected report response: %s", resp)
	}
	return nil
}
