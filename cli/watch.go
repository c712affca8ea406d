package cli

import (
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"time"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

var watchAddress string

var cmdWatch = &cobra.Command{
	Use:   "watch [buildId]",
	Short: "stream live build snapshots from a running server",
	Long:  "subscribes to the live websocket endpoint of a build and prints every snapshot as it arrives",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		watchBuild(watchAddress, args[0])
	},
}

func init() {
	cmdWatch.Flags().StringVarP(
		&watchAddress, "address", "a", "localhost:3002", "server host:port",
	)
}

func watchBuild(address, buildID string) {
	conn := connect(address, fmt.Sprintf("/builds/%s/live", buildID))
	defer conn.Close()

	go closeConnectionOnInterruptSignal(conn)

	log.Info("waiting for build updates...")
	snapshotReadLoop(conn)
}

func connect(address, path string) *websocket.Conn {
	url := url.URL{Scheme: "ws", Host: address, Path: path}

	for {
		log.Infof("connecting to %s", url.String())

		conn, _, err := websocket.DefaultDialer.Dial(url.String(), nil)
		if err != nil {
			log.Error(err.Error())
			time.Sleep(1 * time.Second)
		} else {
			return conn
		}
	}
}

func snapshotReadLoop(conn *websocket.Conn) {
	for {
		var snapshot struct {
			Name      string `json:"name"`
			Status    string `json:"status"`
			PartCount int    `json:"partCount"`
		}
		if err := conn.ReadJSON(&snapshot); err != nil {
			log.Warnf("connection closed: %s", err.Error())
			return
		}
		log.Infof(
			"%s [%s] %d parts", snapshot.Name, snapshot.Status, snapshot.PartCount,
		)
	}
}

func closeConnectionOnInterruptSignal(conn *websocket.Conn) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	<-interrupt
	log.Info("disconnecting...")
	closeErr := conn.WriteMessage(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
	)
	if closeErr != nil {
		log.Error(closeErr.Error())
	}
	os.Exit(0)
}
