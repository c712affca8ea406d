// Package cli implements the architect command line interface.
package cli

import (
	"net/http"
	"strconv"

	"github.com/spf13/cobra"

	conf "github.com/Maxwell1111/Lego-Interligence/config"
	"github.com/Maxwell1111/Lego-Interligence/web"
)

var log = conf.NamedLogger("cli")

// Launch parses arguments and runs the selected command.
func Launch() {
	var rootCmd = &cobra.Command{
		Use:   "architect",
		Short: "brick build validation service",
	}
	rootCmd.AddCommand(cmdServe, cmdValidate, cmdExport, cmdWatch)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
	}
}

var cmdServe = &cobra.Command{
	Use:   "serve",
	Short: "start the HTTP API server",
	Long:  "starts the validation API backed by the configured mongo database",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		config := conf.SetupConfig()

		router, routerErr := web.NewRouter(config)
		if routerErr != nil {
			log.Fatal(routerErr.Error())
		}

		portString := ":" + strconv.FormatInt(config.BackendPort, 10)
		log.Infof("Listening on %s", portString)
		log.Fatal(http.ListenAndServe(portString, router))
	},
}
