package cmd

import (
	"log"
	"os"

	"github.com/curaious/taskdeck/internal/config"
	"github.com/curaious/taskdeck/internal/mailer"
	"github.com/curaious/taskdeck/internal/services"
	"github.com/curaious/taskdeck/internal/telemetry"
	"github.com/curaious/taskdeck/internal/workflows"
	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"
)

var workerCmd = &cobra.Command{
	Use:   "worker",
	Short: "Start Temporal Worker",
	Run: func(cmd *cobra.Command, args []string) {
		conf := config.ReadConfig()

		os.Setenv("OTEL_SERVICE_NAME", "taskdeck-worker")

		shutdownTelemetry := telemetry.NewProvider(conf.OTEL_EXPORTER_OTLP_ENDPOINT)
		defer shutdownTelemetry()

		cli, err := client.Dial(client.Options{HostPort: conf.TEMPORAL_HOST_PORT})
		if err != nil {
			log.Fatal("Unable to connect to Temporal: ", err)
		}
		defer cli.Close()

		smtp, err := mailer.NewSMTPMailer(conf)
		if err != nil {
			log.Fatal("Unable to create SMTP mailer: ", err)
		}

		w := worker.New(cli, workflows.TaskQueue, worker.Options{})
		workflows.Register(w, workflows.NewActivities(services.NewServices(conf), smtp))

		if err := w.Run(worker.InterruptCh()); err != nil {
			log.Fatal(err)
		}
	},
}

// Register the "worker" command
func init() {
	rootCmd.AddCommand(workerCmd)
}
