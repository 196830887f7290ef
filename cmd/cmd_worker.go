package cmd

import (
	"github.com/gaze-network/bubblegum-indexer/internal/config"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum"
	"github.com/gaze-network/bubblegum-indexer/pkg/automaxprocs"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger"
	"github.com/gaze-network/bubblegum-indexer/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

func NewWorkerCommand() *cobra.Command {
	workerCmd := &cobra.Command{
		Use:   "worker",
		Short: "Start the background worker that downloads off-chain metadata",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := automaxprocs.Init(cmd.Context()); err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			return serve(cmd.Context(), config.Load(), []string{bubblegum.WorkerName})
		},
	}

	return workerCmd
}
