package bubblegum

import (
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/internal/taskqueue"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

const TaskDownloadMetadata = "download_metadata"

// DownloadMetadataPayload asks a worker to fetch the off-chain metadata of a
// freshly minted asset.
type DownloadMetadataPayload struct {
	AssetID solana.Pubkey `json:"asset_id"`
	URI     string        `json:"uri"`
}

func NewDownloadMetadataTask(assetID solana.Pubkey, uri string) (taskqueue.Task, error) {
	task, err := taskqueue.NewTask(TaskDownloadMetadata, DownloadMetadataPayload{
		AssetID: assetID,
		URI:     uri,
	})
	return task, errors.WithStack(err)
}
