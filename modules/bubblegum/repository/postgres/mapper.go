package postgres

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/repository/postgres/gen"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
)

func toPubkey(b []byte) solana.Pubkey {
	var pk solana.Pubkey
	copy(pk[:], b)
	return pk
}

func toOptionalPubkey(b []byte) *solana.Pubkey {
	if b == nil {
		return nil
	}
	pk := toPubkey(b)
	return &pk
}

func optionalPubkey(pk *solana.Pubkey) []byte {
	if pk == nil {
		return nil
	}
	return pk.Bytes()
}

func timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC(), Valid: !t.IsZero()}
}

func mapChangelogParams(src entity.Changelog) gen.InsertChangelogParams {
	return gen.InsertChangelogParams{
		TreeID:      src.TreeID.Bytes(),
		Seq:         int64(src.Seq),
		LeafIndex:   int64(src.LeafIndex),
		NodeIndex:   int64(src.NodeIndex),
		Hash:        src.Hash[:],
		PathNodes:   lo.Map(src.PathNodes, func(node [32]byte, _ int) []byte { return node[:] }),
		PathIndexes: lo.Map(src.PathIndexes, func(index uint32, _ int) int64 { return int64(index) }),
		Slot:        int64(src.Slot),
	}
}

func mapChangelog(src gen.Changelog) entity.Changelog {
	var hash [32]byte
	copy(hash[:], src.Hash)
	return entity.Changelog{
		TreeID:    toPubkey(src.TreeID),
		Seq:       uint64(src.Seq),
		LeafIndex: uint32(src.LeafIndex),
		NodeIndex: uint32(src.NodeIndex),
		Hash:      hash,
		PathNodes: lo.Map(src.PathNodes, func(node []byte, _ int) [32]byte {
			var out [32]byte
			copy(out[:], node)
			return out
		}),
		PathIndexes: lo.Map(src.PathIndexes, func(index int64, _ int) uint32 { return uint32(index) }),
		Slot:        uint64(src.Slot),
		CreatedAt:   src.CreatedAt.Time,
	}
}

func mapAssetDataParams(src entity.AssetData) (gen.InsertAssetDataParams, error) {
	chainData, err := json.Marshal(src.ChainData)
	if err != nil {
		return gen.InsertAssetDataParams{}, errors.Wrapf(errs.InternalError, "cannot encode chain data: %v", err)
	}
	metadata := src.Metadata
	if len(metadata) == 0 {
		metadata = entity.MetadataProcessing
	}
	return gen.InsertAssetDataParams{
		ID:                  src.ID.Bytes(),
		ChainData:           chainData,
		ChainDataMutability: string(src.ChainDataMutability),
		MetadataUrl:         src.MetadataURL,
		Metadata:            metadata,
		MetadataMutability:  string(src.MetadataMutability),
		SlotUpdated:         int64(src.SlotUpdated),
	}, nil
}

func mapAssetData(src gen.AssetDatum) (entity.AssetData, error) {
	var chainData entity.ChainData
	if err := json.Unmarshal(src.ChainData, &chainData); err != nil {
		return entity.AssetData{}, errors.Wrapf(errs.InternalError, "cannot decode chain data: %v", err)
	}
	var fetchedAt *time.Time
	if src.MetadataFetchedAt.Valid {
		fetchedAt = lo.ToPtr(src.MetadataFetchedAt.Time)
	}
	return entity.AssetData{
		ID:                  toPubkey(src.ID),
		ChainData:           chainData,
		ChainDataMutability: entity.Mutability(src.ChainDataMutability),
		MetadataURL:         src.MetadataUrl,
		Metadata:            src.Metadata,
		MetadataMutability:  entity.Mutability(src.MetadataMutability),
		MetadataFetchedAt:   fetchedAt,
		SlotUpdated:         uint64(src.SlotUpdated),
	}, nil
}

func mapAssetParams(src entity.Asset) gen.InsertAssetParams {
	return gen.InsertAssetParams{
		ID:                src.ID.Bytes(),
		Owner:             src.Owner.Bytes(),
		Delegate:          optionalPubkey(src.Delegate),
		OwnerType:         string(src.OwnerType),
		Frozen:            src.Frozen,
		Supply:            src.Supply,
		SupplyMint:        optionalPubkey(src.SupplyMint),
		Compressed:        src.Compressed,
		Compressible:      src.Compressible,
		TreeID:            src.TreeID.Bytes(),
		Nonce:             int64(src.Nonce),
		LeafHash:          src.LeafHash,
		RoyaltyTargetType: string(src.RoyaltyTargetType),
		RoyaltyTarget:     optionalPubkey(src.RoyaltyTarget),
		RoyaltyAmount:     src.RoyaltyAmount,
		ChainDataID:       src.ChainDataID.Bytes(),
		Burnt:             src.Burnt,
		Seq:               int64(src.Seq),
		SlotUpdated:       int64(src.SlotUpdated),
	}
}

func mapAsset(src gen.Asset) entity.Asset {
	return entity.Asset{
		ID:                toPubkey(src.ID),
		Owner:             toPubkey(src.Owner),
		Delegate:          toOptionalPubkey(src.Delegate),
		OwnerType:         entity.OwnerType(src.OwnerType),
		Frozen:            src.Frozen,
		Supply:            src.Supply,
		SupplyMint:        toOptionalPubkey(src.SupplyMint),
		Compressed:        src.Compressed,
		Compressible:      src.Compressible,
		TreeID:            toPubkey(src.TreeID),
		Nonce:             uint64(src.Nonce),
		LeafHash:          src.LeafHash,
		Voucher:           toOptionalPubkey(src.Voucher),
		RoyaltyTargetType: entity.RoyaltyTargetType(src.RoyaltyTargetType),
		RoyaltyTarget:     toOptionalPubkey(src.RoyaltyTarget),
		RoyaltyAmount:     src.RoyaltyAmount,
		ChainDataID:       toPubkey(src.ChainDataID),
		Burnt:             src.Burnt,
		Seq:               uint64(src.Seq),
		SlotUpdated:       uint64(src.SlotUpdated),
		CreatedAt:         src.CreatedAt.Time,
		UpdatedAt:         src.UpdatedAt.Time,
	}
}

func mapAssetCreator(src gen.AssetCreator) entity.AssetCreator {
	return entity.AssetCreator{
		AssetID:  toPubkey(src.AssetID),
		Creator:  toPubkey(src.Creator),
		Share:    uint8(src.Share),
		Verified: src.Verified,
		Seq:      uint64(src.Seq),
	}
}

func mapAssetGroupingParams(src entity.AssetGrouping) gen.UpsertAssetGroupingParams {
	return gen.UpsertAssetGroupingParams{
		AssetID:    src.AssetID.Bytes(),
		GroupKey:   src.GroupKey,
		GroupValue: src.GroupValue,
		Seq:        int64(src.Seq),
	}
}

func mapTreeConfigParams(src entity.TreeConfig) gen.UpsertTreeConfigParams {
	return gen.UpsertTreeConfigParams{
		ID:                src.ID.Bytes(),
		TreeCreator:       src.TreeCreator.Bytes(),
		TreeDelegate:      src.TreeDelegate.Bytes(),
		TotalMintCapacity: int64(src.TotalMintCapacity),
		NumMinted:         int64(src.NumMinted),
		IsPublic:          src.IsPublic,
		SlotUpdated:       int64(src.SlotUpdated),
		WriteVersion:      int64(src.WriteVersion),
	}
}

func mapTreeConfig(src gen.TreeConfig) entity.TreeConfig {
	return entity.TreeConfig{
		ID:                toPubkey(src.ID),
		TreeCreator:       toPubkey(src.TreeCreator),
		TreeDelegate:      toPubkey(src.TreeDelegate),
		TotalMintCapacity: uint64(src.TotalMintCapacity),
		NumMinted:         uint64(src.NumMinted),
		IsPublic:          src.IsPublic,
		SlotUpdated:       uint64(src.SlotUpdated),
		WriteVersion:      uint64(src.WriteVersion),
	}
}
