package bubblegum

import (
	"bytes"
	"cmp"
	"context"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/bubblegum-indexer/common/errs"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/datagateway"
	"github.com/gaze-network/bubblegum-indexer/modules/bubblegum/internal/entity"
	"github.com/gaze-network/bubblegum-indexer/pkg/solana"
)

var _ datagateway.BubblegumDataGatewayWithTx = (*memoryGateway)(nil)

type changelogKey struct {
	tree solana.Pubkey
	seq  uint64
}

type creatorKey struct {
	asset   solana.Pubkey
	creator solana.Pubkey
}

type groupingKey struct {
	asset solana.Pubkey
	key   string
}

// memoryState holds the tables. Rows are replaced, never mutated in place,
// so a shallow clone is a snapshot.
type memoryState struct {
	Changelogs  map[changelogKey]entity.Changelog
	Assets      map[solana.Pubkey]entity.Asset
	AssetData   map[solana.Pubkey]entity.AssetData
	Creators    map[creatorKey]entity.AssetCreator
	Authorities map[solana.Pubkey]entity.AssetAuthority
	Groupings   map[groupingKey]entity.AssetGrouping
	TreeConfigs map[solana.Pubkey]entity.TreeConfig
	RawTxns     map[string]entity.RawTransaction
}

func newMemoryState() *memoryState {
	return &memoryState{
		Changelogs:  map[changelogKey]entity.Changelog{},
		Assets:      map[solana.Pubkey]entity.Asset{},
		AssetData:   map[solana.Pubkey]entity.AssetData{},
		Creators:    map[creatorKey]entity.AssetCreator{},
		Authorities: map[solana.Pubkey]entity.AssetAuthority{},
		Groupings:   map[groupingKey]entity.AssetGrouping{},
		TreeConfigs: map[solana.Pubkey]entity.TreeConfig{},
		RawTxns:     map[string]entity.RawTransaction{},
	}
}

func (s *memoryState) clone() *memoryState {
	return &memoryState{
		Changelogs:  maps.Clone(s.Changelogs),
		Assets:      maps.Clone(s.Assets),
		AssetData:   maps.Clone(s.AssetData),
		Creators:    maps.Clone(s.Creators),
		Authorities: maps.Clone(s.Authorities),
		Groupings:   maps.Clone(s.Groupings),
		TreeConfigs: maps.Clone(s.TreeConfigs),
		RawTxns:     maps.Clone(s.RawTxns),
	}
}

// memoryGateway is a stateful BubblegumDataGateway with the semantics of the
// postgres queries: conflict-ignoring inserts, seq-fenced updates and
// transactions that only publish their writes on commit.
type memoryGateway struct {
	state  *memoryState
	parent *memoryGateway
	// failOn names a write method that returns a database error.
	failOn string
}

func newMemoryGateway() *memoryGateway {
	return &memoryGateway{state: newMemoryState()}
}

func (m *memoryGateway) BeginBubblegumTx(context.Context) (datagateway.BubblegumDataGatewayWithTx, error) {
	return &memoryGateway{state: m.state.clone(), parent: m, failOn: m.failOn}, nil
}

func (m *memoryGateway) Commit(context.Context) error {
	if m.parent != nil {
		m.parent.state = m.state
		m.parent = nil
	}
	return nil
}

func (m *memoryGateway) Rollback(context.Context) error {
	m.parent = nil
	return nil
}

func (m *memoryGateway) fail(method string) error {
	if m.failOn == method {
		return errors.Wrapf(errs.DatabaseError, "%s: connection reset", method)
	}
	return nil
}

func (m *memoryGateway) GetAsset(_ context.Context, id solana.Pubkey) (*entity.Asset, error) {
	a, ok := m.state.Assets[id]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "asset %s", id)
	}
	return &a, nil
}

func (m *memoryGateway) GetAssetData(_ context.Context, id solana.Pubkey) (*entity.AssetData, error) {
	d, ok := m.state.AssetData[id]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "asset data %s", id)
	}
	return &d, nil
}

func (m *memoryGateway) GetAssetCreators(_ context.Context, id solana.Pubkey) ([]entity.AssetCreator, error) {
	var creators []entity.AssetCreator
	for key, c := range m.state.Creators {
		if key.asset == id {
			creators = append(creators, c)
		}
	}
	slices.SortFunc(creators, func(a, b entity.AssetCreator) int {
		return bytes.Compare(a.Creator[:], b.Creator[:])
	})
	return creators, nil
}

func (m *memoryGateway) GetAssetGroupings(_ context.Context, id solana.Pubkey) ([]entity.AssetGrouping, error) {
	var groupings []entity.AssetGrouping
	for key, g := range m.state.Groupings {
		if key.asset == id {
			groupings = append(groupings, g)
		}
	}
	slices.SortFunc(groupings, func(a, b entity.AssetGrouping) int {
		return cmp.Compare(a.GroupKey, b.GroupKey)
	})
	return groupings, nil
}

func (m *memoryGateway) GetAssetAuthority(_ context.Context, id solana.Pubkey) (*entity.AssetAuthority, error) {
	a, ok := m.state.Authorities[id]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "asset authority %s", id)
	}
	return &a, nil
}

func (m *memoryGateway) GetChangelogs(_ context.Context, treeID solana.Pubkey) ([]entity.Changelog, error) {
	var changelogs []entity.Changelog
	for key, cl := range m.state.Changelogs {
		if key.tree == treeID {
			changelogs = append(changelogs, cl)
		}
	}
	slices.SortFunc(changelogs, func(a, b entity.Changelog) int {
		return cmp.Compare(a.Seq, b.Seq)
	})
	return changelogs, nil
}

func (m *memoryGateway) GetTreeConfig(_ context.Context, id solana.Pubkey) (*entity.TreeConfig, error) {
	c, ok := m.state.TreeConfigs[id]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "tree config %s", id)
	}
	return &c, nil
}

func (m *memoryGateway) GetRawTransaction(_ context.Context, signature string) (*entity.RawTransaction, error) {
	txn, ok := m.state.RawTxns[signature]
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "raw transaction %s", signature)
	}
	return &txn, nil
}

func (m *memoryGateway) AssetExists(_ context.Context, id solana.Pubkey) (bool, error) {
	_, ok := m.state.Assets[id]
	return ok, nil
}

func (m *memoryGateway) InsertChangelog(_ context.Context, changelog entity.Changelog) (bool, error) {
	if err := m.fail("InsertChangelog"); err != nil {
		return false, err
	}
	key := changelogKey{tree: changelog.TreeID, seq: changelog.Seq}
	if _, ok := m.state.Changelogs[key]; ok {
		return false, nil
	}
	m.state.Changelogs[key] = changelog
	return true, nil
}

func (m *memoryGateway) InsertAssetData(_ context.Context, data entity.AssetData) error {
	if err := m.fail("InsertAssetData"); err != nil {
		return err
	}
	if _, ok := m.state.AssetData[data.ID]; !ok {
		m.state.AssetData[data.ID] = data
	}
	return nil
}

func (m *memoryGateway) InsertAsset(_ context.Context, asset entity.Asset) (bool, error) {
	if err := m.fail("InsertAsset"); err != nil {
		return false, err
	}
	if _, ok := m.state.Assets[asset.ID]; ok {
		return false, nil
	}
	m.state.Assets[asset.ID] = asset
	return true, nil
}

func (m *memoryGateway) InsertAssetCreators(_ context.Context, creators []entity.AssetCreator) error {
	if err := m.fail("InsertAssetCreators"); err != nil {
		return err
	}
	for _, c := range creators {
		key := creatorKey{asset: c.AssetID, creator: c.Creator}
		if _, ok := m.state.Creators[key]; !ok {
			m.state.Creators[key] = c
		}
	}
	return nil
}

func (m *memoryGateway) InsertAssetAuthority(_ context.Context, authority entity.AssetAuthority) error {
	if err := m.fail("InsertAssetAuthority"); err != nil {
		return err
	}
	if _, ok := m.state.Authorities[authority.AssetID]; !ok {
		m.state.Authorities[authority.AssetID] = authority
	}
	return nil
}

func (m *memoryGateway) InsertAssetGrouping(_ context.Context, grouping entity.AssetGrouping) error {
	if err := m.fail("InsertAssetGrouping"); err != nil {
		return err
	}
	key := groupingKey{asset: grouping.AssetID, key: grouping.GroupKey}
	if _, ok := m.state.Groupings[key]; !ok {
		m.state.Groupings[key] = grouping
	}
	return nil
}

// updateAsset applies fn to the asset if seq is newer than the stored one.
func (m *memoryGateway) updateAsset(method string, id solana.Pubkey, seq, slot uint64, fn func(*entity.Asset)) (int64, error) {
	if err := m.fail(method); err != nil {
		return 0, err
	}
	a, ok := m.state.Assets[id]
	if !ok || a.Seq >= seq {
		return 0, nil
	}
	fn(&a)
	a.Seq, a.SlotUpdated = seq, slot
	m.state.Assets[id] = a
	return 1, nil
}

func (m *memoryGateway) TransferAsset(_ context.Context, arg datagateway.TransferAssetParams) (int64, error) {
	return m.updateAsset("TransferAsset", arg.ID, arg.Seq, arg.Slot, func(a *entity.Asset) {
		a.Owner, a.Delegate, a.LeafHash = arg.Owner, nil, arg.LeafHash
	})
}

func (m *memoryGateway) DelegateAsset(_ context.Context, arg datagateway.DelegateAssetParams) (int64, error) {
	return m.updateAsset("DelegateAsset", arg.ID, arg.Seq, arg.Slot, func(a *entity.Asset) {
		a.Owner, a.Delegate, a.LeafHash = arg.Owner, arg.Delegate, arg.LeafHash
	})
}

func (m *memoryGateway) BurnAsset(_ context.Context, arg datagateway.BurnAssetParams) (int64, error) {
	return m.updateAsset("BurnAsset", arg.ID, arg.Seq, arg.Slot, func(a *entity.Asset) {
		a.Supply, a.Burnt, a.LeafHash = 0, true, nil
	})
}

func (m *memoryGateway) RedeemAsset(_ context.Context, arg datagateway.RedeemAssetParams) (int64, error) {
	return m.updateAsset("RedeemAsset", arg.ID, arg.Seq, arg.Slot, func(a *entity.Asset) {
		voucher := arg.Voucher
		a.LeafHash, a.Delegate, a.Voucher = arg.LeafHash, nil, &voucher
	})
}

func (m *memoryGateway) DecompressAsset(_ context.Context, arg datagateway.DecompressAssetParams) (int64, error) {
	if err := m.fail("DecompressAsset"); err != nil {
		return 0, err
	}
	var affected int64
	for id, a := range m.state.Assets {
		if a.Voucher == nil || *a.Voucher != arg.Voucher || !a.Compressed {
			continue
		}
		mint := arg.Mint
		a.Compressed, a.SupplyMint, a.SlotUpdated = false, &mint, arg.Slot
		m.state.Assets[id] = a
		affected++
	}
	return affected, nil
}

func (m *memoryGateway) UpdateAssetLeaf(_ context.Context, arg datagateway.UpdateAssetLeafParams) (int64, error) {
	return m.updateAsset("UpdateAssetLeaf", arg.ID, arg.Seq, arg.Slot, func(a *entity.Asset) {
		a.LeafHash = arg.LeafHash
	})
}

func (m *memoryGateway) UpsertAssetGrouping(_ context.Context, grouping entity.AssetGrouping) (int64, error) {
	if err := m.fail("UpsertAssetGrouping"); err != nil {
		return 0, err
	}
	key := groupingKey{asset: grouping.AssetID, key: grouping.GroupKey}
	if old, ok := m.state.Groupings[key]; ok && old.Seq >= grouping.Seq {
		return 0, nil
	}
	m.state.Groupings[key] = grouping
	return 1, nil
}

func (m *memoryGateway) UpsertTreeConfig(_ context.Context, config entity.TreeConfig) (int64, error) {
	if err := m.fail("UpsertTreeConfig"); err != nil {
		return 0, err
	}
	if old, ok := m.state.TreeConfigs[config.ID]; ok {
		newer := old.SlotUpdated < config.SlotUpdated ||
			(old.SlotUpdated == config.SlotUpdated && old.WriteVersion < config.WriteVersion)
		if !newer {
			return 0, nil
		}
	}
	m.state.TreeConfigs[config.ID] = config
	return 1, nil
}

func (m *memoryGateway) UpsertRawTransaction(_ context.Context, txn entity.RawTransaction) error {
	if err := m.fail("UpsertRawTransaction"); err != nil {
		return err
	}
	m.state.RawTxns[txn.Signature] = txn
	return nil
}

func (m *memoryGateway) SetAssetMetadata(_ context.Context, arg datagateway.SetAssetMetadataParams) (int64, error) {
	if err := m.fail("SetAssetMetadata"); err != nil {
		return 0, err
	}
	d, ok := m.state.AssetData[arg.ID]
	if !ok {
		return 0, nil
	}
	fetchedAt := arg.FetchedAt
	d.Metadata, d.MetadataFetchedAt = arg.Metadata, &fetchedAt
	m.state.AssetData[arg.ID] = d
	return 1, nil
}
