package entity

// AssetKind classifies an asset collection by how its units behave.
type AssetKind string

const (
	// AssetKindUnique marks collections whose units are non-fungible.
	AssetKindUnique AssetKind = "unique"
	// AssetKindFungible marks collections of interchangeable units.
	AssetKindFungible AssetKind = "fungible"
)

// IsValidAssetKind checks if the given string is a valid asset kind
func IsValidAssetKind(kind string) bool {
	return kind == string(AssetKindUnique) || kind == string(AssetKindFungible)
}

// FeeScheduleKind classifies an entry in an asset's custom fee schedule.
type FeeScheduleKind string

const (
	// FeeScheduleFixed charges a fixed amount on every transfer.
	FeeScheduleFixed FeeScheduleKind = "fixed"
	// FeeScheduleFractional charges a fraction of the transferred value.
	FeeScheduleFractional FeeScheduleKind = "fractional"
	// FeeScheduleRoyalty charges a royalty with an optional fallback fee.
	FeeScheduleRoyalty FeeScheduleKind = "royalty"
)

// FeeScheduleEntry is one custom fee attached to an asset type.
type FeeScheduleEntry struct {
	Kind      FeeScheduleKind
	Collector AccountID
	Amount    int64
}

// AssetInfo is the metadata the eligibility check inspects. It is a
// read-only snapshot; nothing in the custody core mutates asset metadata.
type AssetInfo struct {
	Type        AssetType
	Kind        AssetKind
	FeeSchedule []FeeScheduleEntry
}

// IsUnique reports whether the asset's units are non-fungible.
func (a *AssetInfo) IsUnique() bool {
	return a.Kind == AssetKindUnique
}

// HasCustomFees reports whether the asset carries any fixed, fractional,
// or royalty/fallback fee schedule entry.
func (a *AssetInfo) HasCustomFees() bool {
	return len(a.FeeSchedule) > 0
}
