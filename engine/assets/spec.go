package assets

import "fmt"

// AssetSpec identifies one asset: the logical name, the extension of the
// format it was requested with and the id of the store it comes from.
// Loads with equal specs share one cached computation.
type AssetSpec struct {
	Name      string
	Extension string
	StoreID   uint32
}

func NewAssetSpec(name, extension string, storeID uint32) AssetSpec {
	return AssetSpec{
		Name:      name,
		Extension: extension,
		StoreID:   storeID,
	}
}

func (s AssetSpec) String() string {
	return fmt.Sprintf("%s.%s@store:%d", s.Name, s.Extension, s.StoreID)
}
