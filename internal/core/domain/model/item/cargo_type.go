package item

import (
	"fmt"
	"slices"

	"warehouse/internal/pkg/errs"
)

// CargoType is a handling tag attached to an item (fragile, liquid, ...).
// Codes are stable and shared with the packaging optimizer.
type CargoType int

const (
	CargoFragile      CargoType = 200
	CargoGlass        CargoType = 210
	CargoLiquid       CargoType = 300
	CargoAerosol      CargoType = 310
	CargoFood         CargoType = 500
	CargoElectronics  CargoType = 600
	CargoNeedsPackage CargoType = 700
	CargoOwnPackaging CargoType = 710
	CargoHeavy        CargoType = 800
	CargoSharpEdges   CargoType = 900
	CargoKeepUpright  CargoType = 910
	CargoNotStackable CargoType = 920

	minCargoTypeCode CargoType = 1
	maxCargoTypeCode CargoType = 9999
)

var cargoDescriptions = map[CargoType]string{
	CargoFragile:      "fragile",
	CargoGlass:        "glass",
	CargoLiquid:       "liquid",
	CargoAerosol:      "aerosol",
	CargoFood:         "food",
	CargoElectronics:  "electronics",
	CargoNeedsPackage: "needs packaging",
	CargoOwnPackaging: "ships in own packaging",
	CargoHeavy:        "heavy",
	CargoSharpEdges:   "sharp edges",
	CargoKeepUpright:  "keep upright",
	CargoNotStackable: "not stackable",
}

// Validate accepts any code in range; unknown codes are carried through to the optimizer.
func (c CargoType) Validate() error {
	if c < minCargoTypeCode || c > maxCargoTypeCode {
		return errs.NewValueIsOutOfRangeError("cargo type", int(c), int(minCargoTypeCode), int(maxCargoTypeCode))
	}
	return nil
}

func (c CargoType) String() string {
	if d, ok := cargoDescriptions[c]; ok {
		return d
	}
	return fmt.Sprintf("cargo type %d", int(c))
}

// normalizeCargoTypes validates and de-duplicates tags, returning them sorted.
func normalizeCargoTypes(tags []CargoType) ([]CargoType, error) {
	out := make([]CargoType, 0, len(tags))
	for _, t := range tags {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out, nil
}
