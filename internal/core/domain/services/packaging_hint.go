package services

import (
	"strings"

	"warehouse/internal/core/domain/model/item"
)

// Hint is the handling advice derived from an item's cargo-type tags. It is computed on
// read and never stored.
type Hint struct {
	Fragile         bool
	Liquid          bool
	NeedsBubbleWrap bool
	Oversized       bool
	KeepUpright     bool
	NeedsPackage    bool
	OwnPackaging    bool
}

// PackagingHint classifies tags. Unknown codes are ignored.
func PackagingHint(tags []item.CargoType) Hint {
	var h Hint
	for _, t := range tags {
		switch t {
		case item.CargoFragile, item.CargoGlass:
			h.Fragile = true
			h.NeedsBubbleWrap = true
		case item.CargoElectronics, item.CargoSharpEdges:
			h.NeedsBubbleWrap = true
		case item.CargoLiquid, item.CargoAerosol:
			h.Liquid = true
			h.KeepUpright = true
		case item.CargoKeepUpright:
			h.KeepUpright = true
		case item.CargoHeavy, item.CargoNotStackable:
			h.Oversized = true
		case item.CargoNeedsPackage:
			h.NeedsPackage = true
		case item.CargoOwnPackaging:
			h.OwnPackaging = true
		}
	}
	if h.OwnPackaging {
		h.NeedsPackage = false
	}
	return h
}

// Labels lists the set flags in a stable order, e.g. ["fragile", "bubble-wrap"].
func (h Hint) Labels() []string {
	labels := make([]string, 0, 7)
	for _, f := range []struct {
		set   bool
		label string
	}{
		{h.Fragile, "fragile"},
		{h.Liquid, "liquid"},
		{h.NeedsBubbleWrap, "bubble-wrap"},
		{h.Oversized, "oversized"},
		{h.KeepUpright, "keep-upright"},
		{h.NeedsPackage, "needs-package"},
		{h.OwnPackaging, "own-packaging"},
	} {
		if f.set {
			labels = append(labels, f.label)
		}
	}
	return labels
}

func (h Hint) String() string {
	return strings.Join(h.Labels(), ",")
}
