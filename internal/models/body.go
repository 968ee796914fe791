package models

// BodyRegion identifies one of the nine fixed anatomical zones on the body
// map. The set is static; regions are never created or removed at runtime.
type BodyRegion string

const (
	RegionNeck      BodyRegion = "neck"
	RegionShoulder  BodyRegion = "shoulder"
	RegionBack      BodyRegion = "back"
	RegionWaist     BodyRegion = "waist"
	RegionElbow     BodyRegion = "elbow"
	RegionHandWrist BodyRegion = "hand_wrist"
	RegionHipThigh  BodyRegion = "hip_thigh"
	RegionKnee      BodyRegion = "knee"
	RegionAnkleFoot BodyRegion = "ankle_foot"
)

type Side string

const (
	SideLeft   Side = "left"
	SideRight  Side = "right"
	SideBoth   Side = "both"
	SideCenter Side = "center"
)

const (
	GroupCenter    = "center"
	GroupBilateral = "bilateral"
)

type BodyRegionDefinition struct {
	ID    BodyRegion `json:"id"`
	Group string     `json:"group"`
}

// AllBodyRegions lists the catalog in body-map display order.
func AllBodyRegions() []BodyRegionDefinition {
	return []BodyRegionDefinition{
		{ID: RegionNeck, Group: GroupCenter},
		{ID: RegionShoulder, Group: GroupBilateral},
		{ID: RegionBack, Group: GroupCenter},
		{ID: RegionElbow, Group: GroupBilateral},
		{ID: RegionHandWrist, Group: GroupBilateral},
		{ID: RegionWaist, Group: GroupCenter},
		{ID: RegionHipThigh, Group: GroupBilateral},
		{ID: RegionKnee, Group: GroupBilateral},
		{ID: RegionAnkleFoot, Group: GroupBilateral},
	}
}

func IsValidRegion(region BodyRegion) bool {
	for _, definition := range AllBodyRegions() {
		if definition.ID == region {
			return true
		}
	}
	return false
}

func IsCenterRegion(region BodyRegion) bool {
	switch region {
	case RegionNeck, RegionBack, RegionWaist:
		return true
	default:
		return false
	}
}

// SelectedRegion pairs a region with its laterality. The selection set holds
// at most one entry per region; the side encodes which halves are lit.
type SelectedRegion struct {
	Region BodyRegion `json:"region"`
	Side   Side       `json:"side"`
}
