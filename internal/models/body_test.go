package models

import "testing"

func TestBodyRegionCatalog(t *testing.T) {
	catalog := AllBodyRegions()
	if len(catalog) != 9 {
		t.Fatalf("catalog has %d regions, want 9", len(catalog))
	}

	seen := map[BodyRegion]bool{}
	centerCount := 0
	for _, definition := range catalog {
		if seen[definition.ID] {
			t.Fatalf("duplicate region %s", definition.ID)
		}
		seen[definition.ID] = true

		switch definition.Group {
		case GroupCenter:
			centerCount++
			if !IsCenterRegion(definition.ID) {
				t.Fatalf("%s carries the center group but IsCenterRegion is false", definition.ID)
			}
		case GroupBilateral:
			if IsCenterRegion(definition.ID) {
				t.Fatalf("%s carries the bilateral group but IsCenterRegion is true", definition.ID)
			}
		default:
			t.Fatalf("%s has unknown group %q", definition.ID, definition.Group)
		}
	}
	if centerCount != 3 {
		t.Fatalf("catalog has %d center regions, want neck, back, waist", centerCount)
	}
}

func TestIsValidRegion(t *testing.T) {
	if !IsValidRegion(RegionHandWrist) {
		t.Fatalf("hand_wrist must be valid")
	}
	if IsValidRegion("spine") || IsValidRegion("") {
		t.Fatalf("unknown regions must be invalid")
	}
}

func TestActivityTimesTotal(t *testing.T) {
	times := ActivityTimes{Sitting: 8, Standing: 1.5, Sleeping: 7, Driving: 0.5}
	if total := times.Total(); total != 17 {
		t.Fatalf("Total = %v, want 17", total)
	}
}
