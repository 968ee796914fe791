package services

import (
	"errors"

	"github.com/rntpans0531/healthcheckapp/internal/models"
)

var (
	ErrUnknownRegion = errors.New("unknown body region")
	ErrInvalidSide   = errors.New("invalid side for region")
)

// Selection is the body-region selection set. Entries keep insertion order,
// which later becomes the survey walk order, and the set holds at most one
// entry per region: the side encodes laterality, not multiplicity.
type Selection struct {
	entries []models.SelectedRegion
}

func NewSelection() *Selection {
	return &Selection{entries: make([]models.SelectedRegion, 0, 4)}
}

// Toggle applies one body-map click. clickedSide is the concrete visual half
// that was hit: left or right for bilateral regions, center for center-group
// regions. Center-group regions ignore whatever side the caller passes, so a
// center entry never carries laterality.
//
// Transitions for a bilateral region with an existing entry:
//   - same side clicked again: entry removed (toggle off)
//   - entry is "both": drops to the side opposite the click
//   - opposite single side clicked: entry upgrades to "both"
func (selection *Selection) Toggle(region models.BodyRegion, clickedSide models.Side) error {
	if !models.IsValidRegion(region) {
		return ErrUnknownRegion
	}
	if models.IsCenterRegion(region) {
		clickedSide = models.SideCenter
	} else if clickedSide != models.SideLeft && clickedSide != models.SideRight {
		return ErrInvalidSide
	}

	index := selection.indexOf(region)
	if index < 0 {
		selection.entries = append(selection.entries, models.SelectedRegion{Region: region, Side: clickedSide})
		return nil
	}

	if clickedSide == models.SideCenter {
		selection.removeAt(index)
		return nil
	}

	existing := selection.entries[index]
	switch {
	case existing.Side == clickedSide:
		selection.removeAt(index)
	case existing.Side == models.SideBoth:
		selection.entries[index].Side = oppositeSide(clickedSide)
	default:
		selection.entries[index].Side = models.SideBoth
	}
	return nil
}

// Remove deletes the entry for region, leaving every other entry untouched.
func (selection *Selection) Remove(region models.BodyRegion) {
	if index := selection.indexOf(region); index >= 0 {
		selection.removeAt(index)
	}
}

func (selection *Selection) Reset() {
	selection.entries = selection.entries[:0]
}

// Restore replaces the selection with entries reconstructed from a saved
// report, preserving their stored order.
func (selection *Selection) Restore(entries []models.SelectedRegion) {
	selection.entries = append(selection.entries[:0], entries...)
}

func (selection *Selection) Len() int {
	return len(selection.entries)
}

// Entries returns the selection in insertion order. The slice is a copy.
func (selection *Selection) Entries() []models.SelectedRegion {
	entries := make([]models.SelectedRegion, len(selection.entries))
	copy(entries, selection.entries)
	return entries
}

func (selection *Selection) indexOf(region models.BodyRegion) int {
	for index, entry := range selection.entries {
		if entry.Region == region {
			return index
		}
	}
	return -1
}

func (selection *Selection) removeAt(index int) {
	selection.entries = append(selection.entries[:index], selection.entries[index+1:]...)
}

func oppositeSide(side models.Side) models.Side {
	if side == models.SideLeft {
		return models.SideRight
	}
	return models.SideLeft
}
