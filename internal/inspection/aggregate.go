// internal/inspection/aggregate.go
package inspection

import (
	"github.com/M00N69/supainspection/internal/models"
)

// Edit is one checkpoint's submitted evaluation. Photos holds object URLs
// already returned by the uploader; the aggregator never touches raw bytes.
type Edit struct {
	CheckpointID uint
	Status       string
	Comment      string
	Photos       []string
}

// ZoneGroup clusters results under one zone label for display.
type ZoneGroup struct {
	Zone    string                    `json:"zone"`
	Results []models.CheckpointResult `json:"results"`
}

// ApplyEdits folds the submitted edits into the current result set and
// recomputes the derived fields. The output has exactly the checkpoints of
// current, in order; a checkpoint without an edit resets to unevaluated,
// and edits for unknown checkpoints are dropped. Pure and deterministic.
func ApplyEdits(current []models.CheckpointResult, edits []Edit) ([]models.CheckpointResult, float64, string) {
	byID := make(map[uint]Edit, len(edits))
	for _, e := range edits {
		byID[e.CheckpointID] = e
	}

	updated := make([]models.CheckpointResult, 0, len(current))
	evaluated := 0
	for _, r := range current {
		next := models.CheckpointResult{
			CheckpointID: r.CheckpointID,
			Zone:         r.Zone,
			Points:       r.Points,
			Status:       models.StatusUnevaluated,
		}
		if e, ok := byID[r.CheckpointID]; ok {
			if e.Status != "" {
				next.Status = e.Status
			}
			next.Comment = e.Comment
			next.Photos = e.Photos
		}
		if next.Status != models.StatusUnevaluated {
			evaluated++
		}
		updated = append(updated, next)
	}

	progress := 0.0
	if len(updated) > 0 {
		progress = 100 * float64(evaluated) / float64(len(updated))
	}

	status := models.InspectionInProgress
	if progress == 100 {
		status = models.InspectionCompleted
	}
	return updated, progress, status
}

// GroupByZone clusters results by zone, zones ordered by first appearance
// and results keeping their relative order within each zone.
func GroupByZone(results []models.CheckpointResult) []ZoneGroup {
	index := make(map[string]int, len(results))
	groups := make([]ZoneGroup, 0)
	for _, r := range results {
		i, ok := index[r.Zone]
		if !ok {
			i = len(groups)
			index[r.Zone] = i
			groups = append(groups, ZoneGroup{Zone: r.Zone})
		}
		groups[i].Results = append(groups[i].Results, r)
	}
	return groups
}
