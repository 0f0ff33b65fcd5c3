// Package planner turns scanned entries into an immutable move plan.
package planner

import (
	"path/filepath"

	"github.com/arthur-debert/tidy/pkg/logging"
	"github.com/arthur-debert/tidy/pkg/naming"
	"github.com/arthur-debert/tidy/pkg/rules"
	"github.com/arthur-debert/tidy/pkg/types"
)

// Plan computes the full set of moves before anything touches the
// filesystem: classify each entry in enumeration order, resolve a
// collision-free destination under destRoot/category, and skip no-op
// moves whose source already equals the destination. The filesystem is
// only read (existence checks), never written, so a dry run can share
// this path with a live run.
func Plan(fs types.FS, entries []types.FileEntry, classifier *rules.Classifier, destRoot string) types.MovePlan {
	logger := logging.GetLogger("planner")

	// Destinations claimed by earlier items in this pass. Each item
	// reserves its destination before the next item's collision check,
	// otherwise two entries with the same base name could claim the
	// same path.
	reserved := make(map[string]struct{}, len(entries))

	items := make([]types.MoveItem, 0, len(entries))
	for _, entry := range entries {
		category := classifier.Classify(entry.Name)
		destDir := filepath.Join(destRoot, category)

		// Already in place. Checked before collision resolution so a
		// file sitting in its own category folder does not collide
		// with itself and get renamed on a re-run.
		if filepath.Join(destDir, entry.Name) == entry.Path {
			logger.Trace().Str("path", entry.Path).Msg("Skipping no-op move")
			continue
		}

		destination := naming.Resolve(fs, destDir, entry.Name, reserved)
		reserved[destination] = struct{}{}
		items = append(items, types.MoveItem{
			Source:      entry.Path,
			Category:    category,
			Destination: destination,
		})
	}

	logger.Debug().Int("entries", len(entries)).Int("planned", len(items)).Msg("Plan computed")
	return types.NewMovePlan(items)
}
