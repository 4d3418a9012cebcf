package opendrive

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// irrelevantLaneTypes lists the lane types a drivable-lane consumer never
// needs. Matching is case-insensitive.
var irrelevantLaneTypes = map[string]struct{}{
	"sidewalk": {},
	"none":     {},
	"shoulder": {},
	"median":   {},
}

// FilterRoads reduces roads to the ones that still matter once the
// irrelevant lane types are discarded: first the roads whose lanes are all
// irrelevant are dropped, then the surviving roads have those lanes pruned.
// The survivors are derived copies and the input is never modified. The
// second return value holds the ids of the dropped roads.
func FilterRoads(roads []Road, log *zap.Logger) ([]Road, map[int]struct{}) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("Filtering roads (removing types: sidewalk, none, shoulder, median)")

	removed := make(map[int]struct{})
	survivors := make([]Road, 0, len(roads))
	for _, road := range roads {
		if !roadSurvives(road) {
			removed[road.ID] = struct{}{}
			continue
		}
		survivors = append(survivors, pruneLanes(road))
	}

	ids := lo.Keys(removed)
	sort.Ints(ids)
	log.Info("Removed roads.", zap.Int("count", len(removed)))
	log.Debug("Removed road ids.", zap.Ints("ids", ids))
	log.Info("Filtered roads.", zap.Int("count", len(survivors)))
	return survivors, removed
}

func relevantLane(l Lane) bool {
	_, drop := irrelevantLaneTypes[strings.ToLower(l.Type)]
	return !drop
}

// roadSurvives reports whether any lane on any side is still relevant.
func roadSurvives(road Road) bool {
	for _, group := range laneGroups(road) {
		if group == nil {
			continue
		}
		for _, lane := range group.Lanes {
			if relevantLane(lane) {
				return true
			}
		}
	}
	return false
}

// pruneLanes returns a copy of road whose lane groups keep only the
// relevant lanes.
func pruneLanes(road Road) Road {
	road.Lanes.Section.Left = pruneGroup(road.Lanes.Section.Left)
	road.Lanes.Section.Center = pruneGroup(road.Lanes.Section.Center)
	road.Lanes.Section.Right = pruneGroup(road.Lanes.Section.Right)
	return road
}

func pruneGroup(group *LaneGroup) *LaneGroup {
	if group == nil {
		return nil
	}
	kept := lo.Filter(group.Lanes, func(l Lane, _ int) bool {
		return relevantLane(l)
	})
	return &LaneGroup{Lanes: kept}
}

func laneGroups(road Road) [3]*LaneGroup {
	return [3]*LaneGroup{
		road.Lanes.Section.Left,
		road.Lanes.Section.Center,
		road.Lanes.Section.Right,
	}
}
