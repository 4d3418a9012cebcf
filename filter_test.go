package opendrive

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func group(types ...string) *LaneGroup {
	g := &LaneGroup{Lanes: []Lane{}}
	for i, typ := range types {
		g.Lanes = append(g.Lanes, Lane{ID: i + 1, Type: typ})
	}
	return g
}

func newRoad(id int, left, center, right *LaneGroup) Road {
	return Road{
		ID:    id,
		Lanes: Lanes{Section: LaneSection{Left: left, Center: center, Right: right}},
	}
}

func TestFilterRoadsKeepsRoadWithDrivableLane(t *testing.T) {
	in := []Road{newRoad(1, nil, nil, group("driving", "sidewalk"))}

	out, removed := FilterRoads(in, nil)

	require.Len(t, out, 1)
	assert.Empty(t, removed)
	require.Len(t, out[0].Lanes.Section.Right.Lanes, 1)
	assert.Equal(t, "driving", out[0].Lanes.Section.Right.Lanes[0].Type)

	// the input road still carries the sidewalk lane
	assert.Len(t, in[0].Lanes.Section.Right.Lanes, 2)
}

func TestFilterRoadsDropsIrrelevantRoad(t *testing.T) {
	in := []Road{newRoad(4, nil, group("median"), group("none"))}

	out, removed := FilterRoads(in, nil)

	assert.Empty(t, out)
	assert.Equal(t, map[int]struct{}{4: {}}, removed)
}

func TestFilterRoadsCaseInsensitive(t *testing.T) {
	in := []Road{
		newRoad(1, group("SideWalk"), nil, group("Driving")),
		newRoad(2, group("MEDIAN", "Shoulder"), nil, nil),
	}

	out, removed := FilterRoads(in, nil)

	require.Len(t, out, 1)
	assert.Equal(t, 1, out[0].ID)
	assert.Empty(t, out[0].Lanes.Section.Left.Lanes)
	assert.Len(t, out[0].Lanes.Section.Right.Lanes, 1)
	assert.Equal(t, map[int]struct{}{2: {}}, removed)
}

func TestFilterRoadsDropsRoadWithoutLanes(t *testing.T) {
	in := []Road{newRoad(9, nil, nil, nil)}

	out, removed := FilterRoads(in, nil)

	assert.Empty(t, out)
	assert.Equal(t, map[int]struct{}{9: {}}, removed)
}

func TestFilterRoadsIdempotent(t *testing.T) {
	in := []Road{
		newRoad(1, group("sidewalk", "driving"), group("none"), group("driving", "shoulder")),
		newRoad(2, nil, nil, group("biking", "sidewalk")),
	}

	once, removedOnce := FilterRoads(in, nil)
	twice, removedTwice := FilterRoads(once, nil)

	assert.Equal(t, once, twice)
	assert.Empty(t, removedOnce)
	assert.Empty(t, removedTwice)
}

func TestFilterRoadsConsistency(t *testing.T) {
	in := []Road{
		newRoad(1, group("driving"), nil, group("sidewalk")),
		newRoad(2, group("median"), group("none"), group("shoulder")),
		newRoad(3, nil, nil, nil),
		newRoad(4, nil, group("restricted"), group("sidewalk", "biking")),
		newRoad(5, group("NONE"), nil, nil),
	}

	out, removed := FilterRoads(in, nil)

	assert.Equal(t, map[int]struct{}{2: {}, 3: {}, 5: {}}, removed)
	require.Len(t, out, 2)

	relevant := func(l Lane) bool {
		switch strings.ToLower(l.Type) {
		case "sidewalk", "none", "shoulder", "median":
			return false
		}
		return true
	}
	for _, road := range out {
		_, dropped := removed[road.ID]
		assert.False(t, dropped, "road %d both kept and removed", road.ID)

		n := 0
		for _, g := range []*LaneGroup{road.Lanes.Section.Left, road.Lanes.Section.Center, road.Lanes.Section.Right} {
			if g == nil {
				continue
			}
			for _, l := range g.Lanes {
				require.True(t, relevant(l), "road %d kept lane %q", road.ID, l.Type)
				n++
			}
		}
		assert.Greater(t, n, 0, "road %d survived with no relevant lane", road.ID)
	}
}

func TestFilterRoadsPreservesOrderAndFields(t *testing.T) {
	in := []Road{
		{ID: 3, Name: "A", Length: 10, Junction: -1, Lanes: Lanes{Section: LaneSection{Right: group("driving")}}},
		{ID: 1, Name: "B", Length: 20, Junction: 2, Lanes: Lanes{Section: LaneSection{Right: group("sidewalk")}}},
		{ID: 2, Name: "C", Length: 30, Junction: -1, Lanes: Lanes{Section: LaneSection{Left: group("biking")}}},
	}

	out, removed := FilterRoads(in, nil)

	require.Len(t, out, 2)
	assert.Equal(t, 3, out[0].ID)
	assert.Equal(t, "A", out[0].Name)
	assert.Equal(t, 2, out[1].ID)
	assert.Equal(t, 30.0, out[1].Length)
	assert.Equal(t, map[int]struct{}{1: {}}, removed)
}
