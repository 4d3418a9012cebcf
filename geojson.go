package opendrive

import (
	"math"

	geojson "github.com/paulmach/go.geojson"
)

// defaultSampleStep is the arc sampling distance in meters used when the
// caller does not supply one.
const defaultSampleStep = 5.0

// DrivableGeoJSON renders roads as a GeoJSON FeatureCollection with one
// LineString per road. Straight segments contribute their endpoints and
// arcs are sampled every step meters (default 5). Coordinates stay in the
// document's inertial frame and carry the elevation as a third ordinate.
func DrivableGeoJSON(roads []Road, step float64) ([]byte, error) {
	if step <= 0 {
		step = defaultSampleStep
	}
	fc := geojson.NewFeatureCollection()
	for _, road := range roads {
		coords := roadLine(road, step)
		if len(coords) < 2 {
			continue
		}
		f := geojson.NewLineStringFeature(coords)
		f.SetProperty("id", road.ID)
		f.SetProperty("name", road.Name)
		f.SetProperty("length", road.Length)
		f.SetProperty("junction", road.Junction)
		fc.AddFeature(f)
	}
	return fc.MarshalJSON()
}

// roadLine walks the plan view and returns the sampled reference line.
func roadLine(road Road, step float64) [][]float64 {
	var coords [][]float64
	appendAt := func(g Geometry, t float64) {
		x, y := geometryPoint(g, t)
		z := elevationAt(road.ElevationProfile, g.S+t)
		coords = append(coords, []float64{x, y, z})
	}
	for i, g := range road.PlanView {
		if i == 0 {
			appendAt(g, 0)
		}
		if _, isArc := g.Shape.(Arc); isArc {
			for t := step; t < g.Length; t += step {
				appendAt(g, t)
			}
		}
		appendAt(g, g.Length)
	}
	return coords
}

// geometryPoint resolves the inertial position t meters along g.
func geometryPoint(g Geometry, t float64) (float64, float64) {
	if arc, ok := g.Shape.(Arc); ok && arc.Curvature != 0 {
		k := arc.Curvature
		x := g.X + (math.Sin(g.Hdg+k*t)-math.Sin(g.Hdg))/k
		y := g.Y - (math.Cos(g.Hdg+k*t)-math.Cos(g.Hdg))/k
		return x, y
	}
	return g.X + t*math.Cos(g.Hdg), g.Y + t*math.Sin(g.Hdg)
}

// elevationAt evaluates the elevation entry in force at s, the one with
// the greatest start at or before s.
func elevationAt(profile []Poly3, s float64) float64 {
	if len(profile) == 0 {
		return 0
	}
	active := profile[0]
	for _, p := range profile[1:] {
		if p.S <= s {
			active = p
		}
	}
	return active.Eval(s)
}
