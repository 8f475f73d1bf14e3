package life3d

import (
	"strconv"

	"conway-3d/internal/core"
	"conway-3d/pkg/voxel"
)

const (
	maxGridSize = 64
	maxSpeed    = 60
)

// Parameters reports the current settings and population for the HUD.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("grid_size", "Grid size", w.cfg.GridSize),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Playback",
			Params: []core.Parameter{
				floatParam("speed", "Speed", w.cfg.Speed),
				boolParam("running", "Running", w.cfg.Running),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				intParam("generation", "Generation", w.generation),
				intParam("population", "Population", w.active.Len()),
				intParam("target", "Seed target", voxel.TargetCount(w.cfg.GridSize)),
			},
		},
	}}
}

// ParameterControls lists the values the HUD can adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "grid_size", Label: "Grid size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxGridSize, HasMin: true, HasMax: true},
		{Key: "speed", Label: "Speed", Type: core.ParamTypeFloat, Step: 0.5, Min: 0.5, Max: maxSpeed, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates integer parameters by key.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "grid_size":
		if value < 1 || value > maxGridSize {
			return false
		}
		return w.SetGridSize(value)
	case "seed":
		w.Reseed(int64(value))
		return true
	}
	return false
}

// SetFloatParameter updates floating point parameters by key.
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "speed":
		if value > maxSpeed {
			value = maxSpeed
		}
		return w.SetSpeed(value)
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
