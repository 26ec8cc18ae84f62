package dla

import (
	"strconv"

	"ellipse-dla/internal/core"
)

// Parameters describes the active configuration for HUDs and reports.
func (g *Generator) Parameters() core.ParameterSnapshot {
	c := g.cfg
	groups := []core.ParameterGroup{
		{
			Name: "Canvas",
			Params: []core.Parameter{
				intParam("canvas_w", "Canvas width", c.CanvasWidth),
				intParam("canvas_h", "Canvas height", c.CanvasHeight),
				intParam("pixel", "Pixel size", c.PixelSize),
				intParam("cols", "Columns", g.grid.W),
				intParam("rows", "Rows", g.grid.H),
			},
		},
		{
			Name: "Confinement",
			Params: []core.Parameter{
				floatParam("fraction", "Semi-axis fraction", c.SemiAxisFraction),
			},
		},
		{
			Name: "Growth",
			Params: []core.Parameter{
				listParam("levels", "Levels", FormatLevels(c.Levels)),
				intParam("min_len", "Min branch length", c.MinBranchLength),
				intParam("trace", "Trace value", int(c.TraceValue)),
				intParam("nucleus", "Nucleus value", int(c.NucleusValue)),
				intParam("max_attempts", "Max attempts", c.MaxAttempts),
				int64Param("seed", "Seed", c.Seed),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func listParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeList,
		Value: value,
	}
}
