package room

import (
	"strconv"

	"arctic-room/internal/core"
)

// Parameters reports configuration, progress and fitness for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	sess := s.session
	cfg := sess.cfg
	budget := sess.budget
	fit := Measure(sess.field)
	groups := []core.ParameterGroup{
		{
			Name: "Room",
			Params: []core.Parameter{
				intParam("n", "Size", cfg.N),
				stringParam("pattern", "Pattern", string(cfg.Pattern)),
				int64Param("seed", "Seed", sess.seed),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("iteration", "Iteration", sess.iter),
				intParam("total", "Total", budget.Total),
				intParam("warmup", "Warm-up", budget.Warmup),
				stringParam("phase", "Phase", sess.Phase().String()),
				intParam("moves_per_tick", "Moves per frame", s.movesPerTick),
			},
		},
		{
			Name: "Eligibility",
			Params: []core.Parameter{
				intParam("addable", "Addable", sess.elig.AddableCount()),
				intParam("removable", "Removable", sess.elig.RemovableCount()),
			},
		},
		{
			Name: "Fitness",
			Params: []core.Parameter{
				boolParam("monotone", "Monotone", fit.Monotone),
				floatParam("filling", "Filling", fit.Filling),
				intParam("x_full", "X full", fit.XFull),
				intParam("x_empty", "X empty", fit.XEmpty),
				intParam("y_full", "Y full", fit.YFull),
				intParam("y_empty", "Y empty", fit.YEmpty),
				intParam("z_full", "Z full", fit.ZFull),
				intParam("z_empty", "Z empty", fit.ZEmpty),
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

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
