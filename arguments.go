package ofxsupport

import (
	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/logger"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// RenderArguments are the arguments of the render and is identity actions
type RenderArguments struct {
	Time          float64
	RenderScale   types.PointD
	RenderWindow  types.RectI
	FieldToRender types.Field
}

// SequenceRenderArguments are the arguments of the begin and end sequence
// render actions
type SequenceRenderArguments struct {
	FrameRange    types.RangeD
	FrameStep     float64
	RenderScale   types.PointD
	IsInteractive bool
}

// RegionOfDefinitionArguments are the arguments of the region of definition
// action
type RegionOfDefinitionArguments struct {
	RenderScale types.PointD
	Time        float64
}

// RegionsOfInterestArguments are the arguments of the regions of interest
// action
type RegionsOfInterestArguments struct {
	RenderScale      types.PointD
	RegionOfInterest types.RectD
	Time             float64
}

// FramesNeededArguments are the arguments of the frames needed action
type FramesNeededArguments struct {
	Time float64
}

// InstanceChangedArguments describe what changed on an instance
type InstanceChangedArguments struct {
	Reason      types.ChangeReason
	Time        float64
	RenderScale types.PointD
}

func renderScale(in *property.Set) (types.PointD, error) {
	x, err := in.GetDouble(property.EffectRenderScale, 0)
	if err != nil {
		return types.PointD{}, err
	}

	y, err := in.GetDouble(property.EffectRenderScale, 1)
	if err != nil {
		return types.PointD{}, err
	}

	return types.PointD{X: x, Y: y}, nil
}

func doubles(in *property.Set, name string, n int) ([]float64, error) {
	v := make([]float64, n)
	for i := range v {
		d, err := in.GetDouble(name, i)
		if err != nil {
			return nil, err
		}

		v[i] = d
	}

	return v, nil
}

// getRenderArguments reads the render arguments, a field that can not be
// mapped fails with a bad value status
func getRenderArguments(in *property.Set, l logger.Logger) (RenderArguments, error) {
	args := RenderArguments{}
	var err error

	if args.Time, err = in.GetDouble(property.Time, 0); err != nil {
		return args, err
	}

	if args.RenderScale, err = renderScale(in); err != nil {
		return args, err
	}

	w := [4]int{}
	for i := range w {
		if w[i], err = in.GetInt(property.EffectRenderWindow, i); err != nil {
			return args, err
		}
	}
	args.RenderWindow = types.RectI{X1: w[0], Y1: w[1], X2: w[2], Y2: w[3]}

	str, err := in.GetString(property.EffectFieldToRender, 0)
	if err != nil {
		return args, err
	}

	if args.FieldToRender, err = types.FieldFromString(str); err != nil {
		l.Error("unknown field to render", "field", str)
		return args, &errors.Error{Kind: errors.KindSuite, Status: types.StatErrValue, Message: "field to render", Err: err}
	}

	return args, nil
}

// getSequenceRenderArguments reads the begin and end sequence arguments
func getSequenceRenderArguments(in *property.Set) (SequenceRenderArguments, error) {
	args := SequenceRenderArguments{}

	r, err := doubles(in, property.EffectFrameRange, 2)
	if err != nil {
		return args, err
	}
	args.FrameRange = types.RangeD{Min: r[0], Max: r[1]}

	if args.FrameStep, err = in.GetDouble(property.EffectFrameStep, 0); err != nil {
		return args, err
	}

	if args.RenderScale, err = renderScale(in); err != nil {
		return args, err
	}

	if args.IsInteractive, err = in.GetBool(property.IsInteractive, 0); err != nil {
		return args, err
	}

	return args, nil
}

// getRegionOfDefinitionArguments reads the region of definition arguments
func getRegionOfDefinitionArguments(in *property.Set) (RegionOfDefinitionArguments, error) {
	args := RegionOfDefinitionArguments{}
	var err error

	if args.RenderScale, err = renderScale(in); err != nil {
		return args, err
	}

	if args.Time, err = in.GetDouble(property.Time, 0); err != nil {
		return args, err
	}

	return args, nil
}

// getRegionsOfInterestArguments reads the regions of interest arguments
func getRegionsOfInterestArguments(in *property.Set) (RegionsOfInterestArguments, error) {
	args := RegionsOfInterestArguments{}
	var err error

	if args.RenderScale, err = renderScale(in); err != nil {
		return args, err
	}

	r, err := doubles(in, property.EffectRegionOfInterest, 4)
	if err != nil {
		return args, err
	}
	args.RegionOfInterest = types.RectD{X1: r[0], Y1: r[1], X2: r[2], Y2: r[3]}

	if args.Time, err = in.GetDouble(property.Time, 0); err != nil {
		return args, err
	}

	return args, nil
}

// getFramesNeededArguments reads the frames needed arguments
func getFramesNeededArguments(in *property.Set) (FramesNeededArguments, error) {
	t, err := in.GetDouble(property.Time, 0)
	return FramesNeededArguments{Time: t}, err
}

// getChangeReason reads and maps the change reason
func getChangeReason(in *property.Set) (types.ChangeReason, error) {
	str, err := in.GetString(property.ChangeReason, 0)
	if err != nil {
		return types.ChangeUserEdited, err
	}

	r, err := types.ChangeReasonFromString(str)
	if err != nil {
		return types.ChangeUserEdited, errors.NewBadArgumentError(err)
	}

	return r, nil
}

// getInstanceChangedArguments reads the instance changed arguments
func getInstanceChangedArguments(in *property.Set) (InstanceChangedArguments, error) {
	args := InstanceChangedArguments{}
	var err error

	if args.Reason, err = getChangeReason(in); err != nil {
		return args, err
	}

	if args.Time, err = in.GetDouble(property.Time, 0); err != nil {
		return args, err
	}

	if args.RenderScale, err = renderScale(in); err != nil {
		return args, err
	}

	return args, nil
}
