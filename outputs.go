package ofxsupport

import (
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
)

// RegionOfInterestSetter records the region an effect needs from an input
// clip
type RegionOfInterestSetter interface {
	SetRegionOfInterest(clip string, roi types.RectD)
}

// FramesNeededSetter records a range of frames an effect needs from an input
// clip, ranges for the same clip accumulate in call order
type FramesNeededSetter interface {
	SetFramesNeeded(clip string, frames types.RangeD)
}

// regionsOfInterest is created for a single regions of interest action
type regionsOfInterest struct {
	clips []string
	rois  map[string]types.RectD
}

func newRegionsOfInterest() *regionsOfInterest {
	return &regionsOfInterest{rois: map[string]types.RectD{}}
}

func (r *regionsOfInterest) SetRegionOfInterest(clip string, roi types.RectD) {
	if _, ok := r.rois[clip]; !ok {
		r.clips = append(r.clips, clip)
	}

	r.rois[clip] = roi
}

// write sets one rectangle per declared clip, returns false when no clip was
// declared and out is untouched
func (r *regionsOfInterest) write(out *property.Set) (bool, error) {
	for _, clip := range r.clips {
		roi := r.rois[clip]
		name := property.PerClip(property.ClipRoIPrefix, clip)

		for i, v := range []float64{roi.X1, roi.Y1, roi.X2, roi.Y2} {
			if err := out.SetDouble(name, v, i); err != nil {
				return false, err
			}
		}
	}

	return len(r.clips) > 0, nil
}

// framesNeeded is created for a single frames needed action
type framesNeeded struct {
	clips  []string
	ranges map[string][]types.RangeD
}

func newFramesNeeded() *framesNeeded {
	return &framesNeeded{ranges: map[string][]types.RangeD{}}
}

func (f *framesNeeded) SetFramesNeeded(clip string, frames types.RangeD) {
	if _, ok := f.ranges[clip]; !ok {
		f.clips = append(f.clips, clip)
	}

	f.ranges[clip] = append(f.ranges[clip], frames)
}

// write flattens the ranges of each clip into min,max pairs, returns false
// when no range was declared
func (f *framesNeeded) write(out *property.Set) (bool, error) {
	for _, clip := range f.clips {
		name := property.PerClip(property.ClipFrameRangePrefix, clip)

		for i, r := range f.ranges[clip] {
			if err := out.SetDouble(name, r.Min, i*2); err != nil {
				return false, err
			}

			if err := out.SetDouble(name, r.Max, i*2+1); err != nil {
				return false, err
			}
		}
	}

	return len(f.clips) > 0, nil
}

func writeIdentity(out *property.Set, id Identity) error {
	if err := out.SetString(property.Name, id.Clip, 0); err != nil {
		return err
	}

	return out.SetDouble(property.Time, id.Time, 0)
}

func writeRegionOfDefinition(out *property.Set, rod types.RectD) error {
	for i, v := range []float64{rod.X1, rod.Y1, rod.X2, rod.Y2} {
		if err := out.SetDouble(property.EffectRegionOfDefinition, v, i); err != nil {
			return err
		}
	}

	return nil
}

func writeTimeDomain(out *property.Set, rng types.RangeD) error {
	if err := out.SetDouble(property.EffectFrameRange, rng.Min, 0); err != nil {
		return err
	}

	return out.SetDouble(property.EffectFrameRange, rng.Max, 1)
}
