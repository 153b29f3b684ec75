package property_test

import (
	"testing"

	"github.com/jumppad-labs/ofxsupport/errors"
	"github.com/jumppad-labs/ofxsupport/hostsim"
	"github.com/jumppad-labs/ofxsupport/property"
	"github.com/jumppad-labs/ofxsupport/types"
	"github.com/stretchr/testify/require"
)

func setupSet(t *testing.T) (*property.Set, *hostsim.PropertySet) {
	ps := hostsim.NewPropertySet()
	ps.Declare(property.Time, hostsim.KindDouble, 7.5)
	ps.Declare(property.EffectRenderScale, hostsim.KindDouble, 1.0, 0.5)
	ps.Declare(property.EffectRenderWindow, hostsim.KindInt, 0, 0, 1920, 1080)
	ps.Declare(property.EffectFieldToRender, hostsim.KindString, "OfxImageFieldNone")
	ps.Declare(property.InstanceData, hostsim.KindPointer)

	return property.NewSet(hostsim.Store{}, ps), ps
}

func TestGetReturnsValueAtIndex(t *testing.T) {
	s, _ := setupSet(t)

	d, err := s.GetDouble(property.EffectRenderScale, 1)
	require.NoError(t, err)
	require.Equal(t, 0.5, d)

	i, err := s.GetInt(property.EffectRenderWindow, 2)
	require.NoError(t, err)
	require.Equal(t, 1920, i)

	str, err := s.GetString(property.EffectFieldToRender, 0)
	require.NoError(t, err)
	require.Equal(t, "OfxImageFieldNone", str)
}

func TestGetBeyondDimensionWithoutDefaultReturnsBadIndex(t *testing.T) {
	s, _ := setupSet(t)

	_, err := s.GetDouble(property.EffectRenderScale, 2)
	require.Error(t, err)
	require.True(t, errors.HasStatus(err, types.StatErrBadIndex))
}

func TestGetBeyondDimensionWithDefaultReturnsDefault(t *testing.T) {
	s, _ := setupSet(t)

	d, err := s.GetDoubleDefault(property.EffectRenderScale, 2, 1.0)
	require.NoError(t, err)
	require.Equal(t, 1.0, d)

	p, err := s.GetPointerDefault(property.InstanceData, 0, nil)
	require.NoError(t, err)
	require.Nil(t, p)
}

func TestGetUnknownPropertyIsDistinctFromMissingValue(t *testing.T) {
	s, _ := setupSet(t)

	_, err := s.GetIntDefault("OfxPropBogus", 0, 3)
	require.Error(t, err)
	require.True(t, errors.IsKind(err, errors.KindPropertyUnknown))
	require.Equal(t, types.StatErrMissingHostFeature, errors.StatusFor(err))
}

func TestGetWithMemoryFailureReturnsMemoryError(t *testing.T) {
	s, ps := setupSet(t)
	ps.FailWith(property.Time, types.StatErrMemory)

	_, err := s.GetDouble(property.Time, 0)
	require.True(t, errors.IsKind(err, errors.KindMemory))
}

func TestSetWithMemoryFailureReturnsMemoryError(t *testing.T) {
	s, ps := setupSet(t)
	ps.FailWith(property.Time, types.StatErrMemory)

	err := s.SetDouble(property.Time, 1, 0)
	require.Equal(t, types.StatErrMemory, errors.StatusFor(err))
}

func TestGetWrongTypeReturnsSuiteError(t *testing.T) {
	s, _ := setupSet(t)

	_, err := s.GetString(property.Time, 0)
	require.True(t, errors.HasStatus(err, types.StatErrValue))
}

func TestSetThenGetRoundTripsThroughHost(t *testing.T) {
	s, ps := setupSet(t)

	require.NoError(t, s.SetString(property.Name, "Source", 0))
	require.NoError(t, s.SetBool(property.IsInteractive, true, 0))

	require.Equal(t, []interface{}{"Source"}, ps.Values(property.Name))

	b, err := s.GetBool(property.IsInteractive, 0)
	require.NoError(t, err)
	require.True(t, b)
}

func TestEveryCallReadsTheHostValue(t *testing.T) {
	s, ps := setupSet(t)

	ps.Declare(property.Time, hostsim.KindDouble, 3.0)

	d, err := s.GetDouble(property.Time, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, d)
}

func TestDimensionAndReset(t *testing.T) {
	s, _ := setupSet(t)

	require.NoError(t, s.SetDouble(property.EffectRenderScale, 2.0, 2))

	d, err := s.Dimension(property.EffectRenderScale)
	require.NoError(t, err)
	require.Equal(t, 3, d)

	require.NoError(t, s.Reset(property.EffectRenderScale))

	d, err = s.Dimension(property.EffectRenderScale)
	require.NoError(t, err)
	require.Equal(t, 2, d)
}

func TestNullHandleReturnsBadHandle(t *testing.T) {
	s := property.NewSet(hostsim.Store{}, nil)
	require.True(t, s.IsNull())

	_, err := s.GetDouble(property.Time, 0)
	require.True(t, errors.HasStatus(err, types.StatErrBadHandle))
}

func TestNewSetWithoutSuitePanics(t *testing.T) {
	require.Panics(t, func() {
		property.NewSet(nil, nil)
	})
}

func TestPerClipUsesNameVerbatim(t *testing.T) {
	require.Equal(t, "OfxImageClipPropRoI_Source Clip", property.PerClip(property.ClipRoIPrefix, "Source Clip"))
}
