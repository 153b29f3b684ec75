package errors

import (
	"fmt"
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/jumppad-labs/ofxsupport/types"
	"github.com/stretchr/testify/require"
)

func TestFromStatusReturnsNilForSuccessAndReplies(t *testing.T) {
	for _, st := range []types.Status{types.StatOK, types.StatReplyYes, types.StatReplyNo, types.StatReplyDefault} {
		require.NoError(t, FromStatus(st), st.String())
	}
}

func TestFromStatusConvertsMemoryToMemoryKind(t *testing.T) {
	err := FromStatus(types.StatErrMemory)
	require.True(t, IsKind(err, KindMemory))
	require.Equal(t, types.StatErrMemory, StatusFor(err))
}

func TestFromStatusCarriesStatus(t *testing.T) {
	err := FromStatus(types.StatErrBadIndex)
	require.True(t, HasStatus(err, types.StatErrBadIndex))
	require.Equal(t, types.StatErrBadIndex, StatusFor(err))
}

func TestStatusForMapsEachKind(t *testing.T) {
	tt := []struct {
		err    error
		status types.Status
	}{
		{nil, types.StatOK},
		{NewSuiteError(types.StatErrBadHandle, "null handle"), types.StatErrBadHandle},
		{NewHostInadequateError("OfxInteractSuite"), types.StatErrMissingHostFeature},
		{NewPropertyUnknownError("OfxPropTime"), types.StatErrMissingHostFeature},
		{ErrMemory, types.StatErrMemory},
		{NewBadArgumentError(fmt.Errorf("bad context")), types.StatFailed},
		{fmt.Errorf("something opaque"), types.StatFailed},
	}

	for _, tc := range tt {
		require.Equal(t, tc.status, StatusFor(tc.err))
	}
}

func TestStatusForUnwrapsWrappedErrors(t *testing.T) {
	err := fmt.Errorf("render failed: %w", ErrMemory)
	require.Equal(t, types.StatErrMemory, StatusFor(err))
}

func TestErrorStringIncludesKindAndStatus(t *testing.T) {
	err := NewSuiteError(types.StatErrValue, "field %q", "bogus")
	require.Contains(t, err.Error(), "kOfxStatErrValue")
	require.Contains(t, err.Error(), `field "bogus"`)
}

func TestValidationErrorCollectsIssues(t *testing.T) {
	ve := NewValidationError("OfxImageEffectActionRender")
	require.False(t, ve.HasIssues())

	ve.AppendIssue("inArgs", "OfxPropTime", ValidationLevelError, "property is unknown to the host")
	other := NewValidationError("other")
	other.AppendIssue("outArgs", "OfxPropName", ValidationLevelWarning, "expected dimension %d got %d", 1, 0)
	ve.Merge(other)

	require.True(t, ve.HasIssues())
	require.Len(t, ve.Issues, 2)
	require.Contains(t, ve.Error(), "found 2 issue(s)")
	require.Contains(t, ve.Error(), "[error] inArgs.OfxPropTime")
}

func TestConfigFileErrorFromDiagsUsesFirstError(t *testing.T) {
	diags := hcl.Diagnostics{
		{Severity: hcl.DiagWarning, Summary: "ignored"},
		{
			Severity: hcl.DiagError,
			Summary:  "Unsupported argument",
			Detail:   `An argument named "bogus" is not expected here.`,
			Subject:  &hcl.Range{Start: hcl.Pos{Line: 3, Column: 5}},
		},
	}

	ce := NewConfigFileErrorFromHCLDiags(diags, "host.hcl")
	require.NotNil(t, ce)
	require.Equal(t, 3, ce.Line)
	require.Contains(t, ce.Error(), "host.hcl:3,5")
	require.Contains(t, ce.Error(), "Unsupported argument")

	require.Nil(t, NewConfigFileErrorFromHCLDiags(hcl.Diagnostics{}, "host.hcl"))
}
