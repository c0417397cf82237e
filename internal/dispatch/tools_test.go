package dispatch

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dotquad/ipcalc-service/internal/core/model"
)

type mockAnalyzer struct {
	mock.Mock
}

func (ma *mockAnalyzer) FullReport(cidr string, showAllIPs bool) (*model.NetworkReport, *model.ParseError) {
	args := ma.Called(cidr, showAllIPs)
	report, _ := args.Get(0).(*model.NetworkReport)
	perr, _ := args.Get(1).(*model.ParseError)
	return report, perr
}

func (ma *mockAnalyzer) Summary(cidr string) (*model.SummaryReport, *model.ParseError) {
	args := ma.Called(cidr)
	summary, _ := args.Get(0).(*model.SummaryReport)
	perr, _ := args.Get(1).(*model.ParseError)
	return summary, perr
}

func (ma *mockAnalyzer) Validate(input string) *model.ValidationReport {
	args := ma.Called(input)
	return args.Get(0).(*model.ValidationReport)
}

func newToolRegistry(t *testing.T, analyzer *mockAnalyzer) *Registry {
	t.Helper()
	registry := NewRegistry()
	require.NoError(t, RegisterNetworkTools(registry, analyzer))
	return registry
}

func TestRegisterNetworkTools_Names(t *testing.T) {
	registry := newToolRegistry(t, &mockAnalyzer{})

	for _, name := range []string{"get_ip_range", "get_ip_range_summary", "validate_ip"} {
		tool, found := registry.Get(name)
		require.True(t, found, name)
		require.NotEmpty(t, tool.Description)
		require.Equal(t, "object", tool.InputSchema.Type)
		require.NotEmpty(t, tool.InputSchema.Required)
	}
}

func TestGetIPRangeTool(t *testing.T) {
	analyzer := &mockAnalyzer{}
	registry := newToolRegistry(t, analyzer)
	tool, _ := registry.Get("get_ip_range")

	t.Run("success", func(t *testing.T) {
		expected := &model.NetworkReport{Input: "192.168.1.0/24"}
		analyzer.On("FullReport", "192.168.1.0/24", true).Return(expected, nil).Once()

		document, isError, err := tool.Handler(map[string]any{
			"ip_with_cidr": "192.168.1.0/24",
			"show_all_ips": true,
		})
		require.NoError(t, err)
		require.False(t, isError)
		require.Equal(t, expected, document)
	})

	t.Run("show_all_ips defaults to false", func(t *testing.T) {
		analyzer.On("FullReport", "10.0.0.0/8", false).Return(&model.NetworkReport{}, nil).Once()

		_, _, err := tool.Handler(map[string]any{"ip_with_cidr": "10.0.0.0/8"})
		require.NoError(t, err)
	})

	t.Run("string boolean accepted", func(t *testing.T) {
		analyzer.On("FullReport", "10.0.0.0/8", true).Return(&model.NetworkReport{}, nil).Once()

		_, _, err := tool.Handler(map[string]any{"ip_with_cidr": "10.0.0.0/8", "show_all_ips": "true"})
		require.NoError(t, err)
	})

	t.Run("parse failure becomes error document", func(t *testing.T) {
		perr := &model.ParseError{Kind: model.KindInvalidPrefix, Detail: "33", Input: "10.0.0.0/33"}
		analyzer.On("FullReport", "10.0.0.0/33", false).Return(nil, perr).Once()

		document, isError, err := tool.Handler(map[string]any{"ip_with_cidr": "10.0.0.0/33"})
		require.NoError(t, err)
		require.True(t, isError)

		errDoc := document.(*model.ErrorDocument)
		require.Equal(t, model.KindInvalidPrefix, errDoc.Error)
		require.Equal(t, "10.0.0.0/33", errDoc.Input)
		require.Equal(t, model.ValidExamples, errDoc.ValidExamples)
	})

	t.Run("missing required argument", func(t *testing.T) {
		_, _, err := tool.Handler(map[string]any{})
		require.ErrorIs(t, err, ErrBadArgument)
	})

	t.Run("mistyped argument", func(t *testing.T) {
		_, _, err := tool.Handler(map[string]any{"ip_with_cidr": 42})
		require.ErrorIs(t, err, ErrBadArgument)
	})

	t.Run("mistyped boolean", func(t *testing.T) {
		_, _, err := tool.Handler(map[string]any{"ip_with_cidr": "10.0.0.0/8", "show_all_ips": "yes"})
		require.ErrorIs(t, err, ErrBadArgument)
	})

	analyzer.AssertExpectations(t)
}

func TestGetIPRangeSummaryTool(t *testing.T) {
	analyzer := &mockAnalyzer{}
	registry := newToolRegistry(t, analyzer)
	tool, _ := registry.Get("get_ip_range_summary")

	expected := &model.SummaryReport{Input: "192.168.1.0/24", Network: "192.168.1.0"}
	analyzer.On("Summary", "192.168.1.0/24").Return(expected, nil).Once()

	document, isError, err := tool.Handler(map[string]any{"ip_with_cidr": "192.168.1.0/24"})
	require.NoError(t, err)
	require.False(t, isError)
	require.Equal(t, expected, document)

	analyzer.AssertExpectations(t)
}

func TestValidateIPTool_NeverSetsErrorFlag(t *testing.T) {
	analyzer := &mockAnalyzer{}
	registry := newToolRegistry(t, analyzer)
	tool, _ := registry.Get("validate_ip")

	invalid := &model.ValidationReport{Valid: false, Input: "garbage"}
	analyzer.On("Validate", "garbage").Return(invalid).Once()

	document, isError, err := tool.Handler(map[string]any{"address": "garbage"})
	require.NoError(t, err)
	require.False(t, isError)
	require.Equal(t, invalid, document)

	analyzer.AssertExpectations(t)
}
