package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dotquad/ipcalc-service/internal/core/model"
)

func TestAnalyzer_FullReport(t *testing.T) {
	analyzer := New()

	report, perr := analyzer.FullReport("192.168.1.0/24", false)
	require.Nil(t, perr)

	require.Equal(t, "192.168.1.0/24", report.Input)
	require.Equal(t, "192.168.1.0", report.NetworkInfo.NetworkAddress)
	require.Equal(t, "192.168.1.255", report.NetworkInfo.BroadcastAddress)
	require.Equal(t, "255.255.255.0", report.NetworkInfo.Netmask)
	require.Equal(t, "0.0.0.255", report.NetworkInfo.Hostmask)
	require.Equal(t, "/24", report.NetworkInfo.CIDRNotation)
	require.Equal(t, uint8(24), report.NetworkInfo.PrefixLength)
	require.Equal(t, uint64(256), report.NetworkInfo.TotalAddresses)

	require.Equal(t, "192.168.1.1", report.UsableIPRange.FirstUsableIP)
	require.Equal(t, "192.168.1.254", report.UsableIPRange.LastUsableIP)
	require.Equal(t, uint64(254), report.UsableIPRange.TotalUsableIPs)
	require.Equal(t, 99.22, report.UsableIPRange.UsablePercent)

	require.Equal(t, "C", report.Classification.NetworkClass)
	require.Equal(t, "small network", report.Classification.NetworkType)
	require.True(t, report.Classification.IsPrivate)
	require.False(t, report.Classification.IsGlobal)

	require.Equal(t, "11000000.10101000.00000001.00000000", report.Representations.Binary.NetworkAddress)
	require.Equal(t, "11111111.11111111.11111111.00000000", report.Representations.Binary.Netmask)
	require.Equal(t, "0xC0A801FF", report.Representations.Hex.BroadcastAddress)

	require.Len(t, report.Subnetting, 4)
	require.Equal(t, uint8(25), report.Subnetting[0].PrefixLen)
	require.Equal(t, "campus network", report.Recommendation.PrimaryUse)

	require.Equal(t, "preview", report.UsableAddresses.Included)
	require.Len(t, report.UsableAddresses.Addresses, 10)
}

func TestAnalyzer_FullReport_NormalizesHostBits(t *testing.T) {
	analyzer := New()

	report, perr := analyzer.FullReport("10.0.0.5/8", false)
	require.Nil(t, perr)

	require.Equal(t, "10.0.0.5/8", report.Input)
	require.Equal(t, "10.0.0.0", report.NetworkInfo.NetworkAddress)
	require.Equal(t, "A", report.Classification.NetworkClass)
	require.True(t, report.Classification.IsPrivate)
}

func TestAnalyzer_FullReport_DegeneratePrefixes(t *testing.T) {
	analyzer := New()

	p2p, perr := analyzer.FullReport("192.168.1.4/31", true)
	require.Nil(t, perr)
	require.Equal(t, "192.168.1.4", p2p.UsableIPRange.FirstUsableIP)
	require.Equal(t, "192.168.1.5", p2p.UsableIPRange.LastUsableIP)
	require.Equal(t, uint64(2), p2p.UsableIPRange.TotalUsableIPs)
	require.Empty(t, p2p.Subnetting)
	require.Equal(t, "point-to-point link", p2p.Recommendation.PrimaryUse)

	host, perr := analyzer.FullReport("192.168.1.7/32", true)
	require.Nil(t, perr)
	require.Equal(t, "192.168.1.7", host.UsableIPRange.FirstUsableIP)
	require.Equal(t, "192.168.1.7", host.UsableIPRange.LastUsableIP)
	require.Equal(t, uint64(1), host.UsableIPRange.TotalUsableIPs)
	require.Equal(t, host.NetworkInfo.NetworkAddress, host.NetworkInfo.BroadcastAddress)
	require.Equal(t, []string{"192.168.1.7"}, host.UsableAddresses.Addresses)
}

func TestAnalyzer_FullReport_Errors(t *testing.T) {
	analyzer := New()

	testCases := []struct {
		name    string
		input   string
		expKind string
	}{
		{name: "octet out of range", input: "192.168.1.256/24", expKind: model.KindOutOfRangeOctet},
		{name: "prefix out of range", input: "10.0.0.0/33", expKind: model.KindInvalidPrefix},
		{name: "garbage", input: "hello", expKind: model.KindInvalidFormat},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			report, perr := analyzer.FullReport(tc.input, false)
			require.Nil(t, report)
			require.NotNil(t, perr)
			require.Equal(t, tc.expKind, perr.Kind)
			require.Equal(t, tc.input, perr.Input)
		})
	}
}

func TestAnalyzer_Summary(t *testing.T) {
	analyzer := New()

	summary, perr := analyzer.Summary("192.168.1.0/24")
	require.Nil(t, perr)

	require.Equal(t, "192.168.1.0", summary.Network)
	require.Equal(t, "255.255.255.0", summary.Netmask)
	require.Equal(t, "/24", summary.CIDR)
	require.Equal(t, "192.168.1.1 - 192.168.1.254", summary.UsableRange)
	require.Equal(t, uint64(256), summary.TotalIPs)
	require.Equal(t, uint64(254), summary.UsableIPs)
	require.Equal(t, "192.168.1.255", summary.Broadcast)
	require.Equal(t, "C", summary.NetworkClass)
	require.True(t, summary.IsPrivate)
	require.False(t, summary.IsGlobal)
}

func TestAnalyzer_Summary_Error(t *testing.T) {
	analyzer := New()

	summary, perr := analyzer.Summary("not-a-network")
	require.Nil(t, summary)
	require.NotNil(t, perr)
	require.Equal(t, model.KindInvalidFormat, perr.Kind)
}

func TestAnalyzer_Validate_SingleAddress(t *testing.T) {
	analyzer := New()

	report := analyzer.Validate("8.8.8.8")
	require.True(t, report.Valid)
	require.Equal(t, "address", report.Kind)
	require.Equal(t, 4, report.Version)
	require.Equal(t, "8.8.8.8", report.Address.Dotted)
	require.Equal(t, uint32(0x08080808), report.Address.Decimal)
	require.Equal(t, "00001000.00001000.00001000.00001000", report.Address.Binary)
	require.Equal(t, "0x08080808", report.Address.Hex)
	require.True(t, report.Flags.IsGlobal)
	require.False(t, report.Flags.IsPrivate)
	require.Nil(t, report.Network)
	require.Nil(t, report.Error)
}

func TestAnalyzer_Validate_Network(t *testing.T) {
	analyzer := New()

	report := analyzer.Validate("192.168.1.100/28")
	require.True(t, report.Valid)
	require.Equal(t, "network", report.Kind)
	require.Nil(t, report.Address)
	require.Equal(t, "192.168.1.96", report.Network.Network)
	require.Equal(t, "192.168.1.96/28", report.Network.CIDR)
	require.Equal(t, "192.168.1.111", report.Network.Broadcast)
	require.Equal(t, uint64(14), report.Network.UsableIPs)
	require.True(t, report.Network.IsPrivate)
}

func TestAnalyzer_Validate_Invalid(t *testing.T) {
	analyzer := New()

	report := analyzer.Validate("999.1.2.3")
	require.False(t, report.Valid)
	require.Equal(t, "999.1.2.3", report.Input)
	require.NotNil(t, report.Error)
	require.Equal(t, model.KindOutOfRangeOctet, report.Error.Kind)
	require.NotEmpty(t, report.Error.Message)
	require.Equal(t, model.ValidExamples, report.Suggestions)
}
