package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddrRenderings(t *testing.T) {
	testCases := []struct {
		name      string
		addr      Addr
		expDotted string
		expBinary string
		expHex    string
	}{
		{
			name:      "192.168.1.0",
			addr:      AddrFrom4(192, 168, 1, 0),
			expDotted: "192.168.1.0",
			expBinary: "11000000.10101000.00000001.00000000",
			expHex:    "0xC0A80100",
		},
		{
			name:      "0.0.0.0",
			addr:      AddrFrom4(0, 0, 0, 0),
			expDotted: "0.0.0.0",
			expBinary: "00000000.00000000.00000000.00000000",
			expHex:    "0x00000000",
		},
		{
			name:      "255.255.255.255",
			addr:      AddrFrom4(255, 255, 255, 255),
			expDotted: "255.255.255.255",
			expBinary: "11111111.11111111.11111111.11111111",
			expHex:    "0xFFFFFFFF",
		},
		{
			name:      "8.8.8.8",
			addr:      AddrFrom4(8, 8, 8, 8),
			expDotted: "8.8.8.8",
			expBinary: "00001000.00001000.00001000.00001000",
			expHex:    "0x08080808",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.expDotted, tc.addr.String())
			require.Equal(t, tc.expBinary, tc.addr.Binary())
			require.Equal(t, tc.expHex, tc.addr.Hex())
		})
	}
}

func TestAddrOctets(t *testing.T) {
	addr := AddrFrom4(10, 20, 30, 40)
	require.Equal(t, [4]byte{10, 20, 30, 40}, addr.Octets())
	require.Equal(t, "10.20.30.40", addr.Netip().String())
}
