package hexd

import (
	"testing"

	"github.com/joshuapare/hexkit/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRange_AlignedStart(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 32})
	want := "" +
		"00000000:                  00 0000 0000 0000 0000 |       .........|\n" +
		"00000010: 0000 0000 0000 0000 0000 0000 0000 0000 |................|\n"
	require.Equal(t, want, Bytes(data).RangeFrom(7).String())
}

func TestRange_UnalignedStart(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 32})
	want := "" +
		"00000007: 0000 0000 0000 0000 0000 0000 0000 0000 |................|\n" +
		"00000017: 0000 0000 0000 0000 00                  |.........       |\n"
	require.Equal(t, want, Bytes(data).RangeFrom(7).Aligned(false).String())
}

func TestRange_Window(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 256})
	want := "" +
		"00000040:                  00 0000 0000 0000 0000 |       .........|\n" +
		"00000050: 0000 0000 0000 0000 0000 0000 0000 0000 |................|\n" +
		"*\n" +
		"000000A0: 0000 0000 0000 0000 0000 0000 0000 0000 |................|\n" +
		"000000B0: 0000 00                                 |...             |\n"
	require.Equal(t, want, Bytes(data).Range(0x47, 0xB3).String())
}

func TestRange_StartAndEndPadding(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 32})
	want := "" +
		"00000000:        00 0000 0000 0000 0000 0000 0000 |   .............|\n" +
		"00000010: 0000 0000 0000 0000 0000 0000 00        |.............   |\n"
	require.Equal(t, want, Bytes(data).Range(3, 29).String())
}

func TestRange_SingleLineWindow(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 32})
	want := "00000000:        00 0000 0000 0000 0000 00        |   ..........   |\n"
	require.Equal(t, want, Bytes(data).Range(3, 13).String())
}

func TestRange_PastEnd(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 16})
	require.Equal(t, "", Bytes(data).RangeFrom(16).String())
	require.Equal(t, "", Bytes(data).RangeFrom(100).String())
}

func TestRange_LimitPastEnd(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 32})
	want := "00000010:        00 0000 0000 0000 0000 0000 0000 |   .............|\n"
	require.Equal(t, want, Bytes(data).Range(19, 48).String())
}

func TestOffset_RelativeBias(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 256})
	want := "" +
		"0FFF0040:                  00 0000 0000 0000 0000 |       .........|\n" +
		"0FFF0050: 0000 0000 0000 0000 0000 0000 0000 0000 |................|\n" +
		"*\n" +
		"0FFF00A0: 0000 0000 0000 0000 0000 0000 0000 0000 |................|\n" +
		"0FFF00B0: 0000 00                                 |...             |\n"
	out := Bytes(data).Range(0x47, 0xB3).RelativeOffset(0xFFF0000).String()
	require.Equal(t, want, out)
}

func TestOffset_Absolute(t *testing.T) {
	data := testutil.Repeat(testutil.Run{B: 0, N: 64})
	want := "" +
		"0000201B: 0000 0000 0000 0000 0000 0000 0000 0000 |................|\n" +
		"*\n" +
		"0000204B: 0000 0000 0000 0000 0000 0000 0000 0000 |................|\n"
	require.Equal(t, want, Bytes(data).AbsoluteOffset(0x201B).String())
}

func TestOffset_WidensForLargeBias(t *testing.T) {
	// A bias past 32 bits pushes the fitted offset column to ten digits.
	data := testutil.Repeat(testutil.Run{B: 0xFF, N: 16})
	want := "0100000000: FFFF FFFF FFFF FFFF FFFF FFFF FFFF FFFF |................|\n"
	out := Bytes(data).RelativeOffset(0x100000000).String()
	require.Equal(t, want, out)
}
