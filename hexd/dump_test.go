package hexd

import (
	"strings"
	"testing"

	"github.com/joshuapare/hexkit/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestDump_Default(t *testing.T) {
	data := []byte("Hello, world! Hopefully you're seeing this in hexd...")
	want := "" +
		"00000000: 4865 6C6C 6F2C 2077 6F72 6C64 2120 486F |Hello, world! Ho|\n" +
		"00000010: 7065 6675 6C6C 7920 796F 7527 7265 2073 |pefully you're s|\n" +
		"00000020: 6565 696E 6720 7468 6973 2069 6E20 6865 |eeing this in he|\n" +
		"00000030: 7864 2E2E 2E                            |xd...           |\n"
	require.Equal(t, want, Bytes(data).String())
}

func TestDump_SingleLine(t *testing.T) {
	data := make([]byte, 0, 16)
	for i := 0; i < 8; i++ {
		data = append(data, 0x20, 0x61)
	}
	want := "00000000: 2061 2061 2061 2061 2061 2061 2061 2061 | a a a a a a a a|\n"
	require.Equal(t, want, Bytes(data).String())
}

func TestDump_EmptyInput(t *testing.T) {
	require.Equal(t, "", Bytes(nil).String())
	require.Equal(t, "", Bytes([]byte{}).String())
	require.Empty(t, Bytes(nil).Lines())
}

func TestDump_Lowercase(t *testing.T) {
	out := Bytes([]byte{0xAB, 0xCD}).Uppercase(false).String()
	require.Equal(t, "00000000: abcd                                    |..              |\n", out)
}

func TestDump_Grouping(t *testing.T) {
	zeros := testutil.Repeat(testutil.Run{B: 0, N: 16})

	t.Run("ungrouped no spacing", func(t *testing.T) {
		want := "" +
			"00000000: 00000000 |....|\n" +
			"00000004: 00000000 |....|\n" +
			"00000008: 00000000 |....|\n" +
			"0000000C: 00000000 |....|\n"
		out := Bytes(zeros).Autoskip(false).Ungrouped(4, SpacingNone).String()
		require.Equal(t, want, out)
	})

	t.Run("ungrouped wide spacing", func(t *testing.T) {
		want := "" +
			"00000000: 00  00  00  00  |....|\n" +
			"00000004: 00  00  00  00  |....|\n" +
			"00000008: 00  00  00  00  |....|\n" +
			"0000000C: 00  00  00  00  |....|\n"
		out := Bytes(zeros).Autoskip(false).Ungrouped(4, SpacingWide).String()
		require.Equal(t, want, out)
	})

	t.Run("grouped with inner spacing", func(t *testing.T) {
		want := "" +
			"00000000: 00 00  00 00  00 00  00 00  |........|\n" +
			"00000008: 00 00  00 00  00 00  00 00  |........|\n"
		out := Bytes(zeros).Autoskip(false).
			Grouped(GroupShort, SpacingNormal, 4, SpacingWide).String()
		require.Equal(t, want, out)
	})

	t.Run("grouped inner spacing only", func(t *testing.T) {
		want := "" +
			"00000000: 00 0000 0000 0000 00 |........|\n" +
			"00000008: 00 0000 0000 0000 00 |........|\n"
		out := Bytes(zeros).Autoskip(false).
			Grouped(GroupShort, SpacingNormal, 4, SpacingNone).String()
		require.Equal(t, want, out)
	})
}

func TestDump_ShowToggles(t *testing.T) {
	zeros := testutil.Repeat(testutil.Run{B: 0, N: 32})

	t.Run("body only", func(t *testing.T) {
		want := "" +
			"0000 0000 0000 0000 0000 0000 0000 0000\n" +
			"0000 0000 0000 0000 0000 0000 0000 0000\n"
		out := Bytes(zeros).ShowOffset(false).ShowAscii(false).String()
		require.Equal(t, want, out)
	})

	t.Run("no sidebar", func(t *testing.T) {
		want := "" +
			"00000000: 0000 0000 0000 0000 0000 0000 0000 0000\n" +
			"00000010: 0000 0000 0000 0000 0000 0000 0000 0000\n"
		require.Equal(t, want, Bytes(zeros).ShowAscii(false).String())
	})

	t.Run("no offset", func(t *testing.T) {
		want := "" +
			"0000 0000 0000 0000 0000 0000 0000 0000 |................|\n" +
			"0000 0000 0000 0000 0000 0000 0000 0000 |................|\n"
		require.Equal(t, want, Bytes(zeros).ShowOffset(false).String())
	})
}

func TestDump_Substitute(t *testing.T) {
	out := Bytes([]byte{0x00, 0x41}).Substitute('?').String()
	require.Equal(t, "00000000: 0041                                    |?A              |\n", out)
}

func TestDump_Lines(t *testing.T) {
	zeros := testutil.Repeat(testutil.Run{B: 0, N: 32})
	lines := Bytes(zeros).Lines()
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.False(t, strings.HasSuffix(line, "\n"))
		require.Len(t, line, len(lines[0]), "all lines render to the same width")
	}
}

func TestDump_BytesMatchesString(t *testing.T) {
	data := testutil.Ascending(0, 48)
	require.Equal(t, Bytes(data).String(), string(Bytes(data).Bytes()))
}

func TestDump_LineCount(t *testing.T) {
	for _, n := range []int{1, 15, 16, 17, 31, 32, 100} {
		data := testutil.Ascending(1, n)
		lines := Bytes(data).Lines()
		want := (n + 15) / 16
		require.Len(t, lines, want, "input length %d", n)
	}
}

func TestDump_InvalidOptionsPanics(t *testing.T) {
	require.Panics(t, func() {
		_ = Bytes([]byte{1}).Grouping(Grouping{}).String()
	})
}

func TestDump_OptionsReplace(t *testing.T) {
	opts := DefaultOptions()
	opts.ShowAscii = false
	opts.Autoskip = false
	data := testutil.Repeat(testutil.Run{B: 0xFF, N: 16})
	out := Bytes(data).Options(opts).String()
	require.Equal(t, "00000000: FFFF FFFF FFFF FFFF FFFF FFFF FFFF FFFF\n", out)
}
