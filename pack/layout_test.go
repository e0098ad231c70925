package pack_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/calebcase/bitfield/field"
	"github.com/calebcase/bitfield/pack"
)

const base64Table = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// encodeBase64 regroups every three 8 bit bytes into four 6 bit symbols.
func encodeBase64(s string) string {
	src := []byte(s + "\x00\x00")
	sb := &strings.Builder{}

	a, b, c, d := field.Uint(6, 0), field.Uint(6, 0), field.Uint(6, 0), field.Uint(6, 0)

	for i := 0; i < len(s); i += 3 {
		dst := pack.Compose(a, b, c, d)
		pack.Assign(dst, pack.Compose(
			field.Uint(8, uint64(src[i])),
			field.Uint(8, uint64(src[i+1])),
			field.Uint(8, uint64(src[i+2])),
		))
		dst.Release()

		for _, f := range []*field.Field{a, b, c, d} {
			sb.WriteByte(base64Table[f.Uint()])
		}
	}

	out := []byte(sb.String())
	for i := 0; i < (3-len(s)%3)%3; i++ {
		out[len(out)-1-i] = '='
	}

	return string(out)
}

// decodeBase64 regroups every four 6 bit symbols into three 8 bit bytes.
func decodeBase64(s string) string {
	s = strings.TrimRight(s, "=")
	sb := &strings.Builder{}

	r1, r2, r3 := field.Uint(8, 0), field.Uint(8, 0), field.Uint(8, 0)

	symbol := func(i int) *field.Field {
		if i >= len(s) {
			return field.Uint(6, 0)
		}

		return field.Uint(6, uint64(strings.IndexByte(base64Table, s[i])))
	}

	for i := 0; i < len(s); i += 4 {
		dst := pack.Compose(r1, r2, r3)
		pack.Assign(dst, pack.Compose(symbol(i), symbol(i+1), symbol(i+2), symbol(i+3)))
		dst.Release()

		n := (len(s) - i) * 6 / 8
		if n > 3 {
			n = 3
		}

		for _, f := range []*field.Field{r1, r2, r3}[:n] {
			sb.WriteByte(byte(f.Uint()))
		}
	}

	return sb.String()
}

func TestBase64(t *testing.T) {
	type TC struct {
		plain   string
		encoded string
	}

	tcs := []TC{
		{plain: "", encoded: ""},
		{plain: "M", encoded: "TQ=="},
		{plain: "Ma", encoded: "TWE="},
		{plain: "Man", encoded: "TWFu"},
		{plain: "pleasure.", encoded: "cGxlYXN1cmUu"},
		{plain: "leasure.", encoded: "bGVhc3VyZS4="},
		{plain: "easure.", encoded: "ZWFzdXJlLg=="},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%q", tc.plain), func(t *testing.T) {
			require.Equal(t, tc.encoded, encodeBase64(tc.plain))
			require.Equal(t, tc.plain, decodeBase64(tc.encoded))
		})
	}
}

func makeRGB555(r, g, b uint64) uint64 {
	return pack.Read(field.Uint(5, r), field.Uint(5, g), field.Uint(5, b))
}

func makeRGB565(r, g, b uint64) uint64 {
	return pack.Read(field.Uint(5, r), field.Uint(6, g), field.Uint(5, b))
}

func makeRGB888(r, g, b uint64) uint64 {
	return pack.Read(field.Uint(8, r), field.Uint(8, g), field.Uint(8, b))
}

func rgb555to888(rgb uint64) uint64 {
	r, g, b := field.Uint(5, 0), field.Uint(5, 0), field.Uint(5, 0)
	pack.Write(rgb, r, g, b)

	return pack.Read(r, pack.Reserve(3), g, pack.Reserve(3), b, pack.Reserve(3))
}

func rgb565to888(rgb uint64) uint64 {
	r, g, b := field.Uint(5, 0), field.Uint(6, 0), field.Uint(5, 0)
	pack.Write(rgb, r, g, b)

	return pack.Read(r, pack.Reserve(3), g, pack.Reserve(2), b, pack.Reserve(3))
}

func rgb888to565(rgb uint64) uint64 {
	r, g, b := field.Uint(5, 0), field.Uint(6, 0), field.Uint(5, 0)
	pack.Write(rgb, r, pack.Reserve(3), g, pack.Reserve(2), b, pack.Reserve(3))

	return pack.Read(r, g, b)
}

func rgb888to555(rgb uint64) uint64 {
	r, g, b := field.Uint(5, 0), field.Uint(5, 0), field.Uint(5, 0)
	pack.Write(rgb, r, pack.Reserve(3), g, pack.Reserve(3), b, pack.Reserve(3))

	return pack.Read(r, g, b)
}

func rgb565to555(rgb uint64) uint64 {
	r, g, b := field.Uint(5, 0), field.Uint(5, 0), field.Uint(5, 0)
	pack.Write(rgb, r, g, pack.Reserve(1), b)

	return pack.Read(r, g, b)
}

func TestRGB(t *testing.T) {
	t.Run("make", func(t *testing.T) {
		require.Equal(t, uint64(0x14a5), makeRGB555(5, 5, 5))
		require.Equal(t, uint64(0b10101_110011_01110), makeRGB565(21, 51, 14))
		require.Equal(t, uint64(0x12_34_56), makeRGB888(0x12, 0x34, 0x56))
		require.Equal(t, uint64(0x7fff), makeRGB555(0xff, 0xff, 0xff))
	})

	t.Run("split", func(t *testing.T) {
		r, g, b := field.Uint(5, 0), field.Uint(5, 0), field.Uint(5, 0)
		pack.Write(0x14a5, r, g, b)

		require.Equal(t, uint64(5), r.Uint())
		require.Equal(t, uint64(5), g.Uint())
		require.Equal(t, uint64(5), b.Uint())
	})

	t.Run("convert", func(t *testing.T) {
		rgb565 := makeRGB565(21, 51, 14)

		rgb888 := rgb565to888(rgb565)
		require.Equal(t, makeRGB888(21<<3, 51<<2, 14<<3), rgb888)
		require.Equal(t, rgb565, rgb888to565(rgb888))

		rgb555 := makeRGB555(21, 25, 14)
		require.Equal(t, makeRGB888(21<<3, 25<<3, 14<<3), rgb555to888(rgb555))
		require.Equal(t, rgb555, rgb888to555(rgb555to888(rgb555)))

		require.Equal(t, uint64(0xffff), rgb888to565(0xff_ff_ff))
		require.Equal(t, uint64(0x7fff), rgb888to555(0xff_ff_ff))
		require.Equal(t, makeRGB555(21, 25, 14), rgb565to555(makeRGB565(21, 50, 14)))
	})
}

func TestAssign(t *testing.T) {
	t.Run("different boundaries", func(t *testing.T) {
		x, y := field.Int(3, 0), field.Int(5, 0)
		src := pack.Compose(field.Uint(4, 0b1011), field.Uint(4, 0b0110))
		dst := pack.Compose(x, y)

		pack.Assign(dst, src)
		require.Equal(t, int64(-3), x.Int())
		require.Equal(t, int64(-10), y.Int())
		require.Equal(t, uint64(0b1011_0110), dst.Sequence())
	})

	t.Run("wide", func(t *testing.T) {
		hi, lo := field.Uint(50, 0), field.Uint(50, 0)
		src := pack.Compose(field.Uint(36, 0xf_0000_0001), field.Uint(64, 0x8000_0000_0000_0002))

		pack.Assign(pack.Compose(hi, lo), src)
		require.Equal(t, uint64(0x3c00_0000_6000), hi.Uint())
		require.Equal(t, uint64(0x2), lo.Uint())
	})

	t.Run("exact", func(t *testing.T) {
		a, b := field.Uint(4, 0), field.Uint(4, 0)

		err := pack.AssignExact(pack.Compose(a, b), pack.Compose(field.Uint(8, 0xc3)))
		require.NoError(t, err)
		require.Equal(t, uint64(0xc), a.Uint())
		require.Equal(t, uint64(0x3), b.Uint())

		err = pack.AssignExact(pack.Compose(a, b), pack.Compose(field.Uint(9, 0)))
		require.Error(t, err)
		require.True(t, pack.WidthError.Has(err))
		require.Equal(t, uint64(0xc), a.Uint())
	})

	t.Run("permissive", func(t *testing.T) {
		a, b := field.Uint(4, 0), field.Uint(4, 0)

		pack.Assign(pack.Compose(a, b), field.Uint(12, 0xabc))
		require.Equal(t, uint64(0xb), a.Uint())
		require.Equal(t, uint64(0xc), b.Uint())

		pack.Assign(pack.Compose(a, b), field.Uint(4, 0x7))
		require.Equal(t, uint64(0x0), a.Uint())
		require.Equal(t, uint64(0x7), b.Uint())
	})
}
