package abspath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("accepts fully qualified paths", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
			style Style
		}{
			{"posix root", "/", Posix},
			{"posix path", "/work/proj", Posix},
			{"posix trailing separator", "/work/proj/", Posix},
			{"windows drive root", `C:\`, Windows},
			{"windows drive path", `C:\work\proj`, Windows},
			{"windows drive with forward slashes", `C:/work/proj`, Windows},
			{"windows unc", `\\server\share\dir`, Windows},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p, err := New(tc.input, tc.style)
				require.NoError(t, err)
				assert.Equal(t, tc.input, p.Value())
				assert.Equal(t, tc.input, p.Original())
				assert.Equal(t, tc.style, p.Style())
				assert.False(t, p.IsZero())
			})
		}
	})

	t.Run("rejects non-rooted input", func(t *testing.T) {
		cases := []struct {
			name  string
			input string
			style Style
			want  error
		}{
			{"empty posix", "", Posix, ErrEmpty},
			{"empty windows", "", Windows, ErrEmpty},
			{"relative posix", "out/a.o", Posix, ErrNotRooted},
			{"dot relative posix", "./out", Posix, ErrNotRooted},
			{"relative windows", `out\a.obj`, Windows, ErrNotRooted},
			{"drive-relative windows", "C:foo", Windows, ErrNotRooted},
			{"root-relative windows", `\foo`, Windows, ErrNotRooted},
			{"bare drive windows", "C:", Windows, ErrNotRooted},
			{"posix style rejects windows drive", `C:\work`, Posix, ErrNotRooted},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := New(tc.input, tc.style)
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestMustNew(t *testing.T) {
	assert.Panics(t, func() { MustNew("relative", Posix) })
	assert.NotPanics(t, func() { MustNew("/ok", Posix) })
}

func TestJoin(t *testing.T) {
	base := MustNew("/work/proj", Posix)

	t.Run("relative input combines with base", func(t *testing.T) {
		p, err := Join("out/a.o", base)
		require.NoError(t, err)
		assert.Equal(t, "/work/proj/out/a.o", p.Value())
		assert.Equal(t, "out/a.o", p.Original(), "Original must report the caller's input, not the combination")
	})

	t.Run("rooted input ignores base", func(t *testing.T) {
		p, err := Join("/abs/a.o", base)
		require.NoError(t, err)
		assert.Equal(t, "/abs/a.o", p.Value())
		assert.Equal(t, "/abs/a.o", p.Original())
	})

	t.Run("base with trailing separator adds no extra separator", func(t *testing.T) {
		p, err := Join("a.o", MustNew("/work/", Posix))
		require.NoError(t, err)
		assert.Equal(t, "/work/a.o", p.Value())
	})

	t.Run("combination is textual and never fails on odd characters", func(t *testing.T) {
		p, err := Join("a<b>|c", base)
		require.NoError(t, err)
		assert.Equal(t, "/work/proj/a<b>|c", p.Value())
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := Join("", base)
		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("zero base fails for relative input", func(t *testing.T) {
		_, err := Join("out/a.o", AbsolutePath{})
		assert.ErrorIs(t, err, ErrNotRooted)
	})

	t.Run("windows base", func(t *testing.T) {
		wb := MustNew(`C:\work\proj`, Windows)
		p, err := Join(`out\a.obj`, wb)
		require.NoError(t, err)
		assert.Equal(t, `C:\work\proj\out\a.obj`, p.Value())

		p, err = Join(`D:\elsewhere`, wb)
		require.NoError(t, err)
		assert.Equal(t, `D:\elsewhere`, p.Value())
	})
}

func TestEqual(t *testing.T) {
	t.Run("posix is case-sensitive", func(t *testing.T) {
		a := MustNew("/Foo", Posix)
		b := MustNew("/foo", Posix)
		assert.False(t, a.Equal(b))
		assert.True(t, a.Equal(MustNew("/Foo", Posix)))
	})

	t.Run("windows folds case", func(t *testing.T) {
		a := MustNew(`C:\FOO`, Windows)
		b := MustNew(`c:\foo`, Windows)
		assert.True(t, a.Equal(b))
	})

	t.Run("styles never compare equal", func(t *testing.T) {
		// "/x" is not valid Windows grammar, so cross a UNC-ish pair instead.
		a := MustNew("//server/share", Posix)
		b := MustNew("//server/share", Windows)
		assert.False(t, a.Equal(b))
	})

	t.Run("zero equals only zero", func(t *testing.T) {
		var zero AbsolutePath
		assert.True(t, zero.Equal(AbsolutePath{}))
		assert.False(t, zero.Equal(MustNew("/x", Posix)))
		assert.False(t, MustNew("/x", Posix).Equal(zero))
	})
}

func TestKeyConsistentWithEqual(t *testing.T) {
	pairs := [][2]AbsolutePath{
		{MustNew(`C:\FOO\bar`, Windows), MustNew(`c:\foo\BAR`, Windows)},
		{MustNew("/same", Posix), MustNew("/same", Posix)},
	}
	for _, pair := range pairs {
		require.True(t, pair[0].Equal(pair[1]))
		assert.Equal(t, pair[0].Key(), pair[1].Key(), "equal paths must produce equal keys")
	}

	a := MustNew("/Case", Posix)
	b := MustNew("/case", Posix)
	require.False(t, a.Equal(b))
	assert.NotEqual(t, a.Key(), b.Key())
}

func TestIsFullyQualified(t *testing.T) {
	assert.True(t, Posix.IsFullyQualified("/x"))
	assert.False(t, Posix.IsFullyQualified("x"))
	assert.False(t, Posix.IsFullyQualified(""))

	assert.True(t, Windows.IsFullyQualified(`C:\x`))
	assert.True(t, Windows.IsFullyQualified(`C:/x`))
	assert.True(t, Windows.IsFullyQualified(`\\server\share`))
	assert.False(t, Windows.IsFullyQualified("C:x"))
	assert.False(t, Windows.IsFullyQualified(`\x`))
	assert.False(t, Windows.IsFullyQualified("x"))
}
