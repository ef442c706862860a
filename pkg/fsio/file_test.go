package fsio

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestExists_BeforeAndAfterCreate(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			p := b.path("new.txt")
			require.False(t, Exists(b.fs, p))

			f, err := Create(b.fs, p)
			require.NoError(t, err)
			require.NoError(t, f.Close())

			assert.True(t, Exists(b.fs, p))
		})
	}
}

func TestExists_DirectoryIsNotAFile(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			assert.False(t, Exists(b.fs, b.root))
		})
	}
}

func TestWriteAllBytes_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"empty":  {},
		"binary": {0x00, 0xff, 0x10, 0x80, 0x0a, 0x0d},
		"text":   []byte("SELECT 1;\n"),
	}
	for _, b := range backends(t) {
		for name, payload := range payloads {
			t.Run(b.name+"/"+name, func(t *testing.T) {
				p := b.path(name + ".bin")
				require.NoError(t, WriteAllBytes(b.fs, p, payload))

				got, err := ReadAllBytes(b.fs, p)
				require.NoError(t, err)
				assert.Equal(t, payload, got)
			})
		}
	}
}

func TestWriteAllText_RoundTripPerEncoding(t *testing.T) {
	encodings := []struct {
		name string
		enc  encoding.Encoding
		text string
	}{
		{"utf-8", unicode.UTF8, "héllo wörld ✓"},
		{"utf-8-bom", unicode.UTF8BOM, "héllo wörld ✓"},
		{"utf-16le-bom", unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), "héllo wörld ✓"},
		{"utf-16be", unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), "héllo wörld ✓"},
		{"latin-1", charmap.ISO8859_1, "héllo wörld"},
	}
	for _, b := range backends(t) {
		for _, tc := range encodings {
			t.Run(b.name+"/"+tc.name, func(t *testing.T) {
				p := b.path(tc.name + ".txt")
				require.NoError(t, WriteAllText(b.fs, p, tc.text, WithEncoding(tc.enc)))

				got, err := ReadAllText(b.fs, p, WithEncoding(tc.enc))
				require.NoError(t, err)
				assert.Equal(t, tc.text, got)
			})
		}
	}
}

func TestWriteAllText_DefaultIsUTF8WithoutBOM(t *testing.T) {
	b := backends(t)[1]
	p := b.path("plain.txt")
	require.NoError(t, WriteAllText(b.fs, p, "é"))

	raw, err := ReadAllBytes(b.fs, p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xc3, 0xa9}, raw)
}

func TestReadAllText_HonoursByteOrderMark(t *testing.T) {
	b := backends(t)[1]
	p := b.path("bom.txt")
	require.NoError(t, WriteAllText(b.fs, p, "abc", WithEncoding(unicode.UTF16(unicode.LittleEndian, unicode.UseBOM))))

	got, err := ReadAllText(b.fs, p)
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
}

func TestAppendAllText_WritesByteOrderMarkOnce(t *testing.T) {
	b := backends(t)[1]
	p := b.path("append-bom.txt")
	require.NoError(t, AppendAllText(b.fs, p, "a", WithEncoding(unicode.UTF8BOM)))
	require.NoError(t, AppendAllText(b.fs, p, "b", WithEncoding(unicode.UTF8BOM)))

	raw, err := ReadAllBytes(b.fs, p)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xef, 0xbb, 0xbf, 'a', 'b'}, raw)
}

func TestAppendAllLines_Concatenates(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			p := b.path("lines.txt")
			first := []string{"one", "two"}
			second := []string{"", "three"}

			require.NoError(t, AppendAllLines(b.fs, p, first))
			require.NoError(t, AppendAllLines(b.fs, p, second))

			got, err := ReadAllLines(b.fs, p)
			require.NoError(t, err)
			assert.Equal(t, append(first, second...), got)
		})
	}
}

func TestWriteAllLines_Truncates(t *testing.T) {
	b := backends(t)[1]
	p := b.path("lines.txt")
	require.NoError(t, WriteAllLines(b.fs, p, []string{"a", "b", "c"}))
	require.NoError(t, WriteAllLines(b.fs, p, []string{"z"}))

	got, err := ReadAllText(b.fs, p)
	require.NoError(t, err)
	assert.Equal(t, "z"+NewLine, got)
}

func TestReadLines_SplitsOnLineFeedAndCRLF(t *testing.T) {
	b := backends(t)[1]
	p := writeFile(t, b, "mixed.txt", "a\r\nb\nc")

	got, err := ReadAllLines(b.fs, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestReadLines_StopsEarly(t *testing.T) {
	b := backends(t)[0]
	p := writeFile(t, b, "many.txt", "1\n2\n3\n4\n")

	var seen []string
	for line, err := range ReadLines(b.fs, p) {
		require.NoError(t, err)
		seen = append(seen, line)
		if len(seen) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"1", "2"}, seen)

	// The file was released on break and can be removed.
	require.NoError(t, Delete(b.fs, p))
}

func TestReadLines_MissingFileYieldsError(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			var errs []error
			for _, err := range ReadLines(b.fs, b.path("missing.txt")) {
				errs = append(errs, err)
			}
			require.Len(t, errs, 1)
			assert.True(t, IsNotExist(errs[0]))
		})
	}
}

func TestWriteLines_ConsumesSequence(t *testing.T) {
	b := backends(t)[1]
	p := b.path("seq.txt")
	seq := func(yield func(string) bool) {
		for _, s := range []string{"x", "y"} {
			if !yield(s) {
				return
			}
		}
	}
	require.NoError(t, WriteLines(b.fs, p, seq))
	require.NoError(t, AppendLines(b.fs, p, seq))

	got, err := ReadAllLines(b.fs, p)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "x", "y"}, got)
}

func TestCopy(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			src := writeFile(t, b, "src.txt", "payload")
			dst := b.path("dst.txt")

			require.NoError(t, Copy(b.fs, src, dst, false))
			got, err := ReadAllBytes(b.fs, dst)
			require.NoError(t, err)
			assert.Equal(t, "payload", string(got))

			err = Copy(b.fs, src, dst, false)
			require.Error(t, err)
			assert.True(t, IsExist(err), "got %v", err)

			require.NoError(t, WriteAllBytes(b.fs, src, []byte("v2")))
			require.NoError(t, Copy(b.fs, src, dst, true))
			got, err = ReadAllBytes(b.fs, dst)
			require.NoError(t, err)
			assert.Equal(t, "v2", string(got))
		})
	}
}

func TestCopy_KeepsPermissionBits(t *testing.T) {
	b := osBackend(t)
	src := writeFile(t, b, "src.sh", "#!/bin/sh\n")
	require.NoError(t, b.fs.Chmod(src, 0o750))
	dst := b.path("dst.sh")

	require.NoError(t, Copy(b.fs, src, dst, false))

	info, err := b.fs.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, 0o750, int(info.Mode().Perm()))
}

func TestCopy_SameFileIsRejected(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			src := writeFile(t, b, "self.txt", "keep me")

			err := Copy(b.fs, src, src, true)
			require.ErrorIs(t, err, ErrSameFile)

			got, err := ReadAllBytes(b.fs, src)
			require.NoError(t, err)
			assert.Equal(t, "keep me", string(got))
		})
	}
}

func TestCopy_DirectorySourceFails(t *testing.T) {
	b := osBackend(t)
	dst := b.path("dst")

	err := Copy(b.fs, b.root, dst, false)
	require.Error(t, err)
	assert.False(t, Exists(b.fs, dst))
}

func TestMove(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			src := writeFile(t, b, "a.txt", "moved")
			dst := b.path("b.txt")

			require.NoError(t, Move(b.fs, src, dst))
			assert.False(t, Exists(b.fs, src))
			got, err := ReadAllText(b.fs, dst)
			require.NoError(t, err)
			assert.Equal(t, "moved", got)
		})
	}
}

func TestMove_ExistingDestinationIsKept(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			src := writeFile(t, b, "a.txt", "src")
			dst := writeFile(t, b, "b.txt", "precious")

			err := Move(b.fs, src, dst)
			require.Error(t, err)
			assert.True(t, IsExist(err), "got %v", err)
			assert.Equal(t, KindAlreadyExists, Classify(err))

			got, err := ReadAllText(b.fs, dst)
			require.NoError(t, err)
			assert.Equal(t, "precious", got)
			assert.True(t, Exists(b.fs, src))
		})
	}
}

func TestMove_DirectorySourceIsWrongType(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			src := b.path("dir")
			require.NoError(t, b.fs.Mkdir(src, 0o755))

			err := Move(b.fs, src, b.path("elsewhere"))
			require.Error(t, err)
			assert.True(t, IsWrongType(err), "got %v", err)
			assert.True(t, NewDirectoryInfo(b.fs, src).Exists())
		})
	}
}

func TestMove_MissingSource(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			err := Move(b.fs, b.path("nope"), b.path("other"))
			assert.True(t, IsNotExist(err), "got %v", err)
		})
	}
}

func TestDelete(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			p := writeFile(t, b, "gone.txt", "x")
			require.NoError(t, Delete(b.fs, p))
			assert.False(t, Exists(b.fs, p))

			err := Delete(b.fs, p)
			assert.True(t, IsNotExist(err), "got %v", err)
		})
	}
}

func TestDelete_DirectoryIsWrongType(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			dir := b.path("empty")
			require.NoError(t, b.fs.Mkdir(dir, 0o755))

			err := Delete(b.fs, dir)
			require.Error(t, err)
			assert.True(t, IsWrongType(err), "got %v", err)
			assert.Equal(t, KindWrongType, Classify(err))
			assert.True(t, NewDirectoryInfo(b.fs, dir).Exists())
		})
	}
}

func TestOpen_Modes(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			p := writeFile(t, b, "modes.txt", "ab")

			_, err := Open(b.fs, p, ModeCreateNew)
			assert.True(t, IsExist(err), "CreateNew on existing file: %v", err)

			_, err = Open(b.fs, b.path("missing.txt"), ModeOpen)
			assert.True(t, IsNotExist(err), "Open on missing file: %v", err)

			_, err = Open(b.fs, b.path("missing.txt"), ModeTruncate)
			assert.True(t, IsNotExist(err), "Truncate on missing file: %v", err)

			f, err := Open(b.fs, p, ModeAppend)
			require.NoError(t, err)
			_, err = f.Write([]byte("cd"))
			require.NoError(t, err)
			require.NoError(t, f.Close())
			assertContent(t, b.fs, p, "abcd")

			f, err = Open(b.fs, p, ModeTruncate)
			require.NoError(t, err)
			require.NoError(t, f.Close())
			assertContent(t, b.fs, p, "")

			f, err = Open(b.fs, b.path("fresh.txt"), ModeOpenOrCreate, WithAccess(AccessWrite), WithShare(ShareRead))
			require.NoError(t, err)
			require.NoError(t, f.Close())
			assert.True(t, Exists(b.fs, b.path("fresh.txt")))

			f, err = Open(b.fs, p, ModeOpen, WithAccess(AccessRead))
			require.NoError(t, err)
			data, err := io.ReadAll(f)
			require.NoError(t, err)
			require.NoError(t, f.Close())
			assert.Empty(t, data)
		})
	}
}

func TestOpen_InvalidOptionsMakeNoCall(t *testing.T) {
	b := backends(t)[1]
	p := b.path("never.txt")

	_, err := Open(b.fs, p, ModeCreate, WithAccess(AccessRead))
	require.ErrorIs(t, err, ErrInvalidOpenOptions)
	assert.False(t, Exists(b.fs, p))
}

func TestOpenWrite_KeepsContent(t *testing.T) {
	b := backends(t)[0]
	p := writeFile(t, b, "ow.txt", "hello")

	f, err := OpenWrite(b.fs, p)
	require.NoError(t, err)
	_, err = f.Write([]byte("J"))
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assertContent(t, b.fs, p, "Jello")
}

func TestTextStreams(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			p := b.path("stream.txt")

			w, err := CreateText(b.fs, p)
			require.NoError(t, err)
			require.NoError(t, w.WriteLine("first"))
			require.NoError(t, w.Close())

			w, err = AppendText(b.fs, p)
			require.NoError(t, err)
			_, err = w.WriteString("second")
			require.NoError(t, err)
			require.NoError(t, w.Close())

			r, err := OpenText(b.fs, p)
			require.NoError(t, err)
			defer r.Close()

			line, err := r.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, "first", line)
			rest, err := r.ReadToEnd()
			require.NoError(t, err)
			assert.Equal(t, "second", rest)
			_, err = r.ReadLine()
			assert.ErrorIs(t, err, io.EOF)
		})
	}
}

func TestAttributes(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			p := writeFile(t, b, "plain.txt", "x")
			hidden := writeFile(t, b, ".hidden", "x")

			attrs, err := GetAttributes(b.fs, p)
			require.NoError(t, err)
			assert.Equal(t, Normal, attrs)

			attrs, err = GetAttributes(b.fs, hidden)
			require.NoError(t, err)
			assert.True(t, attrs.Has(Hidden))

			attrs, err = GetAttributes(b.fs, b.root)
			require.NoError(t, err)
			assert.True(t, attrs.Has(Directory))

			require.NoError(t, SetAttributes(b.fs, p, ReadOnly))
			attrs, err = GetAttributes(b.fs, p)
			require.NoError(t, err)
			assert.True(t, attrs.Has(ReadOnly))

			require.NoError(t, SetAttributes(b.fs, p, Normal))
			attrs, err = GetAttributes(b.fs, p)
			require.NoError(t, err)
			assert.False(t, attrs.Has(ReadOnly))

			_, err = GetAttributes(b.fs, b.path("missing"))
			assert.True(t, IsNotExist(err))
		})
	}
}

func TestLastWriteTime(t *testing.T) {
	stamp := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			p := writeFile(t, b, "stamped.txt", "x")

			require.NoError(t, SetLastWriteTimeUTC(b.fs, p, stamp))

			got, err := GetLastWriteTimeUTC(b.fs, p)
			require.NoError(t, err)
			assert.True(t, stamp.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())

			local, err := GetLastWriteTime(b.fs, p)
			require.NoError(t, err)
			assert.True(t, stamp.Equal(local))
			assert.Equal(t, time.Local, local.Location())
		})
	}
}

func TestLastAccessTime(t *testing.T) {
	b := osBackend(t)
	p := writeFile(t, b, "accessed.txt", "x")
	write := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	access := time.Date(2022, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, SetLastWriteTime(b.fs, p, write))
	require.NoError(t, SetLastAccessTime(b.fs, p, access))

	gotAccess, err := GetLastAccessTimeUTC(b.fs, p)
	require.NoError(t, err)
	assert.True(t, access.Equal(gotAccess), "access = %v", gotAccess)

	gotLocal, err := GetLastAccessTime(b.fs, p)
	require.NoError(t, err)
	assert.True(t, access.Equal(gotLocal))

	gotWrite, err := GetLastWriteTimeUTC(b.fs, p)
	require.NoError(t, err)
	assert.True(t, write.Equal(gotWrite), "write time changed to %v", gotWrite)
}

func TestCreationTime(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			p := writeFile(t, b, "born.txt", "x")

			created, err := GetCreationTimeUTC(b.fs, p)
			require.NoError(t, err)
			assert.False(t, created.IsZero())

			_, err = GetCreationTime(b.fs, p)
			require.NoError(t, err)

			err = SetCreationTime(b.fs, p, time.Now())
			assert.True(t, errors.Is(err, errors.ErrUnsupported), "got %v", err)

			err = SetCreationTimeUTC(b.fs, b.path("missing"), time.Now())
			assert.True(t, IsNotExist(err), "got %v", err)
		})
	}
}

func TestTimeGetters_MissingPath(t *testing.T) {
	b := backends(t)[1]
	missing := b.path("missing")
	getters := map[string]func(afero.Fs, string) (time.Time, error){
		"creation":     GetCreationTime,
		"creation-utc": GetCreationTimeUTC,
		"access":       GetLastAccessTime,
		"access-utc":   GetLastAccessTimeUTC,
		"write":        GetLastWriteTime,
		"write-utc":    GetLastWriteTimeUTC,
	}
	for name, get := range getters {
		t.Run(name, func(t *testing.T) {
			_, err := get(b.fs, missing)
			assert.True(t, IsNotExist(err))
		})
	}
}

func assertContent(t *testing.T, fsys afero.Fs, path, want string) {
	t.Helper()
	got, err := ReadAllBytes(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}
