package room

import (
	"bytes"
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFieldBinaryRoundTrip(t *testing.T) {
	s, err := NewSession(seededConfig(7, PatternRandomHalf, 300))
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background(), 0, nil))

	data, err := s.field.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, headerSize+4*7*7)

	var back Field
	require.NoError(t, back.UnmarshalBinary(data))
	require.True(t, s.field.Equal(&back))

	again, err := back.MarshalBinary()
	require.NoError(t, err)
	require.True(t, bytes.Equal(data, again), "re-encoding must be byte-exact")
}

func TestSaveLoadField(t *testing.T) {
	f := fieldFromRows(t, [][]int{{3, 3, 1}, {2, 1, 0}, {1, 0, 0}})
	path := filepath.Join(t.TempDir(), "room.bin")
	require.NoError(t, SaveField(path, f))

	loaded, err := LoadField(path)
	require.NoError(t, err)
	require.True(t, f.Equal(loaded))
	require.Equal(t, 3, loaded.N())

	_, err = LoadField(filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnmarshalRejectsCorruptData(t *testing.T) {
	good, err := fieldFromRows(t, [][]int{{2, 1}, {1, 0}}).MarshalBinary()
	require.NoError(t, err)

	mutate := func(fn func(b []byte) []byte) []byte {
		return fn(append([]byte(nil), good...))
	}
	cases := map[string][]byte{
		"empty":     nil,
		"bad magic": mutate(func(b []byte) []byte { b[0] = 'X'; return b }),
		"version":   mutate(func(b []byte) []byte { b[4] = 9; return b }),
		"truncated": good[:len(good)-1],
		"zero side": mutate(func(b []byte) []byte { binary.BigEndian.PutUint32(b[5:], 0); return b }),
		"too tall": mutate(func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[headerSize:], 3)
			return b
		}),
		"not monotone": mutate(func(b []byte) []byte {
			binary.BigEndian.PutUint32(b[headerSize+4*3:], 2)
			return b
		}),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			var f Field
			require.ErrorIs(t, f.UnmarshalBinary(data), ErrCorruptField)
		})
	}
}

func TestRecomputeAfterLoadResumesEligibility(t *testing.T) {
	s, err := NewSession(seededConfig(5, PatternArcticCircle, 120))
	require.NoError(t, err)
	require.NoError(t, s.Run(context.Background(), 0, nil))

	data, err := s.field.MarshalBinary()
	require.NoError(t, err)
	var back Field
	require.NoError(t, back.UnmarshalBinary(data))
	require.True(t, Recompute(&back).Equal(s.elig))
}
