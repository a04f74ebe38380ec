package huffpuff

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBytes(n int, seed int64) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}

func allByteValues() []byte {
	buf := make([]byte, NumSymbols)
	for i := range buf {
		buf[i] = byte(i)
	}
	return buf
}

func TestRoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":          nil,
		"one-byte":       {0x42},
		"single-symbol":  bytes.Repeat([]byte{'A'}, 1000),
		"worked-example": []byte("AAAAAABBBCC"),
		"text":           []byte("I'll huff and I'll puff and I'll blow your house in."),
		"all-values":     allByteValues(),
		"random-8k":      randomBytes(8192, 42),
		"skewed":         append(bytes.Repeat([]byte{0}, 5000), randomBytes(100, 7)...),
	}
	for name, input := range inputs {
		input := input
		t.Run(name, func(t *testing.T) {
			var packed bytes.Buffer
			res, err := Compress(bytes.NewReader(input), &packed, nil)
			require.NoError(t, err)
			require.Equal(t, uint64(len(input)), res.OriginalBytes)
			require.Equal(t, uint64(packed.Len()), res.CompressedBytes)
			require.GreaterOrEqual(t, packed.Len(), HeaderSize)

			var restored bytes.Buffer
			dres, err := Decompress(bytes.NewReader(packed.Bytes()), &restored, nil)
			require.NoError(t, err)
			require.Equal(t, uint64(len(input)), dres.OriginalBytes)
			require.Equal(t, string(input), restored.String())
		})
	}
}

func TestCompress_Deterministic(t *testing.T) {
	input := randomBytes(4096, 99)

	var first, second bytes.Buffer
	_, err := Compress(bytes.NewReader(input), &first, nil)
	require.NoError(t, err)
	_, err = Compress(bytes.NewReader(input), &second, nil)
	require.NoError(t, err)

	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestCompress_EmptyInputIsHeaderOnly(t *testing.T) {
	var packed bytes.Buffer
	res, err := Compress(bytes.NewReader(nil), &packed, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0), res.OriginalBytes)
	require.Equal(t, HeaderSize, packed.Len())
}

func TestCompress_ObserverCheckpoints(t *testing.T) {
	input := randomBytes(1024, 3)

	var sequence []string
	obs := &Observer{
		AfterCount: func(ft *FrequencyTable) {
			require.Equal(t, uint64(len(input)), ft.Total())
			sequence = append(sequence, "count")
		},
		AfterBuild: func(tree *Tree) {
			require.Equal(t, NumSymbols-1, tree.NumInternal())
			sequence = append(sequence, "build")
		},
		AfterCodes: func(codes CodeTable) {
			require.Len(t, codes, NumSymbols)
			sequence = append(sequence, "codes")
		},
		Progress: func(int64) {
			if len(sequence) == 3 {
				sequence = append(sequence, "progress")
			}
		},
	}

	var packed bytes.Buffer
	_, err := Compress(bytes.NewReader(input), &packed, obs)
	require.NoError(t, err)
	require.Equal(t, []string{"count", "build", "codes", "progress"}, sequence)
}

func TestDecompress_ObserverCheckpoints(t *testing.T) {
	var packed bytes.Buffer
	_, err := Compress(bytes.NewReader([]byte("observable")), &packed, nil)
	require.NoError(t, err)

	var sequence []string
	obs := &Observer{
		AfterCount: func(ft *FrequencyTable) { sequence = append(sequence, "count") },
		AfterBuild: func(tree *Tree) { sequence = append(sequence, "build") },
		// Decompression never derives codes; it walks the tree directly.
		AfterCodes: func(codes CodeTable) { sequence = append(sequence, "codes") },
	}

	var restored bytes.Buffer
	_, err = Decompress(bytes.NewReader(packed.Bytes()), &restored, obs)
	require.NoError(t, err)
	require.Equal(t, []string{"count", "build"}, sequence)
}

func TestDecompress_TruncatedHeader(t *testing.T) {
	var restored bytes.Buffer
	_, err := Decompress(bytes.NewReader(make([]byte, 100)), &restored, nil)
	require.ErrorIs(t, err, ErrTruncatedHeader)
}

func TestDecompress_TruncatedBody(t *testing.T) {
	input := randomBytes(4096, 11)

	var packed bytes.Buffer
	_, err := Compress(bytes.NewReader(input), &packed, nil)
	require.NoError(t, err)

	chopped := packed.Bytes()[:packed.Len()-1]
	var restored bytes.Buffer
	_, err = Decompress(bytes.NewReader(chopped), &restored, nil)
	require.ErrorIs(t, err, ErrTruncatedStream)
}
