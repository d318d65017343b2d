package hasher

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sha256("hello"), a well-known vector.
const helloSHA256 = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"sha256", SHA256, false},
		{"SHA-256", SHA256, false},
		{"blake3", BLAKE3, false},
		{"Blake3-256", BLAKE3, false},
		{"md5", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrUnknownAlgorithm, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSum_KnownVector(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "hello.txt", "hello")

	sum, err := New(SHA256).Sum(path)
	require.NoError(t, err)
	assert.Equal(t, helloSHA256, sum)
}

func TestSum_OpaqueByteStream(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// CRLF content must hash as-is, no normalization.
	content := []byte("line1\r\nline2\r\n\x00\xff")
	path := filepath.Join(dir, "raw.bin")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	want := sha256.Sum256(content)
	sum, err := New(SHA256).Sum(path)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(want[:]), sum)
}

func TestSum_Blake3(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := writeFile(t, dir, "hello.txt", "hello")

	sum, err := New(BLAKE3).Sum(path)
	require.NoError(t, err)
	assert.Len(t, sum, HexLength)
	assert.Regexp(t, "^[0-9a-f]{64}$", sum)
	assert.NotEqual(t, helloSHA256, sum, "blake3 must not collide with sha256 output")
}

func TestSum_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := New(SHA256).Sum(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSumTree_PreservesOrder(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "alpha")
	writeFile(t, dir, "b.txt", "beta")
	writeFile(t, dir, "c.txt", "gamma")

	h := New(SHA256)
	paths := []string{"c.txt", "a.txt", "b.txt"}
	digests, bytes, err := h.SumTree(context.Background(), dir, paths, 4)
	require.NoError(t, err)
	require.Len(t, digests, 3)

	for i, p := range paths {
		want, err := h.Sum(filepath.Join(dir, p))
		require.NoError(t, err)
		assert.Equal(t, want, digests[i], "digest order must match input order for %s", p)
	}
	assert.Equal(t, int64(len("alpha")+len("beta")+len("gamma")), bytes)
}

func TestSumTree_BytesMatchHashedContent(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "12345")
	writeFile(t, dir, "b.txt", "678")

	// Byte accounting must reflect what was read and hashed, not a
	// later stat of the files.
	_, bytes, err := New(SHA256).SumTree(context.Background(), dir, []string{"a.txt", "b.txt"}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(8), bytes)
}

func TestSumTree_EmptyInput(t *testing.T) {
	t.Parallel()
	digests, bytes, err := New(SHA256).SumTree(context.Background(), t.TempDir(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, digests)
	assert.Zero(t, bytes)
}

func TestSumTree_FirstErrorAborts(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "ok.txt", "fine")

	digests, _, err := New(SHA256).SumTree(context.Background(), dir, []string{"ok.txt", "gone.txt"}, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Nil(t, digests, "no partial result on error")
}

func TestSumTree_Cancelled(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "x")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := New(SHA256).SumTree(ctx, dir, []string{"a.txt"}, 1)
	require.Error(t, err)
}
