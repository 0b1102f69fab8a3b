package siv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOneShotCryptoBudget(t *testing.T) {
	require := require.New(t)
	key := make([]byte, KeySize)

	ctx, err := New(key)
	require.NoError(err)

	_, err = ctx.Encrypt(nil, []byte("first"))
	require.NoError(err)

	_, err = ctx.Encrypt(nil, []byte("second"))
	require.ErrorIs(err, ErrAlreadyFinalized)

	_, err = ctx.Decrypt(nil, []byte("0123456789012345"))
	require.ErrorIs(err, ErrAlreadyFinalized)
}

func TestAADRejectedAfterCrypto(t *testing.T) {
	require := require.New(t)
	ctx, err := New(make([]byte, KeySize))
	require.NoError(err)

	_, err = ctx.Encrypt(nil, []byte("payload"))
	require.NoError(err)

	require.ErrorIs(ctx.AAD([]byte("late")), ErrAADAfterCrypto)
}

func TestFinishTriState(t *testing.T) {
	require := require.New(t)
	key := make([]byte, KeySize)

	ctx, err := New(key)
	require.NoError(err)
	require.Equal(Undecided, ctx.Finish())

	ciphertext, err := ctx.Encrypt(nil, []byte("payload"))
	require.NoError(err)
	require.Equal(Succeeded, ctx.Finish())

	var tag [TagSize]byte
	require.NoError(ctx.GetTag(tag[:]))

	dctx, err := New(key)
	require.NoError(err)
	require.NoError(dctx.SetTag(tag[:]))
	_, err = dctx.Decrypt(nil, ciphertext)
	require.NoError(err)
	require.Equal(Succeeded, dctx.Finish())

	tag[0] ^= 0xff
	fctx, err := New(key)
	require.NoError(err)
	require.NoError(fctx.SetTag(tag[:]))
	_, err = fctx.Decrypt(nil, ciphertext)
	require.ErrorIs(err, ErrAuthentication)
	require.Equal(Failed, fctx.Finish())
}

func TestDupForksIndependently(t *testing.T) {
	require := require.New(t)
	key := make([]byte, KeySize)

	ctx, err := New(key)
	require.NoError(err)
	require.NoError(ctx.AAD([]byte("shared header")))

	fork := ctx.Dup()
	require.NoError(ctx.AAD([]byte("only on original")))

	ctOriginal, err := ctx.Encrypt(nil, []byte("payload"))
	require.NoError(err)
	ctFork, err := fork.Encrypt(nil, []byte("payload"))
	require.NoError(err)

	require.NotEqual(ctOriginal, ctFork, "diverging AAD history must diverge the tag/ciphertext")
}

func TestCleanupScrubsState(t *testing.T) {
	require := require.New(t)
	ctx, err := New(make([]byte, KeySize))
	require.NoError(err)
	_, err = ctx.Encrypt(nil, []byte("payload"))
	require.NoError(err)

	ctx.Cleanup()

	var zero [TagSize]byte
	require.Equal(zero, ctx.d)
	require.Equal(zero, ctx.tag)
	require.Equal(Undecided, ctx.Finish())
	require.Nil(ctx.cmacTmpl)
	require.Nil(ctx.ctrBlock)
}
