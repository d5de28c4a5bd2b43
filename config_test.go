package bonjson_test

import (
	"testing"

	"github.com/bonjson-codec/bonjson"
	"github.com/bonjson-codec/bonjson/errs"
	"github.com/bonjson-codec/bonjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDecoderConfigRejectsNaN(t *testing.T) {
	cfg := bonjson.DefaultDecoderConfig()
	// float64 quiet NaN: 0x7FF8000000000000, little-endian.
	dec, err := bonjson.NewDecoder([]byte{0xCC, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xF8, 0x7F}, cfg)
	require.NoError(t, err)
	_, err = dec.NextEvent()
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidData)
}

func TestWithMaxDocumentSizeRejectsOversizedInput(t *testing.T) {
	b, err := bonjson.ToVec(value.String("0123456789"))
	require.NoError(t, err)

	cfg, err := bonjson.NewDecoderConfig(bonjson.WithMaxDocumentSize(len(b) - 1))
	require.NoError(t, err)
	_, err = bonjson.NewDecoder(b, cfg)
	assert.Error(t, err)
}

func TestNFCNormalizationWithoutNormalizerFails(t *testing.T) {
	b, err := bonjson.ToVec(value.String("hello"))
	require.NoError(t, err)

	cfg, err := bonjson.NewDecoderConfig(bonjson.WithUnicodeNormalization(bonjson.NormalizationNFC))
	require.NoError(t, err)
	_, err = bonjson.FromSliceWithConfig(b, cfg)
	assert.Error(t, err, "NFC without an injected Normalizer must fail loudly")
}

type suffixNormalizer struct{}

func (suffixNormalizer) Normalize(s string) (string, error) {
	return s + "!", nil
}

func TestNFCNormalizationWithNormalizerApplies(t *testing.T) {
	b, err := bonjson.ToVec(value.String("hello"))
	require.NoError(t, err)

	cfg, err := bonjson.NewDecoderConfig(
		bonjson.WithUnicodeNormalization(bonjson.NormalizationNFC),
		bonjson.WithNormalizer(suffixNormalizer{}),
	)
	require.NoError(t, err)
	out, err := bonjson.FromSliceWithConfig(b, cfg)
	require.NoError(t, err)
	s, _ := out.AsString()
	assert.Equal(t, "hello!", s)
}
