package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func englishPrinter(t *testing.T) *message.Printer {
	t.Helper()
	cat, err := NewCatalog()
	require.NoError(t, err)
	return message.NewPrinter(language.English, message.Catalog(cat))
}

func TestTypeSize_Bits(t *testing.T) {
	tests := []struct {
		bytes uintptr
		bits  uintptr
	}{
		{1, 8},
		{2, 16},
		{4, 32},
		{8, 64},
	}

	for _, tt := range tests {
		ts := TypeSize{Name: "t", Bytes: tt.bytes}
		assert.Equal(t, tt.bits, ts.Bits())
	}
}

func TestReporter_Print(t *testing.T) {
	var buf bytes.Buffer
	sections := []Section{
		{Title: TitleIntegerTypes, Types: []TypeSize{{Name: "short int", Bytes: 2}}},
		{Title: TitleLengths, Types: []TypeSize{
			{Name: "size_t", Bytes: 8},
			{Name: "ssize_t", Bytes: 8},
		}},
	}

	err := NewReporter(&buf, englishPrinter(t)).Print(sections)
	require.NoError(t, err)

	want := "\nInteger types:\n" +
		"\tshort int: 2 (16 bits)\n" +
		"\nLengths:\n" +
		"\tsize_t: 8 (64 bits)\n" +
		"\tssize_t: 8 (64 bits)\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_PrintWriteError(t *testing.T) {
	err := NewReporter(failingWriter{}, englishPrinter(t)).Print(Sections())
	require.Error(t, err)
	assert.ErrorIs(t, err, errWrite)
}

func TestReporter_PrintSizeNoGrouping(t *testing.T) {
	var buf bytes.Buffer
	cat, err := NewCatalog()
	require.NoError(t, err)
	p := message.NewPrinter(language.French, message.Catalog(cat))

	require.NoError(t, NewReporter(&buf, p).PrintSize(TypeSize{Name: "big", Bytes: 1024}))
	assert.Equal(t, "\tbig: 1024 (8192 bits)\n", buf.String())
}
