package main

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSections_Order(t *testing.T) {
	sections := Sections()
	require.Len(t, sections, 4)

	var titles []string
	for _, s := range sections {
		titles = append(titles, s.Title)
	}
	assert.Equal(t, []string{TitleIntegerTypes, TitleIDTypes, TitleFilesRelated, TitleLengths}, titles)

	names := map[string][]string{
		TitleIntegerTypes: {"short int", "int", "long int", "long long int"},
		TitleIDTypes:      {"pid_t", "uid_t", "gid_t"},
		TitleFilesRelated: {"ino_t", "off_t", "loff_t", "dev_t"},
		TitleLengths:      {"size_t", "ssize_t"},
	}
	for _, s := range sections {
		var got []string
		for _, ts := range s.Types {
			got = append(got, ts.Name)
		}
		assert.Equal(t, names[s.Title], got, s.Title)
	}
}

func TestSections_BitsInvariant(t *testing.T) {
	for _, s := range Sections() {
		for _, ts := range s.Types {
			assert.NotZero(t, ts.Bytes, ts.Name)
			assert.Equal(t, ts.Bytes*8, ts.Bits(), ts.Name)
		}
	}
}

func TestPlatformSizes(t *testing.T) {
	ptr := unsafe.Sizeof(uintptr(0))

	assert.Equal(t, uintptr(2), uintptr(sizeofShort), "short int")
	assert.Equal(t, uintptr(4), uintptr(sizeofInt), "int")
	assert.Equal(t, ptr, uintptr(sizeofLong), "long int")
	assert.Equal(t, uintptr(8), uintptr(sizeofLongLong), "long long int")

	assert.Equal(t, uintptr(4), uintptr(sizeofPid), "pid_t")
	assert.Equal(t, uintptr(4), uintptr(sizeofUid), "uid_t")
	assert.Equal(t, uintptr(4), uintptr(sizeofGid), "gid_t")

	assert.Equal(t, uintptr(8), uintptr(sizeofOff), "off_t")
	assert.Equal(t, uintptr(8), uintptr(sizeofLoff), "loff_t")
	assert.Equal(t, uintptr(8), uintptr(sizeofDev), "dev_t")

	assert.Equal(t, ptr, uintptr(sizeofSize), "size_t")
	assert.Equal(t, uintptr(sizeofSize), uintptr(sizeofSsize), "ssize_t")
}
