//go:build !linux

package main

import "unsafe"

// 非 Linux 平台，依 LP64/ILP32 慣例以 Go 型別對應
const (
	sizeofShort    = unsafe.Sizeof(int16(0))
	sizeofInt      = unsafe.Sizeof(int32(0))
	sizeofLong     = unsafe.Sizeof(uintptr(0))
	sizeofLongLong = unsafe.Sizeof(int64(0))

	sizeofPid = unsafe.Sizeof(int32(0))
	sizeofUid = unsafe.Sizeof(uint32(0))
	sizeofGid = unsafe.Sizeof(uint32(0))

	sizeofIno  = unsafe.Sizeof(uint64(0))
	sizeofOff  = unsafe.Sizeof(int64(0))
	sizeofLoff = unsafe.Sizeof(int64(0))
	sizeofDev  = unsafe.Sizeof(uint64(0))

	sizeofSize  = unsafe.Sizeof(uintptr(0))
	sizeofSsize = unsafe.Sizeof(int(0))
)
