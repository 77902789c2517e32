//go:build linux

package main

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// 取自核心結構的 C ABI 欄位，隨架構變動
const (
	sizeofShort    = unsafe.Sizeof(unix.Flock_t{}.Type)     // short
	sizeofInt      = unsafe.Sizeof(unix.PollFd{}.Fd)        // int
	sizeofLong     = unsafe.Sizeof(unix.Sysinfo_t{}.Uptime) // long
	sizeofLongLong = unsafe.Sizeof(int64(0))

	sizeofPid = unsafe.Sizeof(unix.Ucred{}.Pid)
	sizeofUid = unsafe.Sizeof(unix.Ucred{}.Uid)
	sizeofGid = unsafe.Sizeof(unix.Ucred{}.Gid)

	sizeofIno  = unsafe.Sizeof(unix.Stat_t{}.Ino)
	sizeofOff  = unsafe.Sizeof(unix.Stat_t{}.Size)
	sizeofLoff = unsafe.Sizeof(int64(0))  // unix.CopyFileRange 的 *int64
	sizeofDev  = unsafe.Sizeof(uint64(0)) // glibc dev_t; mips 核心 Stat_t.Dev 僅 32 位元

	sizeofSize  = unsafe.Sizeof(unix.Iovec{}.Len)
	sizeofSsize = unsafe.Sizeof(int(0))
)
