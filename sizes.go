package main

// 報告區段標題 (亦為翻譯鍵)
const (
	TitleIntegerTypes = "Integer types:"
	TitleIDTypes      = "Ids types:"
	TitleFilesRelated = "Files related:"
	TitleLengths      = "Lengths:"
)

// Sections 返回目前平台的型別大小報告，順序固定
func Sections() []Section {
	return []Section{
		{
			Title: TitleIntegerTypes,
			Types: []TypeSize{
				{Name: "short int", Bytes: sizeofShort},
				{Name: "int", Bytes: sizeofInt},
				{Name: "long int", Bytes: sizeofLong},
				{Name: "long long int", Bytes: sizeofLongLong},
			},
		},
		{
			Title: TitleIDTypes,
			Types: []TypeSize{
				{Name: "pid_t", Bytes: sizeofPid},
				{Name: "uid_t", Bytes: sizeofUid},
				{Name: "gid_t", Bytes: sizeofGid},
			},
		},
		{
			Title: TitleFilesRelated,
			Types: []TypeSize{
				{Name: "ino_t", Bytes: sizeofIno},
				{Name: "off_t", Bytes: sizeofOff},
				{Name: "loff_t", Bytes: sizeofLoff},
				{Name: "dev_t", Bytes: sizeofDev},
			},
		},
		{
			Title: TitleLengths,
			Types: []TypeSize{
				{Name: "size_t", Bytes: sizeofSize},
				{Name: "ssize_t", Bytes: sizeofSsize},
			},
		},
	}
}
