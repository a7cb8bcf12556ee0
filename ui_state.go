package main

type mode int

const (
	modeView mode = iota
	modeFilter
)

type sheetKind int

const (
	sheetNone sheetKind = iota
	sheetDetails
	sheetHelp
	sheetAbout
	sheetSave
	sheetExport
)

func (k sheetKind) String() string {
	switch k {
	case sheetDetails:
		return "details"
	case sheetHelp:
		return "help"
	case sheetAbout:
		return "about"
	case sheetSave:
		return "save"
	case sheetExport:
		return "export"
	default:
		return "none"
	}
}

type uiState struct {
	mode       mode
	sheet      sheetKind
	noticeMsg  string
	noticeType noticeKind
	noticeSeq  int
	top        int // first filtered row drawn in the list
}
