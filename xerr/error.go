package xerr

type Error uint16

const (
	FileNotFound Error = iota
	InvalidConfig
	RecordMismatch
	RecordLoadFailed
	RecordSaveFailed
)

var errorMap = map[Error]string{
	FileNotFound:     "file not found",
	InvalidConfig:    "invalid config",
	RecordMismatch:   "re-encoded record differs from input",
	RecordLoadFailed: "file could not be loaded",
	RecordSaveFailed: "file could not be saved",
}

func (e Error) Error() string {
	return errorMap[e]
}
func (e Error) String() string {
	return errorMap[e]
}
