package exc

const (
	CodeUnknownFatal  = "C0000"
	CodeParseFailed   = "C0001"
	CodeUnparsedInput = "C0002"
	CodeUnknownRule   = "C0003"
	CodeFileNotFound  = "C0004"
)
