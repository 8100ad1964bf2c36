package exitcode

const (
	UsageError      = 1
	ValidationError = 2
	SelfCheckError  = 3
	LoadError       = 4
	TransformError  = 5
	WriteError      = 6
)
