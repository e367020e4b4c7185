package noticefmt

// PrettyOpts configures terminal listing of notices.
type PrettyOpts struct {
	Color bool
	Width int // максимальная ширина строки, 0 - не ограничено
}

// JSONOpts configures JSON output of notices.
type JSONOpts struct {
	IncludePositions bool // добавить index
	Max              int  // обрезка вывода, не Registry
	Indent           bool
}
