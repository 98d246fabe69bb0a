package runscreen

// Export actions reported back by exportDoneMsg.
const (
	exportCopy = "copy"
	exportSave = "save"
)

// exportDoneMsg is sent when a clipboard copy or file save finishes.
type exportDoneMsg struct {
	Action string
	Path   string
	Err    error
}
