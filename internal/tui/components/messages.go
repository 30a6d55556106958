package components

// FilterChangedMsg reports a new transaction filter text.
type FilterChangedMsg struct {
	Text string
}

// FilterClosedMsg is sent when the filter input loses focus.
type FilterClosedMsg struct{}
