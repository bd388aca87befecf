package chat

import "github.com/deskpet/deskpet/internal/automation"

// replyReadyMsg is sent when the pet's reply has been generated.
type replyReadyMsg struct {
	Text string
	Err  error
}

// macroDoneMsg is sent when a suggested macro run finishes.
type macroDoneMsg struct {
	Name   string
	Result automation.RunResult
	Err    error
}
