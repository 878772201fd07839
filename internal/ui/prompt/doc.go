// Package prompt provides the line prompts newsite asks its questions with.
//
// A [Prompter] reads one answer per call. [New] picks the implementation:
//
//   - [TeaPrompter]: bubbletea text input, used when stdin is a terminal.
//   - [LinePrompter]: plain line reader, used for piped or scripted input.
//
// Both trim surrounding whitespace from the answer and return [ErrAborted]
// when the user interrupts or input ends before an answer is given.
package prompt
