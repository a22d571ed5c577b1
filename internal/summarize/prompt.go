// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"text/template"
)

// DefaultInstruction is the instruction prefix placed before the paper
// text when no custom instruction is configured.
const DefaultInstruction = "Summarize this research article into one paragraph without formatting, highlighting strengths and weaknesses."

// summaryPromptTmpl joins the instruction and the paper text into the
// prompt submitted to the model.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`{{.Instruction}}

{{.Text}}`))

// renderPrompt executes the summary prompt template. An empty instruction
// selects DefaultInstruction.
func renderPrompt(instruction, text string) (string, error) {
	if instruction == "" {
		instruction = DefaultInstruction
	}
	var buf bytes.Buffer
	err := summaryPromptTmpl.Execute(&buf, struct{ Instruction, Text string }{
		Instruction: instruction,
		Text:        text,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
