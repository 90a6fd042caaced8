package advisor

import (
	"fmt"

	"github.com/doeshing/uniterm/internal/ports"
)

type promptMessage struct {
	Role    string
	Content string
}

const systemPrompt = "You are a shell dialect assistant embedded in a terminal. " +
	"Reply with one short plain sentence. Never output markdown, code fences, or more than one line."

func buildMessages(req ports.AdvisorRequest) []promptMessage {
	user := fmt.Sprintf(
		"The user typed the %s command %q. The host shell speaks the %s dialect and no translation rule covers the verb %q. "+
			"Suggest the closest %s equivalent in one sentence, or state that none exists.",
		req.Source, req.Line, req.Host, req.Verb, req.Host)
	return []promptMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: user},
	}
}
