package gemini

import "strings"

// IdeaPlaceholder marks where the user idea is inserted into a prompt template.
const IdeaPlaceholder = "{idea}"

// IdeaPromptTemplate turns a loose idea into a single-sentence image/video prompt.
const IdeaPromptTemplate = `Transform this idea into a single-line, production-ready prompt in English ` +
	`(cinematic, camera, lighting, textures, tone). Keep it one sentence: "` + IdeaPlaceholder + `"`

// BuildIdeaPrompt inserts idea verbatim at every placeholder of template.
func BuildIdeaPrompt(template, idea string) string {
	return strings.ReplaceAll(template, IdeaPlaceholder, idea)
}
